package lineUtil

import (
    "context"
    "errors"
    "github.com/NoodleFinder/LocationHandlers/tst/data/locationEventsHandlerTestEvents"
    "github.com/NoodleFinder/LocationHandlers/tst/fakeServer"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap/zaptest"
    "net/http"
    "testing"
)

const testChannelSecret = "testChannelSecret"

func newTestLine(t *testing.T, fakeLine *fakeServer.Line) *Line {
    line, err := NewLine(testChannelSecret, "testAccessToken", zaptest.NewLogger(t).Sugar(),
        linebot.WithEndpointBase(fakeLine.Server.URL))
    require.NoError(t, err)
    return line
}

func TestParseRequest_ValidSignature(t *testing.T) {
    fakeLine := fakeServer.NewLine()
    defer fakeLine.Close()

    body := locationEventsHandlerTestEvents.WebhookBody(
        locationEventsHandlerTestEvents.LocationMessageEventJson("replyToken1", 35.0, 139.0),
        locationEventsHandlerTestEvents.FollowEventJson("replyToken2"),
    )
    header := http.Header{}
    header.Set("X-Line-Signature", locationEventsHandlerTestEvents.Sign(testChannelSecret, body))

    lineEvents, err := newTestLine(t, fakeLine).ParseRequest(NewWebhookRequest(header, body))

    require.NoError(t, err)
    require.Len(t, lineEvents, 2)

    location, ok := ClassifyEvent(lineEvents[0]).(LocationMessageEvent)
    require.True(t, ok)
    assert.Equal(t, LocationMessageEvent{ReplyToken: "replyToken1", Latitude: 35.0, Longitude: 139.0}, location)

    _, ok = ClassifyEvent(lineEvents[1]).(NonMessageEvent)
    assert.True(t, ok)
}

func TestParseRequest_InvalidSignature(t *testing.T) {
    fakeLine := fakeServer.NewLine()
    defer fakeLine.Close()

    body := locationEventsHandlerTestEvents.WebhookBody(locationEventsHandlerTestEvents.TextMessageEventJson("replyToken1", "hi"))
    header := http.Header{}
    header.Set("X-Line-Signature", locationEventsHandlerTestEvents.Sign("wrongSecret", body))

    _, err := newTestLine(t, fakeLine).ParseRequest(NewWebhookRequest(header, body))

    assert.True(t, errors.Is(err, linebot.ErrInvalidSignature))
}

func TestReplyTextMessages(t *testing.T) {
    fakeLine := fakeServer.NewLine()
    defer fakeLine.Close()

    err := newTestLine(t, fakeLine).ReplyTextMessages(context.Background(), "replyToken1", []string{"first", "second"})

    require.NoError(t, err)
    replies := fakeLine.Replies()
    require.Len(t, replies, 1)
    assert.Equal(t, "replyToken1", replies[0].ReplyToken)
    assert.Equal(t, []string{"first", "second"}, replies[0].Texts())
    assert.Equal(t, "text", replies[0].Messages[0].Type)
}

func TestReplyTextMessages_ApiError(t *testing.T) {
    fakeLine := fakeServer.NewLine()
    defer fakeLine.Close()
    fakeLine.StatusCode = http.StatusBadRequest

    err := newTestLine(t, fakeLine).ReplyTextMessages(context.Background(), "expiredToken", []string{"text"})

    assert.Error(t, err)
}
