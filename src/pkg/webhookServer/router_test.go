package webhookServer

import (
    "bytes"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/gnaviUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/httpUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineEventProcessor"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/metric"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/ramenUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/urlShortenerUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "github.com/NoodleFinder/LocationHandlers/tst/data/locationEventsHandlerTestEvents"
    "github.com/NoodleFinder/LocationHandlers/tst/fakeServer"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap/zaptest"
    "net/http"
    "net/http/httptest"
    "testing"
)

const testChannelSecret = "testChannelSecret"

func newTestRouter(t *testing.T) (http.Handler, *fakeServer.Line, *bytes.Buffer) {
    line := fakeServer.NewLine()
    gnavi := fakeServer.NewGnavi(fakeServer.GnaviErrorXml(600, "No shop"))
    shortener := fakeServer.NewUrlShortener(nil)
    t.Cleanup(func() {
        line.Close()
        gnavi.Close()
        shortener.Close()
    })

    log := zaptest.NewLogger(t).Sugar()
    cfg := &config.Config{
        GnaviUri:        gnavi.Server.URL,
        GnaviAccessKey:  "gnaviKey",
        GnaviCategoryL:  "RSFST08000",
        GnaviHitPerPage: 5,
        UrlShortenerUri: shortener.Server.URL,
        UrlShortenerKey: "shortenerKey",
    }
    fetcher := httpUtil.NewFetcher(cfg, log)
    lineClient, err := lineUtil.NewLine(testChannelSecret, "testAccessToken", log, linebot.WithEndpointBase(line.Server.URL))
    require.NoError(t, err)

    processor := lineEventProcessor.NewProcessor(
        lineClient,
        gnaviUtil.NewGnavi(cfg, fetcher, log),
        ramenUtil.NewFormatter(urlShortenerUtil.NewUrlShortener(cfg, fetcher, metric.NoopEmitter{}, log)),
        metric.NoopEmitter{},
        log)

    var accessLog bytes.Buffer
    return NewRouter(processor, log, &accessLog), line, &accessLog
}

func TestRouter_Callback(t *testing.T) {
    router, line, accessLog := newTestRouter(t)

    body := locationEventsHandlerTestEvents.WebhookBody(
        locationEventsHandlerTestEvents.LocationMessageEventJson("replyToken1", 35.0, 139.0))
    request := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader(body))
    request.Header.Set("X-Line-Signature", locationEventsHandlerTestEvents.Sign(testChannelSecret, body))
    recorder := httptest.NewRecorder()

    router.ServeHTTP(recorder, request)

    assert.Equal(t, http.StatusOK, recorder.Code)
    assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
    replies := line.Replies()
    require.Len(t, replies, 1)
    assert.Equal(t, []string{util.NoRamenShopFoundMessage}, replies[0].Texts())
    assert.Contains(t, accessLog.String(), "POST /callback")
}

func TestRouter_CallbackInvalidSignature(t *testing.T) {
    router, line, _ := newTestRouter(t)

    body := locationEventsHandlerTestEvents.WebhookBody(
        locationEventsHandlerTestEvents.TextMessageEventJson("replyToken1", "hi"))
    request := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader(body))
    request.Header.Set("X-Line-Signature", "bogus")
    recorder := httptest.NewRecorder()

    router.ServeHTTP(recorder, request)

    assert.Equal(t, http.StatusBadRequest, recorder.Code)
    assert.Empty(t, line.Replies())
}

func TestRouter_CallbackHealthCheck(t *testing.T) {
    router, line, _ := newTestRouter(t)

    request := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader([]byte(`{"destination":"U000","events":[]}`)))
    recorder := httptest.NewRecorder()

    router.ServeHTTP(recorder, request)

    assert.Equal(t, http.StatusOK, recorder.Code)
    assert.Empty(t, line.Replies())
}

func TestRouter_Healthz(t *testing.T) {
    router, _, _ := newTestRouter(t)

    recorder := httptest.NewRecorder()
    router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

    assert.Equal(t, http.StatusOK, recorder.Code)
    assert.JSONEq(t, `{"message": "OK"}`, recorder.Body.String())
}

func TestRouter_WrongMethod(t *testing.T) {
    router, _, _ := newTestRouter(t)

    recorder := httptest.NewRecorder()
    router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/callback", nil))

    assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
