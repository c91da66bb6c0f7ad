package locationEventsHandlerTestEvents

import (
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "time"
)

const TestReplyToken = "36ffd31138354b2dbe94d1a7759fb9ab"

var TestLocationMessageEvent = &linebot.Event{
    Type:           linebot.EventTypeMessage,
    WebhookEventID: "01H1NCFZSJN1HAPFREM0193Y1Q",
    DeliveryContext: linebot.DeliveryContext{
        IsRedelivery: false,
    },
    Timestamp: time.UnixMilli(1685418671895),
    Source: &linebot.EventSource{
        Type:   linebot.EventSourceTypeUser,
        UserID: "Ucc29292b212e271132cee980c58e94eb",
    },
    ReplyToken: TestReplyToken,
    Mode:       linebot.EventModeActive,
    Message: &linebot.LocationMessage{
        ID:        "468789577898262530",
        Title:     "東京駅",
        Address:   "東京都千代田区丸の内1丁目",
        Latitude:  35.681167,
        Longitude: 139.767052,
    },
}

var TestTextMessageEvent = &linebot.Event{
    Type:           linebot.EventTypeMessage,
    WebhookEventID: "01H1NCFZSJN1HAPFREM0193Y1R",
    Timestamp:      time.UnixMilli(1685418671895),
    Source: &linebot.EventSource{
        Type:   linebot.EventSourceTypeUser,
        UserID: "Ucc29292b212e271132cee980c58e94eb",
    },
    ReplyToken: TestReplyToken,
    Mode:       linebot.EventModeActive,
    Message: &linebot.TextMessage{
        ID:   "468789577898262531",
        Text: "ラーメン",
    },
}

var TestFollowEvent = &linebot.Event{
    Type:           linebot.EventTypeFollow,
    WebhookEventID: "01H1NCFZSJN1HAPFREM0193Y1S",
    Timestamp:      time.UnixMilli(1685418671895),
    Source: &linebot.EventSource{
        Type:   linebot.EventSourceTypeUser,
        UserID: "Ucc29292b212e271132cee980c58e94eb",
    },
    ReplyToken: TestReplyToken,
    Mode:       linebot.EventModeActive,
}
