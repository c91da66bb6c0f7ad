package lineUtil

import (
    "encoding/json"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/jsonUtil"
    "github.com/line/line-bot-sdk-go/v7/linebot"
)

// InboundEvent is the closed set of webhook event kinds the bot distinguishes.
// Only the types in this file implement it.
type InboundEvent interface {
    inboundEvent()
}

type LocationMessageEvent struct {
    ReplyToken string
    Latitude   float64
    Longitude  float64
}

type OtherMessageEvent struct {
    ReplyToken  string
    MessageType linebot.MessageType
}

type NonMessageEvent struct {
    EventType linebot.EventType
}

func (LocationMessageEvent) inboundEvent() {}
func (OtherMessageEvent) inboundEvent()    {}
func (NonMessageEvent) inboundEvent()      {}

func ClassifyEvent(event *linebot.Event) InboundEvent {
    if event.Type != linebot.EventTypeMessage {
        return NonMessageEvent{EventType: event.Type}
    }

    if locationMessage, ok := event.Message.(*linebot.LocationMessage); ok {
        return LocationMessageEvent{
            ReplyToken: event.ReplyToken,
            Latitude:   locationMessage.Latitude,
            Longitude:  locationMessage.Longitude,
        }
    }

    return OtherMessageEvent{
        ReplyToken:  event.ReplyToken,
        MessageType: getMessageType(event),
    }
}

type message struct {
    Type linebot.MessageType `json:"type"`
}

// getMessageType reads message.type back out of the event JSON.
// The SDK message structs do not expose their type uniformly.
func getMessageType(event *linebot.Event) linebot.MessageType {
    var data struct {
        Message message `json:"message"`
    }
    err := json.Unmarshal(jsonUtil.AnyToJsonObject(event), &data)
    if err != nil {
        return ""
    }
    return data.Message.Type
}
