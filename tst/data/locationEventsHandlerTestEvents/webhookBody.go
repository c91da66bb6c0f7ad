package locationEventsHandlerTestEvents

import (
    "crypto/hmac"
    "crypto/sha256"
    "encoding/base64"
    "fmt"
    "strings"
)

// LocationMessageEventJson is a webhook location message event as delivered by LINE
func LocationMessageEventJson(replyToken string, latitude float64, longitude float64) string {
    return fmt.Sprintf(`{
  "type": "message",
  "mode": "active",
  "timestamp": 1685418671895,
  "webhookEventId": "01H1NCFZSJN1HAPFREM0193Y1Q",
  "deliveryContext": {"isRedelivery": false},
  "source": {"type": "user", "userId": "Ucc29292b212e271132cee980c58e94eb"},
  "replyToken": %q,
  "message": {
    "id": "468789577898262530",
    "type": "location",
    "title": "現在地",
    "address": "東京都千代田区丸の内1丁目",
    "latitude": %v,
    "longitude": %v
  }
}`, replyToken, latitude, longitude)
}

func TextMessageEventJson(replyToken string, text string) string {
    return fmt.Sprintf(`{
  "type": "message",
  "mode": "active",
  "timestamp": 1685418671895,
  "webhookEventId": "01H1NCFZSJN1HAPFREM0193Y1R",
  "deliveryContext": {"isRedelivery": false},
  "source": {"type": "user", "userId": "Ucc29292b212e271132cee980c58e94eb"},
  "replyToken": %q,
  "message": {"id": "468789577898262531", "type": "text", "text": %q}
}`, replyToken, text)
}

func StickerMessageEventJson(replyToken string) string {
    return fmt.Sprintf(`{
  "type": "message",
  "mode": "active",
  "timestamp": 1685418671895,
  "webhookEventId": "01H1NCFZSJN1HAPFREM0193Y1T",
  "deliveryContext": {"isRedelivery": false},
  "source": {"type": "user", "userId": "Ucc29292b212e271132cee980c58e94eb"},
  "replyToken": %q,
  "message": {"id": "468789577898262532", "type": "sticker", "packageId": "446", "stickerId": "1988", "stickerResourceType": "STATIC"}
}`, replyToken)
}

func FollowEventJson(replyToken string) string {
    return fmt.Sprintf(`{
  "type": "follow",
  "mode": "active",
  "timestamp": 1685418671895,
  "webhookEventId": "01H1NCFZSJN1HAPFREM0193Y1S",
  "deliveryContext": {"isRedelivery": false},
  "source": {"type": "user", "userId": "Ucc29292b212e271132cee980c58e94eb"},
  "replyToken": %q
}`, replyToken)
}

func WebhookBody(eventJsons ...string) []byte {
    return []byte(`{"destination": "U8e4d1bd5b8b6f0e8e1a2b3c4d5e6f7a8", "events": [` + strings.Join(eventJsons, ",") + `]}`)
}

// Sign computes the X-Line-Signature header value for body
func Sign(channelSecret string, body []byte) string {
    mac := hmac.New(sha256.New, []byte(channelSecret))
    mac.Write(body)
    return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
