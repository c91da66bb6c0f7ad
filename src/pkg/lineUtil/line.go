package lineUtil

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/jsonUtil"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "go.uber.org/zap"
    "net/http"
)

type Line struct {
    lineClient *linebot.Client
    log        *zap.SugaredLogger
}

func NewLine(channelSecret string, channelAccessToken string, logger *zap.SugaredLogger, options ...linebot.ClientOption) (*Line, error) {
    lineClient, err := linebot.New(channelSecret, channelAccessToken, options...)
    if err != nil {
        logger.Error("cannot create new Line Client: ", err)
        return nil, err
    }

    return &Line{
        lineClient: lineClient,
        log:        logger,
    }, nil
}

// ParseRequest validates the X-Line-Signature header against the channel secret and decodes the events
func (l *Line) ParseRequest(request *http.Request) ([]*linebot.Event, error) {
    return l.lineClient.ParseRequest(request)
}

// ReplyTextMessages sends every text as its own message in a single reply call
func (l *Line) ReplyTextMessages(ctx context.Context, replyToken string, texts []string) error {
    messages := make([]linebot.SendingMessage, 0, len(texts))
    for _, text := range texts {
        messages = append(messages, linebot.NewTextMessage(text))
    }

    resp, err := l.lineClient.ReplyMessage(replyToken, messages...).WithContext(ctx).Do()
    if err != nil {
        l.log.Error("Error sending reply message to line: ", err)
        return err
    }

    l.log.Debugf("Successfully executed line.ReplyMessage with %d messages: %s", len(messages), jsonUtil.AnyToJson(resp))
    return nil
}
