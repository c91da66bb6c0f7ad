package lineEventProcessor

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/exception"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/metric"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "go.uber.org/zap"
    "net/http"
)

type LineClient interface {
    ParseRequest(request *http.Request) ([]*linebot.Event, error)
    ReplyTextMessages(ctx context.Context, replyToken string, texts []string) error
}

type RestaurantSearcher interface {
    SearchNearby(ctx context.Context, latitude float64, longitude float64) ([]model.Restaurant, error)
}

type RestaurantFormatter interface {
    FormatRestaurant(ctx context.Context, restaurant model.Restaurant) string
}

// SearchFailureAlerter notifies operators when the search API fails hard
type SearchFailureAlerter interface {
    SendSearchFailureAlert(ctx context.Context, latitude float64, longitude float64, cause error) error
}

// Processor turns one webhook delivery into at most one reply call per event.
// It holds no per-request state; WithLogger gives each request its own logger.
type Processor struct {
    line      LineClient
    searcher  RestaurantSearcher
    formatter RestaurantFormatter
    alerter   SearchFailureAlerter
    metrics   metric.Emitter
    log       *zap.SugaredLogger
}

func NewProcessor(
    line LineClient,
    searcher RestaurantSearcher,
    formatter RestaurantFormatter,
    metrics metric.Emitter,
    log *zap.SugaredLogger) *Processor {
    return &Processor{
        line:      line,
        searcher:  searcher,
        formatter: formatter,
        metrics:   metrics,
        log:       log,
    }
}

func (p *Processor) WithSearchFailureAlerter(alerter SearchFailureAlerter) *Processor {
    clone := *p
    clone.alerter = alerter
    return &clone
}

func (p *Processor) WithLogger(log *zap.SugaredLogger) *Processor {
    clone := *p
    clone.log = log
    return &clone
}

// ProcessRequest parses the webhook request and processes its events.
// A request that fails signature validation or decoding yields *exception.InvalidWebhookRequestException and no reply.
func (p *Processor) ProcessRequest(ctx context.Context, request *http.Request) error {
    lineEvents, err := p.line.ParseRequest(request)
    if err != nil {
        p.log.Error("Error parsing LINE webhook request: ", err)
        return exception.NewInvalidWebhookRequestException("failed to parse LINE webhook request", err)
    }

    p.log.Infof("Received %d LINE events", len(lineEvents))
    p.ProcessEvents(ctx, lineEvents)
    return nil
}

// ProcessEvents handles events in delivery order. Failures are logged per event and never stop the loop.
func (p *Processor) ProcessEvents(ctx context.Context, lineEvents []*linebot.Event) {
    for _, event := range lineEvents {
        switch inbound := lineUtil.ClassifyEvent(event).(type) {
        case lineUtil.NonMessageEvent:
            p.log.Infof("Non message event has come: %s", inbound.EventType)

        case lineUtil.OtherMessageEvent:
            p.log.Infof("Received %s message. Requesting location instead.", inbound.MessageType)
            p.reply(ctx, inbound.ReplyToken, []string{util.LocationRequestMessage})

        case lineUtil.LocationMessageEvent:
            p.log.Infof("Received location message (%v, %v)", inbound.Latitude, inbound.Longitude)
            p.reply(ctx, inbound.ReplyToken, p.BuildLocationReply(ctx, inbound))

        default:
            p.log.Errorf("Unhandled inbound event %T. Skipping.", inbound)
        }
    }
}

func (p *Processor) reply(ctx context.Context, replyToken string, texts []string) {
    err := p.line.ReplyTextMessages(ctx, replyToken, texts)
    if err != nil {
        p.log.Errorf("Error replying %d messages to reply token '%s': %v", len(texts), replyToken, err)
        return
    }
    p.log.Infof("Replied %d messages to reply token '%s'", len(texts), replyToken)
}
