package slackUtil

import (
    "context"
    "fmt"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/slack-go/slack"
    "go.uber.org/zap"
)

/*
Slack CLI is unfortunately a paid feature: https://api.slack.com/automation/quickstart
So we have to use the web API instead: https://api.slack.com/web
*/

type Slack struct {
    client    *slack.Client
    log       *zap.SugaredLogger
    stage     enum.Stage
    channelId string
}

func NewSlack(logger *zap.SugaredLogger, stage enum.Stage, slackToken string, alertChannelId string, options ...slack.Option) *Slack {
    return &Slack{
        client:    slack.New(slackToken, options...),
        log:       logger,
        stage:     stage,
        channelId: alertChannelId,
    }
}

func (s *Slack) SendSearchFailureAlert(ctx context.Context, latitude float64, longitude float64, cause error) error {
    msg := ""
    if s.stage != enum.StageProd {
        msg += "*[" + s.stage.String() + "]* "
    }
    msg += fmt.Sprintf("Restaurant search failed for location (%v, %v)", latitude, longitude)

    blocks := []slack.Block{
        slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, msg, false, false), nil, nil),
        slack.NewSectionBlock(slack.NewTextBlockObject(slack.PlainTextType, cause.Error(), false, false), nil, nil),
        slack.NewDividerBlock(),
    }

    respChannel, respTimestamp, err := s.client.PostMessageContext(
        ctx,
        s.channelId,
        slack.MsgOptionText(msg, false),
        slack.MsgOptionBlocks(blocks...),
    )
    if err != nil {
        s.log.Error("Unable to send message to slack in SendSearchFailureAlert: ", err)
        return err
    }

    s.log.Debugf("Message successfully sent to slack channel %s at %s", respChannel, respTimestamp)
    return nil
}
