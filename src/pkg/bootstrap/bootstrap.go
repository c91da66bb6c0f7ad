package bootstrap

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/awsUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/gnaviUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/httpUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineEventProcessor"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/metric"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/ramenUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/secret"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/secret/secretModel"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/slackUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/urlShortenerUtil"
    "go.uber.org/zap"
)

type secretGetter interface {
    GetSecrets(secretName string) (secretModel.Secrets, error)
}

type parameterGetter interface {
    GetParameter(name string) (string, error)
}

// NewProcessor resolves secrets and parameters, then wires every component the webhook needs.
// It runs once per cold start.
func NewProcessor(ctx context.Context, cfg *config.Config, handlerName enum.HandlerName, log *zap.SugaredLogger) (*lineEventProcessor.Processor, metric.Emitter, error) {
    var secrets secretGetter
    if cfg.SecretName != "" {
        secretStore, err := secret.NewSecretStore(log)
        if err != nil {
            return nil, nil, err
        }
        secrets = secretStore
    }

    var parameters parameterGetter
    if cfg.GnaviAccessKeyParameterName != "" {
        aws, err := awsUtil.NewAws(cfg.AwsRegion, log)
        if err != nil {
            return nil, nil, err
        }
        parameters = aws
    }

    resolved, err := ResolveConfig(cfg, secrets, parameters, log)
    if err != nil {
        return nil, nil, err
    }

    var emitter metric.Emitter = metric.NoopEmitter{}
    if resolved.MetricsEnabled {
        emitter, err = metric.NewCloudWatchEmitter(ctx, resolved.AwsRegion, handlerName, log)
        if err != nil {
            return nil, nil, err
        }
    }

    processor, err := NewProcessorFromConfig(resolved, emitter, log)
    if err != nil {
        return nil, nil, err
    }
    return processor, emitter, nil
}

// ResolveConfig returns a copy of cfg with values from Secrets Manager and SSM filled in.
// Values already present in the environment win.
func ResolveConfig(cfg *config.Config, secrets secretGetter, parameters parameterGetter, log *zap.SugaredLogger) (*config.Config, error) {
    resolved := *cfg

    if secrets != nil {
        s, err := secrets.GetSecrets(cfg.SecretName)
        if err != nil {
            return nil, err
        }
        if resolved.ChannelSecret == "" {
            resolved.ChannelSecret = s.LineChannelSecret
        }
        if resolved.ChannelAccessToken == "" {
            resolved.ChannelAccessToken = s.LineChannelAccessToken
        }
        if resolved.SlackToken == "" {
            resolved.SlackToken = s.SlackToken
        }
    }

    if parameters != nil && resolved.GnaviAccessKey == "" {
        key, err := parameters.GetParameter(cfg.GnaviAccessKeyParameterName)
        if err != nil {
            return nil, err
        }
        resolved.GnaviAccessKey = key
    }

    err := resolved.ValidateResolved()
    if err != nil {
        log.Error("Configuration is incomplete after resolving secrets: ", err)
        return nil, err
    }
    return &resolved, nil
}

func NewProcessorFromConfig(cfg *config.Config, emitter metric.Emitter, log *zap.SugaredLogger) (*lineEventProcessor.Processor, error) {
    line, err := lineUtil.NewLine(cfg.ChannelSecret, cfg.ChannelAccessToken, log)
    if err != nil {
        return nil, err
    }

    fetcher := httpUtil.NewFetcher(cfg, log)
    processor := lineEventProcessor.NewProcessor(
        line,
        gnaviUtil.NewGnavi(cfg, fetcher, log),
        ramenUtil.NewFormatter(urlShortenerUtil.NewUrlShortener(cfg, fetcher, emitter, log)),
        emitter,
        log)

    if cfg.SlackToken != "" && cfg.SlackAlertChannelId != "" {
        processor = processor.WithSearchFailureAlerter(slackUtil.NewSlack(log, cfg.StageEnum(), cfg.SlackToken, cfg.SlackAlertChannelId))
    } else {
        log.Info("Slack alerting is not configured")
    }

    return processor, nil
}
