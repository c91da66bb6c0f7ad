package config

import (
    "github.com/NoodleFinder/LocationHandlers/src/pkg/exception"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/go-playground/validator/v10"
    "github.com/kelseyhightower/envconfig"
    "time"
)

// Config is built once at process start and passed by pointer. Nothing reads it as global state.
type Config struct {
    // LINE channel credentials. May instead come from Secrets Manager when SecretName is set.
    ChannelAccessToken string `envconfig:"CHANNEL_ACCESS_TOKEN" validate:"required_without=SecretName"`
    ChannelSecret      string `envconfig:"CHANNEL_SECRET" validate:"required_without=SecretName"`
    SecretName         string `envconfig:"SECRET_NAME"`

    // Gnavi restaurant search API
    GnaviUri                    string `envconfig:"GNAVI_URI" default:"https://api.gnavi.co.jp/RestSearchAPI/20150630/" validate:"required,url"`
    GnaviAccessKey              string `envconfig:"GNAVI_ACCESS_KEY" validate:"required_without=GnaviAccessKeyParameterName"`
    GnaviAccessKeyParameterName string `envconfig:"GNAVI_ACCESS_KEY_PARAMETER_NAME"`
    GnaviCategoryL              string `envconfig:"GNAVI_CATEGORY_L" default:"RSFST08000" validate:"required"`
    GnaviHitPerPage             int    `envconfig:"GNAVI_HIT_PER_PAGE" default:"5" validate:"min=1,max=5"`

    // link shortening API
    UrlShortenerUri string `envconfig:"URL_SHORTENER_URI" default:"https://www.googleapis.com/urlshortener/v1/url" validate:"required,url"`
    UrlShortenerKey string `envconfig:"URL_SHORTENER_KEY" validate:"required"`

    // TlsInsecureSkipVerify disables certificate verification on outbound calls.
    // The default matches how the bot has always been deployed; set it to false wherever the upstream chains verify.
    TlsInsecureSkipVerify bool          `envconfig:"TLS_INSECURE_SKIP_VERIFY" default:"true"`
    HttpTimeout           time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s" validate:"min=0"`

    Stage string `envconfig:"STAGE" default:"local" validate:"oneof=local alpha beta gamma prod"`

    // optional ops alerting
    SlackToken          string `envconfig:"SLACK_TOKEN"`
    SlackAlertChannelId string `envconfig:"SLACK_ALERT_CHANNEL_ID" validate:"required_with=SlackToken"`

    MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
    AwsRegion      string `envconfig:"AWS_REGION" default:"ap-northeast-1" validate:"required"`

    // local server only
    ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
    var cfg Config
    err := envconfig.Process("", &cfg)
    if err != nil {
        return nil, exception.NewInvalidConfigExceptionWithErr("error reading configuration from environment", err)
    }

    err = cfg.Validate()
    if err != nil {
        return nil, err
    }

    return &cfg, nil
}

func (c *Config) Validate() error {
    err := validate.Struct(c)
    if err != nil {
        return exception.NewInvalidConfigExceptionWithErr("configuration failed validation", err)
    }
    return nil
}

// ValidateResolved checks the values that may only be known after secrets and parameters are fetched
func (c *Config) ValidateResolved() error {
    if c.ChannelSecret == "" || c.ChannelAccessToken == "" {
        return exception.NewInvalidConfigException("LINE channel secret and access token must be configured")
    }
    if c.GnaviAccessKey == "" {
        return exception.NewInvalidConfigException("Gnavi access key must be configured")
    }
    return nil
}

func (c *Config) StageEnum() enum.Stage {
    stage, err := enum.ParseStage(c.Stage)
    if err != nil {
        // unreachable once Validate passed
        return enum.StageLocal
    }
    return stage
}
