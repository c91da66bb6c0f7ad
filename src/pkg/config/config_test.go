package config

import (
    "errors"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/exception"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "testing"
    "time"
)

func setRequiredEnv(t *testing.T) {
    t.Setenv("CHANNEL_ACCESS_TOKEN", "token")
    t.Setenv("CHANNEL_SECRET", "secret")
    t.Setenv("GNAVI_ACCESS_KEY", "gnavi-key")
    t.Setenv("URL_SHORTENER_KEY", "shortener-key")
}

func TestLoadConfig_Defaults(t *testing.T) {
    setRequiredEnv(t)

    cfg, err := LoadConfig()
    require.NoError(t, err)

    assert.Equal(t, "token", cfg.ChannelAccessToken)
    assert.Equal(t, "secret", cfg.ChannelSecret)
    assert.Equal(t, "https://api.gnavi.co.jp/RestSearchAPI/20150630/", cfg.GnaviUri)
    assert.Equal(t, "RSFST08000", cfg.GnaviCategoryL)
    assert.Equal(t, 5, cfg.GnaviHitPerPage)
    assert.True(t, cfg.TlsInsecureSkipVerify)
    assert.Equal(t, time.Duration(0), cfg.HttpTimeout)
    assert.Equal(t, enum.StageLocal, cfg.StageEnum())
    assert.False(t, cfg.MetricsEnabled)
    assert.NoError(t, cfg.ValidateResolved())
}

func TestLoadConfig_Overrides(t *testing.T) {
    setRequiredEnv(t)
    t.Setenv("TLS_INSECURE_SKIP_VERIFY", "false")
    t.Setenv("HTTP_TIMEOUT", "3s")
    t.Setenv("GNAVI_HIT_PER_PAGE", "3")
    t.Setenv("STAGE", "prod")

    cfg, err := LoadConfig()
    require.NoError(t, err)

    assert.False(t, cfg.TlsInsecureSkipVerify)
    assert.Equal(t, 3*time.Second, cfg.HttpTimeout)
    assert.Equal(t, 3, cfg.GnaviHitPerPage)
    assert.Equal(t, enum.StageProd, cfg.StageEnum())
}

func TestLoadConfig_MissingChannelCredentials(t *testing.T) {
    t.Setenv("GNAVI_ACCESS_KEY", "gnavi-key")
    t.Setenv("URL_SHORTENER_KEY", "shortener-key")
    t.Setenv("CHANNEL_ACCESS_TOKEN", "")
    t.Setenv("CHANNEL_SECRET", "")

    _, err := LoadConfig()
    require.Error(t, err)

    var configErr *exception.InvalidConfigException
    assert.True(t, errors.As(err, &configErr))
}

func TestLoadConfig_SecretNameReplacesChannelCredentials(t *testing.T) {
    t.Setenv("GNAVI_ACCESS_KEY", "gnavi-key")
    t.Setenv("URL_SHORTENER_KEY", "shortener-key")
    t.Setenv("CHANNEL_ACCESS_TOKEN", "")
    t.Setenv("CHANNEL_SECRET", "")
    t.Setenv("SECRET_NAME", "NoodleFinder/secrets")

    cfg, err := LoadConfig()
    require.NoError(t, err)

    // still unresolved until the secret is fetched
    assert.Error(t, cfg.ValidateResolved())
}

func TestLoadConfig_HitPerPageOutOfRange(t *testing.T) {
    setRequiredEnv(t)

    for _, value := range []string{"0", "6"} {
        t.Setenv("GNAVI_HIT_PER_PAGE", value)
        _, err := LoadConfig()
        assert.Error(t, err, "hit per page %s should be rejected", value)
    }
}

func TestLoadConfig_SlackChannelRequiredWithToken(t *testing.T) {
    setRequiredEnv(t)
    t.Setenv("SLACK_TOKEN", "xoxb-token")

    _, err := LoadConfig()
    assert.Error(t, err)

    t.Setenv("SLACK_ALERT_CHANNEL_ID", "C123")
    _, err = LoadConfig()
    assert.NoError(t, err)
}

func TestLoadConfig_InvalidStage(t *testing.T) {
    setRequiredEnv(t)
    t.Setenv("STAGE", "staging")

    _, err := LoadConfig()
    assert.Error(t, err)
}
