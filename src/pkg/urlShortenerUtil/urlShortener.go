package urlShortenerUtil

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/exception"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/metric"
    metricEnum "github.com/NoodleFinder/LocationHandlers/src/pkg/metric/enum"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model"
    "go.uber.org/zap"
    "net/http"
    "net/url"
    "strings"
)

type fetcher interface {
    Fetch(ctx context.Context, method string, uri string, payload any) ([]byte, error)
}

type UrlShortener struct {
    cfg     *config.Config
    fetcher fetcher
    metrics metric.Emitter
    log     *zap.SugaredLogger
}

func NewUrlShortener(cfg *config.Config, fetcher fetcher, metrics metric.Emitter, logger *zap.SugaredLogger) *UrlShortener {
    return &UrlShortener{
        cfg:     cfg,
        fetcher: fetcher,
        metrics: metrics,
        log:     logger,
    }
}

// Shorten returns the shortened form of longUrl, or longUrl itself when shortening fails for any reason
func (u *UrlShortener) Shorten(ctx context.Context, longUrl string) string {
    body, err := u.fetcher.Fetch(ctx, http.MethodPost, u.requestUri(), model.ShortenUrlRequest{LongUrl: longUrl})
    if err != nil {
        u.log.Errorf("Could not reach URL shortener for %s: %v", longUrl, err)
        return u.fallback(ctx, longUrl)
    }

    shortUrl, err := ParseShortenResponse(body)
    if err != nil {
        var apiErr *exception.UrlShortenerApiException
        if errors.As(err, &apiErr) {
            u.log.Errorf("URL SHORTENER API EXCEPTION status: %d message: %s", apiErr.Code, apiErr.Message)
        } else {
            u.log.Errorf("Error reading URL shortener response for %s: %v", longUrl, err)
        }
        return u.fallback(ctx, longUrl)
    }

    return shortUrl
}

func (u *UrlShortener) fallback(ctx context.Context, longUrl string) string {
    u.metrics.EmitMetric(ctx, metricEnum.MetricShortenerFallback, 1.0)
    return longUrl
}

func (u *UrlShortener) requestUri() string {
    separator := "?"
    if strings.Contains(u.cfg.UrlShortenerUri, "?") {
        separator = "&"
    }
    return u.cfg.UrlShortenerUri + separator + "key=" + url.QueryEscape(u.cfg.UrlShortenerKey)
}

func ParseShortenResponse(body []byte) (string, error) {
    if len(bytes.TrimSpace(body)) == 0 {
        return "", exception.NewEmptyResponseException("URL shortener returned an empty body")
    }

    var response model.ShortenUrlResponse
    err := json.Unmarshal(body, &response)
    if err != nil {
        return "", fmt.Errorf("error decoding URL shortener response JSON: %w", err)
    }

    if response.Error != nil {
        return "", exception.NewUrlShortenerApiException(response.Error.Code, response.Error.Message)
    }

    if strings.TrimSpace(response.Id) == "" {
        return "", exception.NewEmptyResponseException("URL shortener response has no id")
    }

    return response.Id, nil
}
