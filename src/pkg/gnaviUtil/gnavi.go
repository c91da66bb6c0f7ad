package gnaviUtil

import (
    "bytes"
    "context"
    "encoding/xml"
    "errors"
    "fmt"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/exception"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "go.uber.org/zap"
    "net/http"
    "net/url"
    "strconv"
    "strings"
)

type fetcher interface {
    Fetch(ctx context.Context, method string, uri string, payload any) ([]byte, error)
}

type Gnavi struct {
    cfg     *config.Config
    fetcher fetcher
    log     *zap.SugaredLogger
}

func NewGnavi(cfg *config.Config, fetcher fetcher, logger *zap.SugaredLogger) *Gnavi {
    return &Gnavi{
        cfg:     cfg,
        fetcher: fetcher,
        log:     logger,
    }
}

// BuildSearchUri composes the search query. Field order is fixed: key, latitude, longitude, category, page size.
func BuildSearchUri(cfg *config.Config, latitude float64, longitude float64) string {
    var sb strings.Builder
    sb.WriteString(cfg.GnaviUri)
    if strings.Contains(cfg.GnaviUri, "?") {
        sb.WriteString("&")
    } else {
        sb.WriteString("?")
    }
    sb.WriteString("keyid=" + url.QueryEscape(cfg.GnaviAccessKey))
    sb.WriteString("&latitude=" + formatCoordinate(latitude))
    sb.WriteString("&longitude=" + formatCoordinate(longitude))
    sb.WriteString("&category_l=" + url.QueryEscape(cfg.GnaviCategoryL))
    sb.WriteString("&hit_per_page=" + strconv.Itoa(cfg.GnaviHitPerPage))
    return sb.String()
}

func formatCoordinate(degrees float64) string {
    return strconv.FormatFloat(degrees, 'f', -1, 64)
}

// SearchNearby returns the restaurants near the coordinates.
// The "no result" API code yields an empty list and a nil error.
// Other API codes yield *exception.GnaviApiException.
func (g *Gnavi) SearchNearby(ctx context.Context, latitude float64, longitude float64) ([]model.Restaurant, error) {
    body, err := g.fetcher.Fetch(ctx, http.MethodGet, BuildSearchUri(g.cfg, latitude, longitude), nil)
    if err != nil {
        g.log.Errorf("Could not fetch Gnavi search results for (%v, %v): %v", latitude, longitude, err)
        return nil, err
    }

    restaurants, err := ParseSearchResponse(body)
    if err != nil {
        var apiErr *exception.GnaviApiException
        if errors.As(err, &apiErr) {
            g.log.Errorf("GNAVI API EXCEPTION status: %d message: %s", apiErr.Code, apiErr.Message)
        } else {
            g.log.Errorf("Error reading Gnavi search response: %v", err)
        }
        return nil, err
    }

    g.log.Infof("Gnavi search for (%v, %v) returned %d restaurants", latitude, longitude, len(restaurants))
    return restaurants, nil
}

func ParseSearchResponse(body []byte) ([]model.Restaurant, error) {
    if len(bytes.TrimSpace(body)) == 0 {
        return nil, exception.NewEmptyResponseException("Gnavi search API returned an empty body")
    }

    var response model.GnaviSearchResponse
    err := xml.Unmarshal(body, &response)
    if err != nil {
        return nil, fmt.Errorf("error decoding Gnavi search response XML: %w", err)
    }

    if response.Error != nil {
        if response.Error.Code == util.GnaviNoResultErrorCode {
            return []model.Restaurant{}, nil
        }
        return nil, exception.NewGnaviApiException(response.Error.Code, response.Error.Message)
    }

    if response.Restaurants == nil {
        return []model.Restaurant{}, nil
    }
    return response.Restaurants, nil
}
