package httpUtil

import (
    "bytes"
    "context"
    "crypto/tls"
    "encoding/json"
    "fmt"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/exception"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "go.uber.org/zap"
    "io"
    "net/http"
)

// Fetcher performs one synchronous outbound call. It never retries.
type Fetcher struct {
    client *http.Client
    log    *zap.SugaredLogger
}

func NewFetcher(cfg *config.Config, logger *zap.SugaredLogger) *Fetcher {
    transport := http.DefaultTransport.(*http.Transport).Clone()
    if cfg.TlsInsecureSkipVerify {
        logger.Warn("TLS certificate verification is disabled for outbound requests (TLS_INSECURE_SKIP_VERIFY=true)")
        transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
    }

    return &Fetcher{
        client: &http.Client{
            Transport: transport,
            Timeout:   cfg.HttpTimeout,
        },
        log: logger,
    }
}

// Fetch issues a GET, or a POST with payload encoded as JSON.
// A nil error means a response arrived, and its body is returned even when empty or non-2xx,
// since both upstream APIs report failures in the body.
// A *exception.TransportException means no response was obtained.
func (f *Fetcher) Fetch(ctx context.Context, method string, uri string, payload any) ([]byte, error) {
    var body io.Reader
    switch method {
    case http.MethodGet:
    case http.MethodPost:
        jsonData, err := json.Marshal(payload)
        if err != nil {
            f.log.Errorf("error marshaling payload to JSON: %v", err)
            return nil, exception.NewTransportException("error marshaling payload to JSON", err)
        }
        body = bytes.NewReader(jsonData)
    default:
        return nil, exception.NewTransportException("unsupported HTTP method", fmt.Errorf("method %s", method))
    }

    req, err := http.NewRequestWithContext(ctx, method, uri, body)
    if err != nil {
        f.log.Errorf("error creating HTTP request: %v", err)
        return nil, exception.NewTransportException("error creating HTTP request", err)
    }
    if method == http.MethodPost {
        req.Header.Set("Content-Type", "application/json; charset=UTF-8")
    }

    redactedUri := util.RedactQuery(uri)
    resp, err := f.client.Do(req)
    if err != nil {
        f.log.Errorf("APIRequest failed for %s %s: %v", method, redactedUri, err)
        return nil, exception.NewTransportException(fmt.Sprintf("%s %s failed", method, redactedUri), err)
    }
    defer resp.Body.Close()

    respBody, err := io.ReadAll(resp.Body)
    if err != nil {
        f.log.Errorf("error reading response body from %s %s: %v", method, redactedUri, err)
        return nil, exception.NewTransportException(fmt.Sprintf("reading response of %s %s failed", method, redactedUri), err)
    }

    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        f.log.Warnf("received non-2xx status code %d from %s %s", resp.StatusCode, method, redactedUri)
    }

    f.log.Debugf("%s %s returned %d bytes", method, redactedUri, len(respBody))
    return respBody, nil
}
