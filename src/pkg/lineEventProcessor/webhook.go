package lineEventProcessor

import (
    "context"
    "fmt"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineUtil"
    "net/http"
)

type WebhookResult struct {
    StatusCode int
    Body       string
}

// HandleWebhook is shared by the Lambda handler and the local server
func (p *Processor) HandleWebhook(ctx context.Context, header http.Header, body []byte) WebhookResult {
    isHealthCheckCall, err := IsHealthCheckRequest(body, p.log)
    if err != nil {
        return WebhookResult{
            StatusCode: http.StatusBadRequest,
            Body:       fmt.Sprintf(`{"error": "Failed to handle health check call. Malformat request? : %s"}`, err),
        }
    }
    if isHealthCheckCall {
        return WebhookResult{StatusCode: http.StatusOK, Body: `{"message": "OK"}`}
    }

    err = p.ProcessRequest(ctx, lineUtil.NewWebhookRequest(header, body))
    if err != nil {
        return WebhookResult{
            StatusCode: http.StatusBadRequest,
            Body:       fmt.Sprintf(`{"error": "Failed to parse request: %s"}`, err),
        }
    }

    return WebhookResult{StatusCode: http.StatusOK, Body: `{"message": "OK"}`}
}
