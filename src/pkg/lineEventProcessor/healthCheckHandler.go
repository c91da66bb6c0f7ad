package lineEventProcessor

import (
    "encoding/json"
    "go.uber.org/zap"
)

/*
IsHealthCheckRequest - The LINE Platform may send an HTTP POST request that doesn't include a webhook event to confirm communication. In this case, send a 200 status code.

Parameters:

	body - The raw body of the request from the LINE Messaging webhook source

Returns:

	bool - true if the request is a health check call, false otherwise
*/
func IsHealthCheckRequest(body []byte, log *zap.SugaredLogger) (bool, error) {
    var parsed map[string]interface{}
    err := json.Unmarshal(body, &parsed)
    if err != nil {
        log.Error("Error parsing request body:", err)
        return false, err
    }

    parsedEvents, ok := parsed["events"].([]interface{})
    if !ok || len(parsedEvents) == 0 {
        log.Info("Request doesn't include any events. Likely a health check call.")
        return true, nil
    }

    return false, nil
}
