package main

import (
    "bytes"
    "flag"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/logger"
    "github.com/NoodleFinder/LocationHandlers/tst/data/locationEventsHandlerTestEvents"
    "io"
    "net/http"
)

// Sends a signed location message webhook to a running local server, e.g. to check a new Gnavi key end to end.
// The reply call to LINE fails with the dummy reply token; the search and formatting still run and are logged.
func main() {
    log := logger.NewLogger()

    // --------------------
    // script parameters
    // --------------------
    target := flag.String("url", "http://localhost:8080/callback", "webhook URL")
    latitude := flag.Float64("lat", 35.681167, "latitude")
    longitude := flag.Float64("lon", 139.767052, "longitude")
    flag.Parse()

    cfg, err := config.LoadConfig()
    if err != nil {
        log.Fatal("Error loading configuration: ", err)
    }
    if cfg.ChannelSecret == "" {
        log.Fatal("CHANNEL_SECRET must be set to sign the webhook")
    }

    // --------------------
    // sign and send
    // --------------------
    body := locationEventsHandlerTestEvents.WebhookBody(
        locationEventsHandlerTestEvents.LocationMessageEventJson(locationEventsHandlerTestEvents.TestReplyToken, *latitude, *longitude))

    request, err := http.NewRequest(http.MethodPost, *target, bytes.NewReader(body))
    if err != nil {
        log.Fatal("Error creating request: ", err)
    }
    request.Header.Set("Content-Type", "application/json")
    request.Header.Set("X-Line-Signature", locationEventsHandlerTestEvents.Sign(cfg.ChannelSecret, body))

    resp, err := http.DefaultClient.Do(request)
    if err != nil {
        log.Fatal("Error sending webhook: ", err)
    }
    defer resp.Body.Close()

    respBody, _ := io.ReadAll(resp.Body)
    log.Infof("Webhook returned %d: %s", resp.StatusCode, respBody)
}
