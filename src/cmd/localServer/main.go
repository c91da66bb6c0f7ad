package main

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/bootstrap"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/logger"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/webhookServer"
    "net/http"
    "os"
)

func main() {
    log := logger.NewLogger()

    cfg, err := config.LoadConfig()
    if err != nil {
        log.Fatal("Error loading configuration: ", err)
    }

    processor, _, err := bootstrap.NewProcessor(context.Background(), cfg, enum.HandlerNameLocalServer, log)
    if err != nil {
        log.Fatal("Error initializing local server: ", err)
    }

    r := webhookServer.NewRouter(processor, log, os.Stdout)

    log.Info("Listening on: ", cfg.ListenAddr)
    log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}
