package logger

import (
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "go.uber.org/zap"
    "log"
    "os"
)

func NewLogger() *zap.SugaredLogger {
    var logger *zap.Logger
    var err error

    // DEBUG level is only enabled locally
    stage := os.Getenv(util.StageEnvKey)
    if stage == "" || stage == enum.StageLocal.String() {
        logger, err = zap.NewDevelopment()
    } else {
        logger, err = zap.NewProduction()
    }
    if err != nil {
        log.Fatalf("can't initialize zap logger: %v", err)
    }
    return logger.Sugar()
}
