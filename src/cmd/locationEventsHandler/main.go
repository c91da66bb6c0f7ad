package main

import (
    "context"
    "fmt"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/bootstrap"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/config"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineEventProcessor"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineUtil"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/logger"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/middleware"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-lambda-go/lambda"
    "github.com/google/uuid"
    "go.uber.org/zap"
)

func newRequestHandler(processor *lineEventProcessor.Processor, log *zap.SugaredLogger) middleware.LambdaFunctionURLHandler {
    return func(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
        requestLog := log.With("requestId", uuid.NewString())
        requestLog.Debugf("Received new request with %d header(s)", len(request.Headers))

        body, err := lineUtil.LambdaRequestBody(request)
        if err != nil {
            requestLog.Error("Error decoding request body: ", err)
            return events.LambdaFunctionURLResponse{
                StatusCode: 400,
                Headers:    map[string]string{"Content-Type": "application/json"},
                Body:       fmt.Sprintf(`{"error": "Failed to decode request body: %s"}`, err),
            }, nil
        }

        result := processor.WithLogger(requestLog).HandleWebhook(ctx, lineUtil.LambdaRequestHeader(request), body)
        return events.LambdaFunctionURLResponse{
            StatusCode: result.StatusCode,
            Headers:    map[string]string{"Content-Type": "application/json"},
            Body:       result.Body,
        }, nil
    }
}

func main() {
    log := logger.NewLogger()

    // --------------------
    // initialize resources once per cold start
    // --------------------
    cfg, err := config.LoadConfig()
    if err != nil {
        log.Fatal("Error loading configuration: ", err)
    }

    processor, emitter, err := bootstrap.NewProcessor(context.Background(), cfg, enum.HandlerNameLocationEventsHandler, log)
    if err != nil {
        log.Fatal("Error initializing location events handler: ", err)
    }

    lambda.Start(middleware.MetricMiddleware(emitter, log, newRequestHandler(processor, log)))
}
