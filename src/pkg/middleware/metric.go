package middleware

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/metric"
    metricEnum "github.com/NoodleFinder/LocationHandlers/src/pkg/metric/enum"
    "github.com/aws/aws-lambda-go/events"
    "go.uber.org/zap"
)

type LambdaFunctionURLHandler func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// MetricMiddleware emits 4XX/5XX metrics based on the handler response. A panic counts as 5XX and is re-raised.
func MetricMiddleware(emitter metric.Emitter, log *zap.SugaredLogger, handler LambdaFunctionURLHandler) LambdaFunctionURLHandler {
    return func(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
        var response events.LambdaFunctionURLResponse
        var err error

        defer func() {
            r := recover()
            if r != nil {
                log.Infof("Emitting 5XXError metric due to panic")
                emitter.EmitMetric(ctx, metricEnum.Metric5xxError, 1.0)
                panic(r)
            }

            if response.StatusCode >= 400 && response.StatusCode < 500 {
                log.Infof("Emitting 4XXError metric")
                emitter.EmitMetric(ctx, metricEnum.Metric4xxError, 1.0)
            } else if response.StatusCode >= 500 {
                log.Infof("Emitting 5XXError metric")
                emitter.EmitMetric(ctx, metricEnum.Metric5xxError, 1.0)
            }
        }()

        response, err = handler(ctx, request)
        return response, err
    }
}
