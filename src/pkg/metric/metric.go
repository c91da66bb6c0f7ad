package metric

import (
    "context"
    metricEnum "github.com/NoodleFinder/LocationHandlers/src/pkg/metric/enum"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model/enum"
    "github.com/aws/aws-sdk-go-v2/aws"
    "github.com/aws/aws-sdk-go-v2/config"
    "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
    "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
    "go.uber.org/zap"
)

const customMetricNamespace = "NoodleFinder/Metrics"

type Emitter interface {
    EmitMetric(ctx context.Context, metric metricEnum.Metric, value float64)
}

type metricDataPutter interface {
    PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

type CloudWatchEmitter struct {
    client      metricDataPutter
    handlerName enum.HandlerName
    log         *zap.SugaredLogger
}

func NewCloudWatchEmitter(ctx context.Context, region string, handlerName enum.HandlerName, logger *zap.SugaredLogger) (*CloudWatchEmitter, error) {
    cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
    if err != nil {
        logger.Error("Error loading AWS config: ", err)
        return nil, err
    }

    return &CloudWatchEmitter{
        client:      cloudwatch.NewFromConfig(cfg),
        handlerName: handlerName,
        log:         logger,
    }, nil
}

// EmitMetric never fails the caller. Errors are logged.
func (c *CloudWatchEmitter) EmitMetric(ctx context.Context, metric metricEnum.Metric, value float64) {
    _, err := c.client.PutMetricData(ctx, buildPutMetricDataInput(metric, c.handlerName, value))
    if err != nil {
        c.log.Error("Error emitting metric: ", err)
    }
}

func buildPutMetricDataInput(metric metricEnum.Metric, handlerName enum.HandlerName, value float64) *cloudwatch.PutMetricDataInput {
    if metric.IsLambdaMetric() {
        return &cloudwatch.PutMetricDataInput{
            Namespace: aws.String("AWS/Lambda"),
            MetricData: []types.MetricDatum{
                {
                    MetricName: aws.String(metric.String()),
                    Dimensions: []types.Dimension{
                        {
                            Name:  aws.String("FunctionName"),
                            Value: aws.String(handlerName.String()),
                        },
                    },
                    Unit:  types.StandardUnitCount,
                    Value: aws.Float64(value),
                },
            },
        }
    }

    return &cloudwatch.PutMetricDataInput{
        Namespace: aws.String(customMetricNamespace),
        MetricData: []types.MetricDatum{
            {
                MetricName: aws.String(metric.String()),
                Unit:       types.StandardUnitCount,
                Value:      aws.Float64(value),
            },
        },
    }
}

// NoopEmitter is used when metrics are disabled, e.g. on the local server
type NoopEmitter struct{}

func (NoopEmitter) EmitMetric(context.Context, metricEnum.Metric, float64) {}
