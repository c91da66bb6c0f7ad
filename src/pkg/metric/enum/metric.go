package enum

type Metric int

const (
    Metric4xxError Metric = iota
    Metric5xxError
    MetricSearchApiError
    MetricShortenerFallback
)

func (s Metric) String() string {
    return []string{
        "4XXError",
        "5XXError",
        "SearchApiError",
        "ShortenerFallback",
    }[s]
}

// IsLambdaMetric reports whether the metric belongs with the built-in Lambda function metrics
func (s Metric) IsLambdaMetric() bool {
    return s == Metric4xxError || s == Metric5xxError
}
