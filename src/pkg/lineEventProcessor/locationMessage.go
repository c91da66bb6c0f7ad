package lineEventProcessor

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineUtil"
    metricEnum "github.com/NoodleFinder/LocationHandlers/src/pkg/metric/enum"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
)

// BuildLocationReply returns the reply texts for a location message:
// one per restaurant found, a single "not found" text when there are none,
// or a single failure text when the search could not be completed.
func (p *Processor) BuildLocationReply(ctx context.Context, event lineUtil.LocationMessageEvent) []string {
    restaurants, err := p.searcher.SearchNearby(ctx, event.Latitude, event.Longitude)
    if err != nil {
        p.log.Errorf("Search failed for location (%v, %v): %v", event.Latitude, event.Longitude, err)
        p.metrics.EmitMetric(ctx, metricEnum.MetricSearchApiError, 1.0)
        p.alertSearchFailure(ctx, event, err)
        return []string{util.SearchFailedMessage}
    }

    if len(restaurants) == 0 {
        return []string{util.NoRamenShopFoundMessage}
    }

    if len(restaurants) > util.LineMaxReplyMessages {
        p.log.Warnf("Search returned %d restaurants. Only the first %d fit in one reply.", len(restaurants), util.LineMaxReplyMessages)
        restaurants = restaurants[:util.LineMaxReplyMessages]
    }

    texts := make([]string, 0, len(restaurants))
    for _, restaurant := range restaurants {
        texts = append(texts, p.formatter.FormatRestaurant(ctx, restaurant))
    }
    return texts
}

func (p *Processor) alertSearchFailure(ctx context.Context, event lineUtil.LocationMessageEvent, cause error) {
    if p.alerter == nil {
        return
    }

    err := p.alerter.SendSearchFailureAlert(ctx, event.Latitude, event.Longitude, cause)
    if err != nil {
        p.log.Error("Error sending search failure alert: ", err)
    }
}
