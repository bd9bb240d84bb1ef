package recommendations

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/ent/recommendationevent"
)

// Analytics reports on recommendation performance from the event log
// and the pair counters
type Analytics struct {
	db *ent.Client
}

// NewAnalytics creates a new recommendation analytics service
func NewAnalytics(db *ent.Client) *Analytics {
	return &Analytics{db: db}
}

// PerformanceSummary aggregates recommendation performance for one business
// over a trailing window
type PerformanceSummary struct {
	BusinessID     int     `json:"business_id"`
	PeriodDays     int     `json:"period_days"`
	Impressions    int     `json:"impressions"`
	Conversions    int     `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PairPerformance is one item pair with its accumulated counters
type PairPerformance struct {
	ItemAID          int     `json:"item_a_id"`
	ItemAName        string  `json:"item_a_name"`
	ItemBID          int     `json:"item_b_id"`
	ItemBName        string  `json:"item_b_name"`
	TimesTogether    int     `json:"times_together"`
	TimesRecommended int     `json:"times_recommended"`
	TimesConverted   int     `json:"times_converted"`
	RevenueGenerated float64 `json:"revenue_generated"`
	Confidence       float64 `json:"confidence"`
}

// NetworkSummary aggregates recommendation performance across all active
// businesses, optionally restricted to one business type
type NetworkSummary struct {
	PeriodDays        int     `json:"period_days"`
	Businesses        int     `json:"businesses"`
	Impressions       int     `json:"impressions"`
	Conversions       int     `json:"conversions"`
	Revenue           float64 `json:"revenue"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
}

// NetworkComparison contrasts one business against the network average
// for its business type
type NetworkComparison struct {
	Business     *PerformanceSummary `json:"business"`
	Network      *NetworkSummary     `json:"network"`
	RateDelta    float64             `json:"rate_delta"`
	AboveNetwork bool                `json:"above_network"`
}

// GetPerformanceSummary returns impression, conversion and revenue totals
// for the trailing days window, with the conversion rate as a percentage
func (a *Analytics) GetPerformanceSummary(ctx context.Context, businessID, days int) (*PerformanceSummary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	impressions, err := a.db.RecommendationEvent.Query().
		Where(
			recommendationevent.BusinessIDEQ(businessID),
			recommendationevent.EventTypeEQ(recommendationevent.EventTypeImpression),
			recommendationevent.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count impressions: %w", err)
	}

	conversionEvents, err := a.db.RecommendationEvent.Query().
		Where(
			recommendationevent.BusinessIDEQ(businessID),
			recommendationevent.EventTypeEQ(recommendationevent.EventTypeConversion),
			recommendationevent.CreatedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}

	revenue := 0.0
	for _, ev := range conversionEvents {
		revenue += ev.Revenue
	}

	summary := &PerformanceSummary{
		BusinessID:  businessID,
		PeriodDays:  days,
		Impressions: impressions,
		Conversions: len(conversionEvents),
		Revenue:     math.Round(revenue*100) / 100,
	}
	if impressions > 0 {
		summary.ConversionRate = math.Round(float64(len(conversionEvents))/float64(impressions)*1000) / 10
	}

	return summary, nil
}

// GetTopPerformingPairs returns the pairs that generated the most revenue,
// revenue first then conversion count. Pairs that never converted are
// excluded.
func (a *Analytics) GetTopPerformingPairs(ctx context.Context, businessID, limit int) ([]PairPerformance, error) {
	if limit <= 0 {
		limit = 10
	}

	pairs, err := a.db.ItemPairFrequency.Query().
		Where(
			itempairfrequency.BusinessIDEQ(businessID),
			itempairfrequency.TimesConvertedGT(0),
		).
		Order(
			ent.Desc(itempairfrequency.FieldRevenueGenerated),
			ent.Desc(itempairfrequency.FieldTimesConverted),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query top pairs: %w", err)
	}

	names, err := a.itemNames(ctx, pairs)
	if err != nil {
		return nil, err
	}

	result := make([]PairPerformance, 0, len(pairs))
	for _, p := range pairs {
		result = append(result, PairPerformance{
			ItemAID:          p.ItemAID,
			ItemAName:        names[p.ItemAID],
			ItemBID:          p.ItemBID,
			ItemBName:        names[p.ItemBID],
			TimesTogether:    p.TimesTogether,
			TimesRecommended: p.TimesRecommended,
			TimesConverted:   p.TimesConverted,
			RevenueGenerated: math.Round(p.RevenueGenerated*100) / 100,
			Confidence:       math.Round(p.Confidence*1000) / 10,
		})
	}

	return result, nil
}

// GetNetworkSummary aggregates performance across every active business,
// optionally restricted to one business type. The average conversion rate
// is the mean of per-business rates, so small tenants weigh the same as
// large ones.
func (a *Analytics) GetNetworkSummary(ctx context.Context, days int, businessType string) (*NetworkSummary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	query := a.db.RecommendationEvent.Query().
		Where(
			recommendationevent.CreatedAtGTE(since),
			recommendationevent.HasBusinessWith(business.IsActiveEQ(true)),
		)
	if businessType != "" {
		query = query.Where(
			recommendationevent.HasBusinessWith(business.BusinessTypeEQ(business.BusinessType(businessType))),
		)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query network events: %w", err)
	}

	type tally struct {
		impressions int
		conversions int
	}
	perBusiness := make(map[int]*tally)
	summary := &NetworkSummary{PeriodDays: days}

	for _, ev := range events {
		t, ok := perBusiness[ev.BusinessID]
		if !ok {
			t = &tally{}
			perBusiness[ev.BusinessID] = t
		}
		switch ev.EventType {
		case recommendationevent.EventTypeImpression:
			t.impressions++
			summary.Impressions++
		case recommendationevent.EventTypeConversion:
			t.conversions++
			summary.Conversions++
			summary.Revenue += ev.Revenue
		}
	}

	summary.Businesses = len(perBusiness)
	summary.Revenue = math.Round(summary.Revenue*100) / 100

	rateSum := 0.0
	rated := 0
	for _, t := range perBusiness {
		if t.impressions == 0 {
			continue
		}
		rateSum += float64(t.conversions) / float64(t.impressions) * 100
		rated++
	}
	if rated > 0 {
		summary.AvgConversionRate = math.Round(rateSum/float64(rated)*10) / 10
	}

	return summary, nil
}

// CompareToNetwork contrasts a business's conversion rate with the network
// average for businesses of the same type
func (a *Analytics) CompareToNetwork(ctx context.Context, businessID, days int) (*NetworkComparison, error) {
	biz, err := a.db.Business.Get(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business %d: %w", businessID, err)
	}

	own, err := a.GetPerformanceSummary(ctx, businessID, days)
	if err != nil {
		return nil, err
	}

	network, err := a.GetNetworkSummary(ctx, days, string(biz.BusinessType))
	if err != nil {
		return nil, err
	}

	delta := math.Round((own.ConversionRate-network.AvgConversionRate)*10) / 10

	return &NetworkComparison{
		Business:     own,
		Network:      network,
		RateDelta:    delta,
		AboveNetwork: delta > 0,
	}, nil
}

func (a *Analytics) itemNames(ctx context.Context, pairs []*ent.ItemPairFrequency) (map[int]string, error) {
	idSet := make(map[int]struct{})
	for _, p := range pairs {
		idSet[p.ItemAID] = struct{}{}
		idSet[p.ItemBID] = struct{}{}
	}
	if len(idSet) == 0 {
		return map[int]string{}, nil
	}

	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	items, err := a.db.MenuItem.Query().
		Where(menuitem.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	names := make(map[int]string, len(ids))
	for _, id := range ids {
		names[id] = "Deleted item"
	}
	for _, it := range items {
		names[it.ID] = it.Name
	}

	return names, nil
}
