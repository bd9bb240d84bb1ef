package recommendations

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/pkg/cache"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/metrics"
)

// Options tunes the recommendation engine thresholds
type Options struct {
	// MinConfidence is the minimum confidence for a pair to be recommended
	MinConfidence float64
	// MinTimesTogether is the minimum co-occurrence count for a pair to be recommended
	MinTimesTogether int
	// DefaultLimit is the number of recommendations returned when no limit is given
	DefaultLimit int
	// CacheTTL is how long recommendation lists stay in Redis
	CacheTTL time.Duration
}

// DefaultOptions returns the engine's default thresholds
func DefaultOptions() Options {
	return Options{
		MinConfidence:    0.15,
		MinTimesTogether: 2,
		DefaultLimit:     3,
		CacheTTL:         5 * time.Minute,
	}
}

// Engine implements "frequently bought together" recommendations from
// co-occurrence counting over completed orders. All state lives in
// ItemPairFrequency rows, one per unordered item pair per business.
type Engine struct {
	db      *ent.Client
	cache   *cache.Client
	log     logger.Logger
	opts    Options
	metrics *metrics.Metrics
}

// NewEngine creates a new recommendation engine. cacheClient may be nil,
// in which case recommendation lists are computed on every call.
func NewEngine(db *ent.Client, cacheClient *cache.Client, log logger.Logger, opts Options) *Engine {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultOptions().DefaultLimit
	}
	return &Engine{db: db, cache: cacheClient, log: log, opts: opts}
}

// WithMetrics attaches a metrics instance so pair updates and cache reads
// are counted. Returns the engine for chaining.
func (e *Engine) WithMetrics(m *metrics.Metrics) *Engine {
	e.metrics = m
	return e
}

// Recommendation is one suggested menu item with its supporting evidence
type Recommendation struct {
	MenuItemID  int     `json:"menu_item_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageKey    string  `json:"image_key,omitempty"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
}

// UpdatePairsFromOrder increments pair counts for every combination of
// distinct items in a completed order, then recomputes confidence for
// every pair touching those items. Orders that are not completed, or
// contain fewer than two distinct items, are skipped.
//
// Callers are expected to invoke this exactly once per transition into
// the completed status; the engine itself does not deduplicate, so a
// second call for the same order counts the pairs again.
func (e *Engine) UpdatePairsFromOrder(ctx context.Context, orderID uuid.UUID) error {
	o, err := e.db.Order.Query().
		Where(order.IDEQ(orderID)).
		WithItems().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	if o.Status != order.StatusCompleted {
		e.log.Debug("skipping pair update for non-completed order",
			"order_id", orderID.String(), "status", string(o.Status))
		return nil
	}

	itemIDs := distinctItemIDs(o.Edges.Items)
	if len(itemIDs) < 2 {
		e.log.Debug("order has fewer than two distinct items, nothing to pair",
			"order_id", orderID.String(), "items", len(itemIDs))
		return nil
	}

	tx, err := e.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := e.updatePairsTx(ctx, tx, o.BusinessID, itemIDs); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pair updates: %w", err)
	}

	e.invalidateCache(ctx, o.BusinessID)

	pairCount := len(itemIDs) * (len(itemIDs) - 1) / 2
	if e.metrics != nil {
		e.metrics.RecordItemPairsUpdated(pairCount)
	}

	e.log.Info("updated item pairs from order",
		"order_id", orderID.String(),
		"business_id", o.BusinessID,
		"distinct_items", len(itemIDs),
		"pairs", pairCount)

	return nil
}

func (e *Engine) updatePairsTx(ctx context.Context, tx *ent.Tx, businessID int, itemIDs []int) error {
	for i := 0; i < len(itemIDs); i++ {
		for j := i + 1; j < len(itemIDs); j++ {
			a, b := canonicalPair(itemIDs[i], itemIDs[j])
			err := tx.ItemPairFrequency.Create().
				SetBusinessID(businessID).
				SetItemAID(a).
				SetItemBID(b).
				OnConflictColumns(
					itempairfrequency.FieldBusinessID,
					itempairfrequency.FieldItemAID,
					itempairfrequency.FieldItemBID,
				).
				Update(func(u *ent.ItemPairFrequencyUpsert) {
					u.AddTimesTogether(1)
					u.SetUpdatedAt(time.Now())
				}).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to upsert pair (%d,%d): %w", a, b, err)
			}
		}
	}

	return e.recomputeConfidenceTx(ctx, tx, businessID, itemIDs)
}

// recomputeConfidenceTx recalculates confidence for every pair of the
// business that contains one of the given items.
//
// Confidence is times_together divided by the number of completed orders
// containing the pair's first item. The single score stands in for both
// directions of the pair; a true conditional probability would need one
// score per direction.
func (e *Engine) recomputeConfidenceTx(ctx context.Context, tx *ent.Tx, businessID int, itemIDs []int) error {
	pairs, err := tx.ItemPairFrequency.Query().
		Where(
			itempairfrequency.BusinessIDEQ(businessID),
			itempairfrequency.Or(
				itempairfrequency.ItemAIDIn(itemIDs...),
				itempairfrequency.ItemBIDIn(itemIDs...),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query pairs for confidence update: %w", err)
	}

	orderCounts := make(map[int]int)
	for _, p := range pairs {
		count, ok := orderCounts[p.ItemAID]
		if !ok {
			count, err = tx.Order.Query().
				Where(
					order.BusinessIDEQ(businessID),
					order.StatusEQ(order.StatusCompleted),
					order.HasItemsWith(orderitem.MenuItemIDEQ(p.ItemAID)),
				).
				Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to count orders for item %d: %w", p.ItemAID, err)
			}
			orderCounts[p.ItemAID] = count
		}

		if count == 0 {
			continue
		}

		confidence := float64(p.TimesTogether) / float64(count)
		if confidence == p.Confidence {
			continue
		}

		if err := tx.ItemPairFrequency.UpdateOneID(p.ID).
			SetConfidence(confidence).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update confidence for pair %d: %w", p.ID, err)
		}
	}

	return nil
}

// RecomputeConfidence recalculates confidence for every pair of a business.
// Used by the nightly job so drift from out-of-band data changes heals itself.
// Returns the number of pairs whose confidence changed.
func (e *Engine) RecomputeConfidence(ctx context.Context, businessID int) (int, error) {
	pairs, err := e.db.ItemPairFrequency.Query().
		Where(itempairfrequency.BusinessIDEQ(businessID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query pairs: %w", err)
	}

	orderCounts := make(map[int]int)
	updated := 0
	for _, p := range pairs {
		count, ok := orderCounts[p.ItemAID]
		if !ok {
			count, err = e.db.Order.Query().
				Where(
					order.BusinessIDEQ(businessID),
					order.StatusEQ(order.StatusCompleted),
					order.HasItemsWith(orderitem.MenuItemIDEQ(p.ItemAID)),
				).
				Count(ctx)
			if err != nil {
				return updated, fmt.Errorf("failed to count orders for item %d: %w", p.ItemAID, err)
			}
			orderCounts[p.ItemAID] = count
		}

		if count == 0 {
			continue
		}

		confidence := float64(p.TimesTogether) / float64(count)
		if confidence == p.Confidence {
			continue
		}

		if err := e.db.ItemPairFrequency.UpdateOneID(p.ID).
			SetConfidence(confidence).
			Exec(ctx); err != nil {
			return updated, fmt.Errorf("failed to update confidence for pair %d: %w", p.ID, err)
		}
		updated++
	}

	if updated > 0 {
		e.invalidateCache(ctx, businessID)
	}

	return updated, nil
}

// GetRecommendations returns up to limit items frequently bought together
// with the given item, strongest association first. Unavailable and deleted
// items are dropped without backfilling, so fewer than limit items may come
// back.
func (e *Engine) GetRecommendations(ctx context.Context, businessID, menuItemID, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = e.opts.DefaultLimit
	}

	cacheKey := fmt.Sprintf("recommendations:%d:%d:%d", businessID, menuItemID, limit)
	if e.cache != nil {
		if cached, err := e.cache.Get(ctx, cacheKey); err == nil {
			var recs []Recommendation
			if err := json.Unmarshal([]byte(cached), &recs); err == nil {
				if e.metrics != nil {
					e.metrics.RecordCacheHit("recommendations")
				}
				return recs, nil
			}
		}
		if e.metrics != nil {
			e.metrics.RecordCacheMiss("recommendations")
		}
	}

	pairs, err := e.db.ItemPairFrequency.Query().
		Where(
			itempairfrequency.BusinessIDEQ(businessID),
			itempairfrequency.Or(
				itempairfrequency.ItemAIDEQ(menuItemID),
				itempairfrequency.ItemBIDEQ(menuItemID),
			),
			itempairfrequency.ConfidenceGTE(e.opts.MinConfidence),
			itempairfrequency.TimesTogetherGTE(e.opts.MinTimesTogether),
		).
		Order(
			ent.Desc(itempairfrequency.FieldConfidence),
			ent.Desc(itempairfrequency.FieldTimesTogether),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query item pairs: %w", err)
	}

	recs := make([]Recommendation, 0, len(pairs))
	for _, p := range pairs {
		otherID := p.ItemAID
		if otherID == menuItemID {
			otherID = p.ItemBID
		}

		item, err := e.db.MenuItem.Get(ctx, otherID)
		if ent.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load menu item %d: %w", otherID, err)
		}
		if !item.IsAvailable {
			continue
		}

		recs = append(recs, Recommendation{
			MenuItemID:  item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			ImageKey:    item.ImageKey,
			Reason:      fmt.Sprintf("%d customers bought both", p.TimesTogether),
			Confidence:  math.Round(p.Confidence*1000) / 10,
		})
	}

	if e.cache != nil {
		if payload, err := json.Marshal(recs); err == nil {
			if err := e.cache.Set(ctx, cacheKey, payload, e.opts.CacheTTL); err != nil {
				e.log.Warn("failed to cache recommendations", "key", cacheKey, "error", err)
			}
		}
	}

	return recs, nil
}

// TrackImpression records that an item was shown as a recommendation.
// sourceItemID is the item the customer was viewing; when it is known the
// matching pair's times_recommended counter is bumped. An impression without
// a recommended item is invalid and ignored with a warning.
func (e *Engine) TrackImpression(ctx context.Context, businessID int, sourceItemID *int, recommendedItemID int) error {
	if recommendedItemID <= 0 {
		e.log.Warn("impression tracking requires a recommended item", "business_id", businessID)
		return nil
	}

	builder := e.db.RecommendationEvent.Create().
		SetBusinessID(businessID).
		SetRecommendedItemID(recommendedItemID).
		SetEventType(recommendationevent.EventTypeImpression)
	if sourceItemID != nil {
		builder = builder.SetSourceItemID(*sourceItemID)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record impression: %w", err)
	}

	if sourceItemID != nil {
		a, b := canonicalPair(*sourceItemID, recommendedItemID)
		n, err := e.db.ItemPairFrequency.Update().
			Where(
				itempairfrequency.BusinessIDEQ(businessID),
				itempairfrequency.ItemAIDEQ(a),
				itempairfrequency.ItemBIDEQ(b),
			).
			AddTimesRecommended(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update pair impression count: %w", err)
		}
		if n == 0 {
			e.log.Debug("impression for pair with no frequency row yet",
				"business_id", businessID, "item_a", a, "item_b", b)
		}
	}

	return nil
}

// TrackConversion records that a recommended item was actually ordered.
// When explicitRevenue is nil, revenue is taken from the matching order line
// (quantity times the price at order time), or zero when the order has no
// such line; a non-nil value overrides the derived amount.
//
// Every pair containing the converted item gets the conversion and revenue
// credit; which impression actually triggered the purchase is not tracked.
func (e *Engine) TrackConversion(ctx context.Context, businessID, recommendedItemID int, orderID uuid.UUID, explicitRevenue *float64) error {
	if recommendedItemID <= 0 {
		e.log.Warn("conversion tracking requires a recommended item", "business_id", businessID)
		return nil
	}

	revenue := 0.0
	if explicitRevenue != nil {
		revenue = *explicitRevenue
	} else {
		line, err := e.db.OrderItem.Query().
			Where(
				orderitem.OrderIDEQ(orderID),
				orderitem.MenuItemIDEQ(recommendedItemID),
			).
			Only(ctx)
		switch {
		case err == nil:
			revenue = float64(line.Quantity) * line.PriceAtOrder
		case ent.IsNotFound(err):
			// Order has no line for the item, record the conversion with zero revenue
		default:
			return fmt.Errorf("failed to load order line: %w", err)
		}
	}

	if _, err := e.db.RecommendationEvent.Create().
		SetBusinessID(businessID).
		SetRecommendedItemID(recommendedItemID).
		SetEventType(recommendationevent.EventTypeConversion).
		SetOrderID(orderID).
		SetRevenue(revenue).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	if _, err := e.db.ItemPairFrequency.Update().
		Where(
			itempairfrequency.BusinessIDEQ(businessID),
			itempairfrequency.Or(
				itempairfrequency.ItemAIDEQ(recommendedItemID),
				itempairfrequency.ItemBIDEQ(recommendedItemID),
			),
		).
		AddTimesConverted(1).
		AddRevenueGenerated(revenue).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update pair conversion counts: %w", err)
	}

	return nil
}

// InvalidateCachedLists drops every cached recommendation list for a
// business. Callers that change what may be recommended without going
// through the engine, such as menu availability toggles, use this to keep
// cached lists from serving stale items.
func InvalidateCachedLists(ctx context.Context, c *cache.Client, businessID int) error {
	if c == nil {
		return nil
	}
	return c.DeletePattern(ctx, fmt.Sprintf("recommendations:%d:*", businessID))
}

// invalidateCache drops every cached recommendation list for a business
func (e *Engine) invalidateCache(ctx context.Context, businessID int) {
	if err := InvalidateCachedLists(ctx, e.cache, businessID); err != nil {
		e.log.Warn("failed to invalidate recommendation cache",
			"business_id", businessID, "error", err)
	}
}

// distinctItemIDs extracts the sorted distinct menu item ids from order lines.
// Lines whose menu item was deleted carry a nil id and are skipped.
func distinctItemIDs(items []*ent.OrderItem) []int {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if it.MenuItemID == nil {
			continue
		}
		seen[*it.MenuItemID] = struct{}{}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func canonicalPair(x, y int) (int, int) {
	if x < y {
		return x, y
	}
	return y, x
}
