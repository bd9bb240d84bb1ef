package orders

import (
	"context"
	"fmt"
	"math"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"github.com/google/uuid"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

// Service handles order creation and the status workflow
type Service struct {
	db      *ent.Client
	engine  *recommendations.Engine
	log     logger.Logger
	taxRate float64
}

// NewService creates a new orders service
func NewService(db *ent.Client, engine *recommendations.Engine, log logger.Logger, taxRate float64) *Service {
	return &Service{db: db, engine: engine, log: log, taxRate: taxRate}
}

// OrderItemInput is one requested line of a new order
type OrderItemInput struct {
	MenuItemID int `json:"menu_item_id" validate:"required"`
	Quantity   int `json:"quantity" validate:"required,min=1"`
}

// CreateOrderInput holds everything needed to place an order
type CreateOrderInput struct {
	BusinessID      int              `json:"business_id" validate:"required"`
	Location        string           `json:"location" validate:"required,max=50"`
	TableID         *int             `json:"table_id,omitempty"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	SpecialRequests string           `json:"special_requests,omitempty"`
	TipAmount       float64          `json:"tip_amount,omitempty" validate:"min=0"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// statusTransitions is the order workflow. Cancellation is allowed from any
// non-terminal status; completed and cancelled are terminal.
var statusTransitions = map[order.Status][]order.Status{
	order.StatusPending:   {order.StatusAccepted, order.StatusCancelled},
	order.StatusAccepted:  {order.StatusPreparing, order.StatusCancelled},
	order.StatusPreparing: {order.StatusReady, order.StatusCancelled},
	order.StatusReady:     {order.StatusDelivered, order.StatusCancelled},
	order.StatusDelivered: {order.StatusCompleted, order.StatusCancelled},
	order.StatusCompleted: {},
	order.StatusCancelled: {},
}

func transitionAllowed(from, to order.Status) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Create places a new order. Prices are captured from the current menu,
// totals computed as subtotal + tax + tip, and an items snapshot stored so
// later menu edits do not rewrite order history.
func (s *Service) Create(ctx context.Context, input CreateOrderInput) (*ent.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.NewValidationError("order must contain at least one item")
	}
	for _, it := range input.Items {
		if it.Quantity < 1 {
			return nil, domain.NewValidationError("item quantity must be at least 1")
		}
	}

	biz, err := s.db.Business.Get(ctx, input.BusinessID)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("business")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	if !biz.IsActive {
		return nil, domain.NewForbiddenError("business is not accepting orders")
	}

	itemIDs := make([]int, 0, len(input.Items))
	for _, it := range input.Items {
		itemIDs = append(itemIDs, it.MenuItemID)
	}

	items, err := s.db.MenuItem.Query().
		Where(
			menuitem.IDIn(itemIDs...),
			menuitem.HasCategoryWith(category.BusinessIDEQ(input.BusinessID)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	byID := make(map[int]*ent.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for _, it := range input.Items {
		item, ok := byID[it.MenuItemID]
		if !ok {
			return nil, domain.NewValidationError(fmt.Sprintf("menu item %d not found on this menu", it.MenuItemID))
		}
		if !item.IsAvailable {
			return nil, domain.NewValidationError(fmt.Sprintf("%s is currently unavailable", item.Name))
		}
	}

	if input.TableID != nil {
		ok, err := s.db.Table.Query().
			Where(table.IDEQ(*input.TableID), table.BusinessIDEQ(input.BusinessID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check table: %w", err)
		}
		if !ok {
			return nil, domain.NewValidationError("table does not belong to this business")
		}
	}

	subtotal := 0.0
	snapshot := make([]map[string]interface{}, 0, len(input.Items))
	for _, it := range input.Items {
		item := byID[it.MenuItemID]
		lineTotal := round2(float64(it.Quantity) * item.Price)
		subtotal += lineTotal
		snapshot = append(snapshot, map[string]interface{}{
			"menu_item_id": item.ID,
			"name":         item.Name,
			"quantity":     it.Quantity,
			"price":        item.Price,
			"line_total":   lineTotal,
		})
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * s.taxRate)
	tip := round2(input.TipAmount)
	total := round2(subtotal + tax + tip)

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	builder := tx.Order.Create().
		SetBusinessID(input.BusinessID).
		SetLocation(input.Location).
		SetSubtotal(subtotal).
		SetTaxAmount(tax).
		SetTipAmount(tip).
		SetTotalPrice(total).
		SetItemsSnapshot(snapshot)
	if input.TableID != nil {
		builder = builder.SetTableID(*input.TableID)
	}
	if input.PaymentMethod != "" {
		builder = builder.SetPaymentMethod(order.PaymentMethod(input.PaymentMethod))
	}
	if input.SpecialRequests != "" {
		builder = builder.SetSpecialRequests(input.SpecialRequests)
	}

	o, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, it := range input.Items {
		item := byID[it.MenuItemID]
		if _, err := tx.OrderItem.Create().
			SetOrderID(o.ID).
			SetMenuItemID(item.ID).
			SetQuantity(it.Quantity).
			SetPriceAtOrder(item.Price).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to create order line: %w", err)
		}

		if err := tx.MenuItem.UpdateOneID(item.ID).
			AddPopularityScore(1).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to bump popularity: %w", err)
		}
	}

	if input.TableID != nil {
		if err := tx.Table.UpdateOneID(*input.TableID).
			SetStatus(table.StatusOccupied).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to occupy table: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	s.log.Info("order placed",
		"order_id", o.ID.String(),
		"business_id", input.BusinessID,
		"items", len(input.Items),
		"total", total)

	return o, nil
}

// Get returns one order with its lines
func (s *Service) Get(ctx context.Context, orderID uuid.UUID) (*ent.Order, error) {
	o, err := s.db.Order.Query().
		Where(order.IDEQ(orderID)).
		WithItems(func(q *ent.OrderItemQuery) {
			q.WithMenuItem()
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("order")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return o, nil
}

// ListByBusiness returns a business's orders, newest first, optionally
// filtered by status
func (s *Service) ListByBusiness(ctx context.Context, businessID int, status string, limit int) ([]*ent.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Order.Query().
		Where(order.BusinessIDEQ(businessID)).
		WithItems().
		Order(ent.Desc(order.FieldCreatedAt)).
		Limit(limit)
	if status != "" {
		query = query.Where(order.StatusEQ(order.Status(status)))
	}

	list, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}

// UpdateStatus moves an order through the workflow. The order must belong
// to the given business; orders of other businesses are reported as not
// found. On the transition into completed the recommendation engine learns
// from the order; engine failures are reported and swallowed so the status
// change itself never rolls back.
func (s *Service) UpdateStatus(ctx context.Context, businessID int, orderID uuid.UUID, newStatus order.Status) (*ent.Order, error) {
	o, err := s.db.Order.Query().
		Where(order.IDEQ(orderID), order.BusinessIDEQ(businessID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("order")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	prev := o.Status
	if prev == newStatus {
		return o, nil
	}
	if !transitionAllowed(prev, newStatus) {
		return nil, domain.NewInvalidTransitionError(string(prev), string(newStatus))
	}

	updated, err := s.db.Order.UpdateOneID(orderID).
		SetStatus(newStatus).
		SetStatusChangedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	// The guard on the previous status makes the engine run once per actual
	// completion, so repeated requests cannot double-count pairs.
	if newStatus == order.StatusCompleted && prev != order.StatusCompleted {
		if err := s.engine.UpdatePairsFromOrder(ctx, orderID); err != nil {
			s.log.Error("failed to update item pairs from completed order",
				"order_id", orderID.String(), "error", err)
			sentry.CaptureException(err)
		}
	}

	if newStatus == order.StatusCompleted || newStatus == order.StatusCancelled {
		s.releaseTable(ctx, updated)
	}

	s.log.Info("order status changed",
		"order_id", orderID.String(),
		"from", string(prev),
		"to", string(newStatus))

	return updated, nil
}

// releaseTable returns the order's table to available. Failures are logged,
// the status change already succeeded.
func (s *Service) releaseTable(ctx context.Context, o *ent.Order) {
	if o.TableID == nil {
		return
	}
	if err := s.db.Table.UpdateOneID(*o.TableID).
		SetStatus(table.StatusAvailable).
		Exec(ctx); err != nil {
		s.log.Error("failed to release table",
			"table_id", *o.TableID, "order_id", o.ID.String(), "error", err)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
