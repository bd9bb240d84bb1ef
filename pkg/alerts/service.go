package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
)

// Service handles waiter call requests raised from table QR pages
type Service struct {
	db  *ent.Client
	log logger.Logger
}

// NewService creates a new alerts service
func NewService(db *ent.Client, log logger.Logger) *Service {
	return &Service{db: db, log: log}
}

// RaiseInput holds the fields of a new alert
type RaiseInput struct {
	TableID   int    `json:"table_id" validate:"required"`
	AlertType string `json:"alert_type,omitempty"`
	Message   string `json:"message,omitempty" validate:"max=500"`
}

// Raise creates a pending alert for a table. Waiter alerts must be enabled
// on the business.
func (s *Service) Raise(ctx context.Context, businessID int, input RaiseInput) (*ent.WaiterAlert, error) {
	biz, err := s.db.Business.Get(ctx, businessID)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("business")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	if !biz.EnableWaiterAlerts {
		return nil, domain.NewFeatureDisabledError("waiter alerts")
	}

	ok, err := s.db.Table.Query().
		Where(table.IDEQ(input.TableID), table.BusinessIDEQ(businessID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check table: %w", err)
	}
	if !ok {
		return nil, domain.NewValidationError("table does not belong to this business")
	}

	builder := s.db.WaiterAlert.Create().
		SetBusinessID(businessID).
		SetTableID(input.TableID).
		SetMessage(input.Message)
	if input.AlertType != "" {
		at := waiteralert.AlertType(input.AlertType)
		if err := waiteralert.AlertTypeValidator(at); err != nil {
			return nil, domain.NewValidationError("invalid alert type")
		}
		builder = builder.SetAlertType(at)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	s.log.Info("waiter alert raised",
		"alert_id", a.ID, "business_id", businessID, "table_id", input.TableID)

	return a, nil
}

// ListPending returns unresolved alerts for a business, oldest first
func (s *Service) ListPending(ctx context.Context, businessID int) ([]*ent.WaiterAlert, error) {
	list, err := s.db.WaiterAlert.Query().
		Where(
			waiteralert.BusinessIDEQ(businessID),
			waiteralert.StatusNEQ(waiteralert.StatusResolved),
		).
		WithTable().
		Order(ent.Asc(waiteralert.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return list, nil
}

// Acknowledge marks an alert as seen by staff
func (s *Service) Acknowledge(ctx context.Context, businessID, alertID int) (*ent.WaiterAlert, error) {
	return s.setStatus(ctx, businessID, alertID, waiteralert.StatusAcknowledged)
}

// Resolve marks an alert as handled
func (s *Service) Resolve(ctx context.Context, businessID, alertID int) (*ent.WaiterAlert, error) {
	return s.setStatus(ctx, businessID, alertID, waiteralert.StatusResolved)
}

func (s *Service) setStatus(ctx context.Context, businessID, alertID int, status waiteralert.Status) (*ent.WaiterAlert, error) {
	a, err := s.db.WaiterAlert.Query().
		Where(waiteralert.IDEQ(alertID), waiteralert.BusinessIDEQ(businessID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("alert")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load alert: %w", err)
	}

	builder := s.db.WaiterAlert.UpdateOne(a).SetStatus(status)
	now := time.Now()
	switch status {
	case waiteralert.StatusAcknowledged:
		builder = builder.SetAcknowledgedAt(now)
	case waiteralert.StatusResolved:
		builder = builder.SetResolvedAt(now)
	}

	a, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}
	return a, nil
}
