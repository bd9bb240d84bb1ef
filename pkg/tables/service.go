package tables

import (
	"context"
	"fmt"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
)

// Service manages a restaurant's physical tables
type Service struct {
	db  *ent.Client
	log logger.Logger
}

// NewService creates a new tables service
func NewService(db *ent.Client, log logger.Logger) *Service {
	return &Service{db: db, log: log}
}

// CreateInput holds the fields for a new table
type CreateInput struct {
	TableNumber string `json:"table_number" validate:"required,max=50"`
	Capacity    int    `json:"capacity" validate:"min=1"`
}

// Create registers a table for a business. Table management must be
// enabled on the business.
func (s *Service) Create(ctx context.Context, businessID int, input CreateInput) (*ent.Table, error) {
	biz, err := s.db.Business.Get(ctx, businessID)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("business")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	if !biz.EnableTableManagement {
		return nil, domain.NewFeatureDisabledError("table management")
	}

	capacity := input.Capacity
	if capacity <= 0 {
		capacity = 4
	}

	t, err := s.db.Table.Create().
		SetBusinessID(businessID).
		SetTableNumber(input.TableNumber).
		SetCapacity(capacity).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, domain.NewConflictError("a table with this number already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return t, nil
}

// List returns all tables of a business, ordered by table number
func (s *Service) List(ctx context.Context, businessID int) ([]*ent.Table, error) {
	list, err := s.db.Table.Query().
		Where(table.BusinessIDEQ(businessID)).
		Order(ent.Asc(table.FieldTableNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return list, nil
}

// SetStatus changes a table's seating status
func (s *Service) SetStatus(ctx context.Context, businessID, tableID int, status table.Status) (*ent.Table, error) {
	t, err := s.db.Table.Query().
		Where(table.IDEQ(tableID), table.BusinessIDEQ(businessID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("table")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}

	t, err = s.db.Table.UpdateOne(t).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update table status: %w", err)
	}

	s.log.Info("table status changed",
		"table_id", tableID, "business_id", businessID, "status", string(status))

	return t, nil
}
