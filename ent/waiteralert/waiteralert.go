// Code generated by ent, DO NOT EDIT.

package waiteralert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the waiteralert type in the database.
	Label = "waiter_alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldTableID holds the string denoting the table_id field in the database.
	FieldTableID = "table_id"
	// FieldAlertType holds the string denoting the alert_type field in the database.
	FieldAlertType = "alert_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAcknowledgedAt holds the string denoting the acknowledged_at field in the database.
	FieldAcknowledgedAt = "acknowledged_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBusiness holds the string denoting the business edge name in mutations.
	EdgeBusiness = "business"
	// EdgeTable holds the string denoting the table edge name in mutations.
	EdgeTable = "table"
	// Table holds the table name of the waiteralert in the database.
	Table = "waiter_alerts"
	// BusinessTable is the table that holds the business relation/edge.
	BusinessTable = "waiter_alerts"
	// BusinessInverseTable is the table name for the Business entity.
	// It exists in this package in order to avoid circular dependency with the "business" package.
	BusinessInverseTable = "businesses"
	// BusinessColumn is the table column denoting the business relation/edge.
	BusinessColumn = "business_id"
	// TableTable is the table that holds the table relation/edge.
	TableTable = "waiter_alerts"
	// TableInverseTable is the table name for the Table entity.
	// It exists in this package in order to avoid circular dependency with the "table" package.
	TableInverseTable = "tables"
	// TableColumn is the table column denoting the table relation/edge.
	TableColumn = "table_id"
)

// Columns holds all SQL columns for waiteralert fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldTableID,
	FieldAlertType,
	FieldMessage,
	FieldStatus,
	FieldAcknowledgedAt,
	FieldResolvedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AlertType defines the type for the "alert_type" enum field.
type AlertType string

// AlertTypeAssistance is the default value of the AlertType enum.
const DefaultAlertType = AlertTypeAssistance

// AlertType values.
const (
	AlertTypeAssistance  AlertType = "assistance"
	AlertTypeBillRequest AlertType = "bill_request"
	AlertTypeComplaint   AlertType = "complaint"
	AlertTypeRefill      AlertType = "refill"
)

func (at AlertType) String() string {
	return string(at)
}

// AlertTypeValidator is a validator for the "alert_type" field enum values. It is called by the builders before save.
func AlertTypeValidator(at AlertType) error {
	switch at {
	case AlertTypeAssistance, AlertTypeBillRequest, AlertTypeComplaint, AlertTypeRefill:
		return nil
	default:
		return fmt.Errorf("waiteralert: invalid enum value for alert_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending      Status = "pending"
	StatusAcknowledged Status = "acknowledged"
	StatusResolved     Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAcknowledged, StatusResolved:
		return nil
	default:
		return fmt.Errorf("waiteralert: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WaiterAlert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByTableID orders the results by the table_id field.
func ByTableID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableID, opts...).ToFunc()
}

// ByAlertType orders the results by the alert_type field.
func ByAlertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAcknowledgedAt orders the results by the acknowledged_at field.
func ByAcknowledgedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledgedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBusinessField orders the results by business field.
func ByBusinessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessStep(), sql.OrderByField(field, opts...))
	}
}

// ByTableField orders the results by table field.
func ByTableField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTableStep(), sql.OrderByField(field, opts...))
	}
}
func newBusinessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
	)
}
func newTableStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TableInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TableTable, TableColumn),
	)
}
