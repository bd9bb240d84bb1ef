package models

// ErrorResponse is the generic error payload returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LoginRequest is a staff login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token and basic account info
type LoginResponse struct {
	Token      string `json:"token"`
	UserID     int    `json:"user_id"`
	BusinessID int    `json:"business_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// StatusUpdateRequest changes an order's workflow status
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// AvailabilityRequest toggles a menu item's availability
type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// ImpressionRequest records that a recommendation was shown
type ImpressionRequest struct {
	SourceItemID      *int `json:"source_item_id,omitempty"`
	RecommendedItemID int  `json:"recommended_item_id" validate:"required"`
}

// ConversionRequest records that a recommended item was ordered. Revenue is
// optional; when omitted it is derived from the matching order line.
type ConversionRequest struct {
	RecommendedItemID int      `json:"recommended_item_id" validate:"required"`
	OrderID           string   `json:"order_id" validate:"required,uuid"`
	Revenue           *float64 `json:"revenue,omitempty" validate:"omitempty,min=0"`
}

// TableStatusRequest changes a table's seating status
type TableStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
