package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrSameParty             = errors.New("buyer and seller must differ")
	ErrInvalidPrice          = errors.New("price must be non-negative")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrUnknownStatus         = errors.New("unknown order status")

	ErrUnauthenticated  = errors.New("caller is not authenticated")
	ErrPermissionDenied = errors.New("permission denied")

	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusConflict = errors.New("order status changed concurrently")
)
