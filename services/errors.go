package services

import "errors"

// Workflow errors. Controllers map these onto HTTP statuses and stable
// error codes; anything else becomes a generic 500.
var (
	ErrInvalidQRCode    = errors.New("invalid QR code or table is inactive")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("item quantity must be at least 1")
	ErrDishNotFound     = errors.New("dish not found")
	ErrDishUnavailable  = errors.New("dish is currently unavailable")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrTableNotFound    = errors.New("table not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuNotFound     = errors.New("menu not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrInvalidPrice     = errors.New("dish price must not be negative")
)
