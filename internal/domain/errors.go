package domain

import "errors"

// Domain error taxonomy. Storage adapters and services return these
// sentinels; HTTP handlers map them to status codes with errors.Is.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateBarcode  = errors.New("item with this barcode already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInvalidInput      = errors.New("invalid input")
)
