package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicate        = errors.New("resource already exists")
	ErrNoCustomer       = errors.New("no customer selected")
	ErrNoLineItems      = errors.New("no valid line items")
	ErrStoreRejected    = errors.New("quotation store rejected the request")
	ErrStoreUnavailable = errors.New("quotation store unavailable")
)
