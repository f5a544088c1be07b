package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCategory indicates a category name that does not exist in the catalog.
// Write paths must fail on it; read paths skip the offending row instead.
var ErrUnknownCategory = errors.New("unknown transaction category")

// ErrMissingPaymentMode indicates a payment-mode-dependent category was
// resolved without a payment mode.
var ErrMissingPaymentMode = errors.New("payment mode is required for this category")

// ErrInvalidAmount indicates a non-positive magnitude where a positive one is required.
var ErrInvalidAmount = errors.New("amount must be a positive value")

// ErrInconsistentParty indicates a party reference that does not match the
// category's relevance (e.g. a lender ID on a customer category).
var ErrInconsistentParty = errors.New("party reference does not match category")
