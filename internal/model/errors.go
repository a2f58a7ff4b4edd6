// Package model defines the entities tracked on the timeline and the
// derived values computed from them.
package model

import "errors"

// Validation errors returned by the entity Validate methods.
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidLoan        = errors.New("invalid loan")
	ErrInvalidEvent       = errors.New("invalid event")
	ErrInvalidAsset       = errors.New("invalid asset")
)
