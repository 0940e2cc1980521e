package entity

import "errors"

// Domain errors for accounts
var (
	// ErrConversion is returned when a reference holds no usable numeric id
	ErrConversion = errors.New("account reference has no numeric id")
)
