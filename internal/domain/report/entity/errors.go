package entity

import "errors"

// Domain errors for reports
var (
	ErrDivision = errors.New("post rate denominator is zero")
)
