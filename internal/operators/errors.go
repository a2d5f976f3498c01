package operators

import "github.com/pkg/errors"

// Common errors.
var (
	ErrDomain         = errors.New("input outside function domain")
	ErrDivisionByZero = errors.New("division by zero")
)
