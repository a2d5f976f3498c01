package operators

import "github.com/pkg/errors"

// CheckedLog is Log with an explicit domain check.
//
// Returns ErrDomain for x <= 0 and for NaN.
func CheckedLog[T Float](x T) (T, error) {
	if !(x > 0) {
		return 0, errors.Wrapf(ErrDomain, "log(%v)", x)
	}
	return log(x), nil
}

// CheckedInv is Inv that returns ErrDivisionByZero at x == 0.
func CheckedInv[T Float](x T) (T, error) {
	if x == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "inv(%v)", x)
	}
	return Inv(x), nil
}

// CheckedInvBack is InvBack that returns ErrDivisionByZero when x² is zero,
// including when it underflows.
func CheckedInvBack[T Float](x, d T) (T, error) {
	if x*x == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "inv_back(%v, %v)", x, d)
	}
	return InvBack(x, d), nil
}
