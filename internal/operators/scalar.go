// Package operators implements the scalar math primitives of the framework
// together with their hand-written derivative rules.
//
// Every function is pure and generic over Float. float32 transcendental
// functions are computed with math32 so that no precision round-trip through
// float64 happens.
//
// Derivative rules follow the chain-rule convention used by the autodiff ops:
// the *Back functions take the forward input x and the upstream gradient d
// and return d * f'(x).
package operators

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the set of scalar types the operators accept.
type Float interface {
	float32 | float64
}

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = 1e-2

// Mul returns x * y.
func Mul[T Float](x, y T) T {
	return x * y
}

// ID returns x unchanged.
func ID[T Float](x T) T {
	return x
}

// Add returns x + y.
func Add[T Float](x, y T) T {
	return x + y
}

// Neg returns -x.
func Neg[T Float](x T) T {
	return -x
}

// LT reports whether x < y.
func LT[T Float](x, y T) bool {
	return x < y
}

// EQ reports whether x == y.
func EQ[T Float](x, y T) bool {
	return x == y
}

// Bool2Float converts a comparison result to 1 or 0.
func Bool2Float[T Float](b bool) T {
	if b {
		return 1
	}
	return 0
}

// Max returns y when y > x, otherwise x. Ties return x.
//
// Unlike the builtin max, NaN is not propagated: Max(x, NaN) is x.
func Max[T Float](x, y T) T {
	if y > x {
		return y
	}
	return x
}

// IsClose reports whether |x - y| < CloseTolerance.
func IsClose[T Float](x, y T) bool {
	return abs(x-y) < CloseTolerance
}

// Sigmoid computes the logistic function 1 / (1 + e^-x).
//
// Negative inputs use the equivalent form e^x / (1 + e^x) so that e^-x
// never overflows.
func Sigmoid[T Float](x T) T {
	if x >= 0 {
		return 1 / (1 + exp(-x))
	}
	e := exp(x)
	return e / (1 + e)
}

// ReLU returns Max(0, x).
func ReLU[T Float](x T) T {
	return Max(0, x)
}

// Log returns the natural logarithm of x.
//
// Inputs outside the domain follow IEEE semantics (NaN for x < 0, -Inf for
// x == 0). Use CheckedLog to get an error instead.
func Log[T Float](x T) T {
	return log(x)
}

// Exp returns e^x.
func Exp[T Float](x T) T {
	return exp(x)
}

// LogBack returns d / x, the gradient of Log at x scaled by d.
func LogBack[T Float](x, d T) T {
	return d / x
}

// Inv returns 1 / x. Inv(0) is +Inf (or -Inf for negative zero); use
// CheckedInv to get an error instead.
func Inv[T Float](x T) T {
	return 1 / x
}

// InvBack returns -d / x², the gradient of Inv at x scaled by d.
func InvBack[T Float](x, d T) T {
	return -d / (x * x)
}

// ReLUBack returns d if x > 0, else 0.
func ReLUBack[T Float](x, d T) T {
	if x > 0 {
		return d
	}
	return 0
}

// Prod multiplies all values together, starting from 1.
func Prod[T Float](values []T) T {
	result := T(1)
	for _, v := range values {
		result *= v
	}
	return result
}

func exp[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Exp(v))
	}
	return T(math.Exp(float64(x)))
}

func log[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log(v))
	}
	return T(math.Log(float64(x)))
}

func abs[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Abs(v))
	}
	return T(math.Abs(float64(x)))
}
