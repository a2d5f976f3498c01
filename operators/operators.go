// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operators provides scalar math primitives and their derivative rules.
//
// # Overview
//
// The package contains:
//   - Arithmetic: Add, Mul, Neg, ID
//   - Comparisons: LT, EQ, Max, IsClose
//   - Activations: Sigmoid, ReLU, Log, Exp, Inv
//   - Derivatives: LogBack, InvBack, ReLUBack
//   - Higher-order helpers: Map, ZipWith, Reduce
//   - List helpers: NegList, AddLists, SumList, ProdList
//
// All functions are generic over float32 and float64:
//
//	operators.Sigmoid(0.0)          // 0.5
//	operators.Sigmoid(float32(0))   // float32(0.5)
//
// # Errors
//
// Log and Inv follow IEEE semantics and never fail. CheckedLog, CheckedInv
// and CheckedInvBack return ErrDomain or ErrDivisionByZero instead:
//
//	y, err := operators.CheckedLog(x)
//	if errors.Is(err, operators.ErrDomain) {
//	    // x <= 0
//	}
package operators

import "github.com/born-ml/minitorch/internal/operators"

// Float is the set of scalar types the operators accept.
type Float = operators.Float

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = operators.CloseTolerance

// Errors returned by the Checked functions.
var (
	ErrDomain         = operators.ErrDomain
	ErrDivisionByZero = operators.ErrDivisionByZero
)

// Arithmetic

// Add returns x + y.
func Add[T Float](x, y T) T { return operators.Add(x, y) }

// Mul returns x * y.
func Mul[T Float](x, y T) T { return operators.Mul(x, y) }

// Neg returns -x.
func Neg[T Float](x T) T { return operators.Neg(x) }

// ID returns x unchanged.
func ID[T Float](x T) T { return operators.ID(x) }

// Comparisons

// LT reports whether x < y.
func LT[T Float](x, y T) bool { return operators.LT(x, y) }

// EQ reports whether x == y.
func EQ[T Float](x, y T) bool { return operators.EQ(x, y) }

// Bool2Float converts a comparison result to 1 or 0.
func Bool2Float[T Float](b bool) T { return operators.Bool2Float[T](b) }

// Max returns y when y > x, otherwise x. Ties return x.
func Max[T Float](x, y T) T { return operators.Max(x, y) }

// IsClose reports whether |x - y| < CloseTolerance.
func IsClose[T Float](x, y T) bool { return operators.IsClose(x, y) }

// Activations

// Sigmoid computes the numerically stable logistic function.
func Sigmoid[T Float](x T) T { return operators.Sigmoid(x) }

// ReLU returns Max(0, x).
func ReLU[T Float](x T) T { return operators.ReLU(x) }

// Log returns the natural logarithm of x (NaN or -Inf outside the domain).
// Use CheckedLog to get ErrDomain instead.
func Log[T Float](x T) T { return operators.Log(x) }

// Exp returns e^x.
func Exp[T Float](x T) T { return operators.Exp(x) }

// Inv returns 1 / x (±Inf at zero). Use CheckedInv to get
// ErrDivisionByZero instead.
func Inv[T Float](x T) T { return operators.Inv(x) }

// CheckedLog returns ErrDomain for x <= 0.
func CheckedLog[T Float](x T) (T, error) { return operators.CheckedLog(x) }

// CheckedInv returns ErrDivisionByZero for x == 0.
func CheckedInv[T Float](x T) (T, error) { return operators.CheckedInv(x) }

// CheckedInvBack returns ErrDivisionByZero when x² is zero.
func CheckedInvBack[T Float](x, d T) (T, error) { return operators.CheckedInvBack(x, d) }

// Derivatives

// LogBack returns d / x.
func LogBack[T Float](x, d T) T { return operators.LogBack(x, d) }

// InvBack returns -d / x².
func InvBack[T Float](x, d T) T { return operators.InvBack(x, d) }

// ReLUBack returns d if x > 0, else 0.
func ReLUBack[T Float](x, d T) T { return operators.ReLUBack(x, d) }

// Higher-order functions

// Map applies fn to every element of values.
func Map[T, U any](fn func(T) U, values []T) []U { return operators.Map(fn, values) }

// ZipWith applies fn pairwise; the result has min(len(a), len(b)) elements.
func ZipWith[A, B, C any](fn func(A, B) C, a []A, b []B) []C {
	return operators.ZipWith(fn, a, b)
}

// Reduce folds values from left to right starting at seed.
func Reduce[T, A any](fn func(A, T) A, values []T, seed A) A {
	return operators.Reduce(fn, values, seed)
}

// Prod multiplies all values together, starting from 1.
func Prod[T Float](values []T) T { return operators.Prod(values) }

// NegList negates every element.
func NegList[T Float](values []T) []T { return operators.NegList(values) }

// AddLists adds a and b element-wise.
func AddLists[T Float](a, b []T) []T { return operators.AddLists(a, b) }

// SumList sums all elements.
func SumList[T Float](values []T) T { return operators.SumList(values) }

// ProdList multiplies all elements.
func ProdList[T Float](values []T) T { return operators.ProdList(values) }

// Registry

// UnaryFunc is a named one-argument operator.
type UnaryFunc[T Float] = operators.UnaryFunc[T]

// BinaryFunc is a named two-argument operator.
type BinaryFunc[T Float] = operators.BinaryFunc[T]

// UnaryFuncs returns every one-argument operator in a stable order.
func UnaryFuncs[T Float]() []UnaryFunc[T] { return operators.UnaryFuncs[T]() }

// BinaryFuncs returns every two-argument operator in a stable order.
func BinaryFuncs[T Float]() []BinaryFunc[T] { return operators.BinaryFuncs[T]() }
