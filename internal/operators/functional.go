package operators

import "gorgonia.org/vecf32"

// Map applies fn to every element of values, preserving order and length.
func Map[T, U any](fn func(T) U, values []T) []U {
	out := make([]U, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

// ZipWith applies fn pairwise to a and b.
//
// The result has min(len(a), len(b)) elements; the tail of the longer
// slice is ignored.
func ZipWith[A, B, C any](fn func(A, B) C, a []A, b []B) []C {
	n := min(len(a), len(b))
	out := make([]C, n)
	for i := range n {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// Reduce folds values from left to right starting at seed:
//
//	fn(fn(fn(seed, v0), v1), v2)
func Reduce[T, A any](fn func(A, T) A, values []T, seed A) A {
	acc := seed
	for _, v := range values {
		acc = fn(acc, v)
	}
	return acc
}

// NegList negates every element. The input is not modified.
func NegList[T Float](values []T) []T {
	if f32, ok := any(values).([]float32); ok {
		out := make([]float32, len(f32))
		copy(out, f32)
		vecf32.Scale(out, -1)
		return any(out).([]T)
	}
	return Map(Neg[T], values)
}

// AddLists adds a and b element-wise; the result has min(len(a), len(b))
// elements. Neither input is modified.
func AddLists[T Float](a, b []T) []T {
	a32, aok := any(a).([]float32)
	b32, bok := any(b).([]float32)
	if aok && bok {
		n := min(len(a32), len(b32))
		out := make([]float32, n)
		copy(out, a32[:n])
		vecf32.Add(out, b32[:n])
		return any(out).([]T)
	}
	return ZipWith(Add[T], a, b)
}

// SumList sums all elements, starting from 0.
func SumList[T Float](values []T) T {
	return Reduce(Add[T], values, 0)
}

// ProdList multiplies all elements, starting from 1.
func ProdList[T Float](values []T) T {
	return Reduce(Mul[T], values, 1)
}
