package operators

// UnaryFunc is a named one-argument operator.
type UnaryFunc[T Float] struct {
	Name string
	Fn   func(T) T

	// Positive is set when Fn is only defined for x > 0.
	Positive bool
}

// BinaryFunc is a named two-argument operator.
//
// Comparisons are exposed through Bool2Float so every entry maps to a T.
type BinaryFunc[T Float] struct {
	Name string
	Fn   func(T, T) T

	// Positive is set when the first argument must be > 0.
	Positive bool
}

// UnaryFuncs returns every one-argument operator in a stable order.
func UnaryFuncs[T Float]() []UnaryFunc[T] {
	return []UnaryFunc[T]{
		{Name: "id", Fn: ID[T]},
		{Name: "neg", Fn: Neg[T]},
		{Name: "sigmoid", Fn: Sigmoid[T]},
		{Name: "relu", Fn: ReLU[T]},
		{Name: "exp", Fn: Exp[T]},
		{Name: "log", Fn: Log[T], Positive: true},
		{Name: "inv", Fn: Inv[T], Positive: true},
	}
}

// BinaryFuncs returns every two-argument operator in a stable order.
func BinaryFuncs[T Float]() []BinaryFunc[T] {
	return []BinaryFunc[T]{
		{Name: "add", Fn: Add[T]},
		{Name: "mul", Fn: Mul[T]},
		{Name: "max", Fn: Max[T]},
		{Name: "lt", Fn: func(x, y T) T { return Bool2Float[T](LT(x, y)) }},
		{Name: "eq", Fn: func(x, y T) T { return Bool2Float[T](EQ(x, y)) }},
		{Name: "is_close", Fn: func(x, y T) T { return Bool2Float[T](IsClose(x, y)) }},
		{Name: "relu_back", Fn: ReLUBack[T]},
		{Name: "log_back", Fn: LogBack[T], Positive: true},
		{Name: "inv_back", Fn: InvBack[T], Positive: true},
	}
}
