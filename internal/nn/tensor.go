package nn

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Tensor is a differentiable value holder backed by a dense gorgonia tensor.
//
// It implements GradTracker so that wrapping it in a Parameter marks it as
// requiring gradient and names it. Tensor only stores data and flags; it
// does not record operations or compute gradients.
type Tensor struct {
	data         *tensor.Dense
	name         string
	requiresGrad bool
}

// NewTensor wraps an existing dense tensor.
func NewTensor(data *tensor.Dense) *Tensor {
	return &Tensor{data: data}
}

// FromScalars creates a 1-D float64 tensor holding values.
//
// Panics if values is empty.
func FromScalars(values ...float64) *Tensor {
	if len(values) == 0 {
		panic("nn.FromScalars: at least one value is required")
	}
	backing := make([]float64, len(values))
	copy(backing, values)
	return NewTensor(tensor.New(tensor.WithShape(len(backing)), tensor.WithBacking(backing)))
}

// SetRequiresGrad implements GradTracker.
func (t *Tensor) SetRequiresGrad(requires bool) {
	t.requiresGrad = requires
}

// SetName implements GradTracker.
func (t *Tensor) SetName(name string) {
	t.name = name
}

// RequiresGrad reports whether gradient tracking was requested.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Name returns the tensor name (empty until set).
func (t *Tensor) Name() string {
	return t.name
}

// Dense returns the underlying gorgonia tensor.
func (t *Tensor) Dense() *tensor.Dense {
	return t.data
}

// Shape returns the tensor shape.
func (t *Tensor) Shape() []int {
	return []int(t.data.Shape())
}

// Float64s returns a copy of the data when the tensor holds float64 values.
func (t *Tensor) Float64s() ([]float64, bool) {
	switch data := t.data.Data().(type) {
	case []float64:
		out := make([]float64, len(data))
		copy(out, data)
		return out, true
	case float64:
		return []float64{data}, true
	default:
		return nil, false
	}
}

// String renders the tensor data.
func (t *Tensor) String() string {
	return fmt.Sprintf("%v", t.data)
}
