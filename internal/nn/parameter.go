package nn

import "fmt"

// GradTracker is implemented by differentiable values that can be told to
// record gradients and can carry a name.
//
// Parameter checks for it when a value is wrapped or updated.
type GradTracker interface {
	// SetRequiresGrad marks the value as (not) requiring gradient tracking.
	SetRequiresGrad(requires bool)

	// SetName sets the name reported by the value.
	SetName(name string)
}

// Parameter represents a learnable value stored in a Module.
//
// It is designed to hold a differentiable value implementing GradTracker,
// but any value is accepted, which is convenient for tests and scalar
// parameters.
//
// Example:
//
//	w := nn.NewParameter(nn.FromScalars(0.1, 0.2), "weight")
//	w.Value().(*nn.Tensor).RequiresGrad() // true
type Parameter struct {
	value any
	name  string // May be empty
}

// NewParameter wraps value in a new Parameter.
//
// If value implements GradTracker it is marked as requiring gradient and,
// when name is not empty, receives the name.
func NewParameter(value any, name string) *Parameter {
	p := &Parameter{name: name}
	p.Update(value)
	return p
}

// Update replaces the wrapped value, applying the same GradTracker step as
// NewParameter.
func (p *Parameter) Update(value any) {
	p.value = value
	if gt, ok := value.(GradTracker); ok {
		gt.SetRequiresGrad(true)
		if p.name != "" {
			gt.SetName(p.name)
		}
	}
}

// Value returns the wrapped value.
func (p *Parameter) Value() any {
	return p.value
}

// Name returns the parameter name (empty if none was given).
func (p *Parameter) Name() string {
	return p.name
}

// String renders the wrapped value.
func (p *Parameter) String() string {
	return fmt.Sprint(p.value)
}
