// Package nn implements the module tree for the framework.
//
// This package provides the building blocks for organizing learnable values:
//   - Module: tree node owning named parameters and named child modules
//   - Parameter: named wrapper around a (possibly differentiable) value
//   - GradTracker: capability interface for differentiable values
//   - Tensor: a GradTracker backed by a dense gorgonia tensor
//   - ToDot: Graphviz rendering of a module tree
//
// Design inspired by PyTorch's nn.Module, with attribute interception
// replaced by explicit registration calls.
package nn

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Delimiter joins attachment names into qualified parameter names.
const Delimiter = "."

// ForwardFunc is the forward computation invoked by Module.Call.
type ForwardFunc func(args ...any) (any, error)

// NamedParameter pairs a qualified name with its Parameter.
type NamedParameter struct {
	Name      string
	Parameter *Parameter
}

// NamedModule pairs an attachment name with a child Module.
type NamedModule struct {
	Name   string
	Module *Module
}

// Module is a node in a tree of parameters and submodules.
//
// Concrete layers embed *Module, register their parameters and children
// at construction time and install their forward computation:
//
//	type Linear struct {
//	    *nn.Module
//	    weight *nn.Parameter
//	}
//
//	func NewLinear() *Linear {
//	    l := &Linear{Module: nn.NewModule("Linear")}
//	    l.weight = l.AddParameter("weight", 0.5)
//	    l.SetForward(l.Forward)
//	    return l
//	}
//
// Use NewModule to create modules: the zero value renders as "Module" but
// starts in evaluation mode. The tree must be acyclic. This is not checked.
type Module struct {
	kind     string
	training bool
	children ordered[*Module]
	params   ordered[*Parameter]
	forward  ForwardFunc
}

// NewModule creates an empty module in training mode.
//
// kind is the type name shown by String (e.g. "Linear"); it defaults to
// "Module".
func NewModule(kind string) *Module {
	if kind == "" {
		kind = "Module"
	}
	return &Module{
		kind:     kind,
		training: true,
	}
}

// Kind returns the type name given to NewModule.
func (m *Module) Kind() string {
	if m.kind == "" {
		return "Module"
	}
	return m.kind
}

// Training reports whether the module is in training mode.
func (m *Module) Training() bool {
	return m.training
}

// Train puts this module and every descendant into training mode.
func (m *Module) Train() {
	m.setTraining(true)
}

// Eval puts this module and every descendant into evaluation mode.
func (m *Module) Eval() {
	m.setTraining(false)
}

func (m *Module) setTraining(training bool) {
	m.training = training
	for _, child := range m.children.all() {
		child.setTraining(training)
	}
}

// Modules returns the direct child modules in insertion order.
func (m *Module) Modules() []*Module {
	out := make([]*Module, 0, m.children.len())
	for _, child := range m.children.all() {
		out = append(out, child)
	}
	return out
}

// NamedChildren returns the direct child modules with their attachment names.
func (m *Module) NamedChildren() []NamedModule {
	out := make([]NamedModule, 0, m.children.len())
	for name, child := range m.children.all() {
		out = append(out, NamedModule{Name: name, Module: child})
	}
	return out
}

// NamedParameters collects the parameters of this module and its descendants.
//
// Own parameters come first in insertion order, followed by each child's
// parameters (children in insertion order) with the child's attachment name
// prepended, e.g. "encoder.linear.weight".
func (m *Module) NamedParameters() []NamedParameter {
	out := make([]NamedParameter, 0, m.params.len())
	for name, p := range m.params.all() {
		out = append(out, NamedParameter{Name: name, Parameter: p})
	}
	for childName, child := range m.children.all() {
		for _, np := range child.NamedParameters() {
			out = append(out, NamedParameter{
				Name:      childName + Delimiter + np.Name,
				Parameter: np.Parameter,
			})
		}
	}
	return out
}

// Parameters enumerates the parameters of this module and its descendants
// in the same order as NamedParameters.
//
// The sequence is lazy; every range over it walks the tree again.
func (m *Module) Parameters() iter.Seq[*Parameter] {
	return func(yield func(*Parameter) bool) {
		m.walkParameters(yield)
	}
}

func (m *Module) walkParameters(yield func(*Parameter) bool) bool {
	for _, p := range m.params.all() {
		if !yield(p) {
			return false
		}
	}
	for _, child := range m.children.all() {
		if !child.walkParameters(yield) {
			return false
		}
	}
	return true
}

// AddParameter wraps value in a Parameter named name and stores it,
// replacing any parameter with the same name.
//
// Returns the new Parameter.
func (m *Module) AddParameter(name string, value any) *Parameter {
	p := NewParameter(value, name)
	m.params.set(name, p)
	return p
}

// RegisterParameter stores p under name, replacing any existing entry.
// A nil p is ignored.
func (m *Module) RegisterParameter(name string, p *Parameter) {
	if p == nil {
		return
	}
	m.params.set(name, p)
}

// RegisterChild attaches child under name, replacing any existing entry.
// A nil child is ignored.
func (m *Module) RegisterChild(name string, child *Module) {
	if child == nil {
		return
	}
	m.children.set(name, child)
}

// Parameter returns this module's own parameter called name.
func (m *Module) Parameter(name string) (*Parameter, bool) {
	return m.params.get(name)
}

// Child returns the direct child attached under name.
func (m *Module) Child(name string) (*Module, bool) {
	return m.children.get(name)
}

// Lookup returns the parameter called name, or else the child called name,
// or nil if neither exists.
func (m *Module) Lookup(name string) any {
	if p, ok := m.params.get(name); ok {
		return p
	}
	if child, ok := m.children.get(name); ok {
		return child
	}
	return nil
}

// SetForward installs the computation invoked by Call.
func (m *Module) SetForward(fn ForwardFunc) {
	m.forward = fn
}

// Call runs the forward computation with args.
//
// Returns ErrNoForward if SetForward was never called.
func (m *Module) Call(args ...any) (any, error) {
	if m.forward == nil {
		return nil, errors.Wrapf(ErrNoForward, "%s", m.Kind())
	}
	return m.forward(args...)
}

// String renders the module and its children, nesting each level two
// spaces deeper:
//
//	Network(
//	  (encoder): Linear()
//	  (decoder): Linear()
//	)
func (m *Module) String() string {
	var b strings.Builder
	b.WriteString(m.Kind())
	b.WriteByte('(')
	if m.children.len() > 0 {
		for name, child := range m.children.all() {
			b.WriteString("\n  (")
			b.WriteString(name)
			b.WriteString("): ")
			b.WriteString(indent(child.String(), 2))
		}
		b.WriteByte('\n')
	}
	b.WriteByte(')')
	return b.String()
}

// indent prefixes every line after the first with n spaces.
func indent(s string, n int) string {
	first, rest, found := strings.Cut(s, "\n")
	if !found {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return first + "\n" + strings.Join(lines, "\n")
}
