// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/minitorch/internal/nn"
	"gorgonia.org/tensor"
)

// Delimiter joins attachment names into qualified parameter names.
const Delimiter = nn.Delimiter

// ErrNoForward is returned by Module.Call when no forward computation is installed.
var ErrNoForward = nn.ErrNoForward

// Module is a node in a tree of parameters and submodules.
type Module = nn.Module

// ForwardFunc is the forward computation invoked by Module.Call.
type ForwardFunc = nn.ForwardFunc

// NamedParameter pairs a qualified name with its Parameter.
type NamedParameter = nn.NamedParameter

// NamedModule pairs an attachment name with a child Module.
type NamedModule = nn.NamedModule

// NewModule creates an empty module in training mode.
//
// Example:
//
//	m := nn.NewModule("Linear")
//	w := m.AddParameter("weight", 0.5)
func NewModule(kind string) *Module {
	return nn.NewModule(kind)
}

// Parameters

// Parameter is a named wrapper around a learnable value.
type Parameter = nn.Parameter

// GradTracker is implemented by differentiable values.
type GradTracker = nn.GradTracker

// NewParameter wraps value, marking GradTracker values as requiring gradient.
func NewParameter(value any, name string) *Parameter {
	return nn.NewParameter(value, name)
}

// Values

// Tensor is a GradTracker backed by a dense gorgonia tensor.
type Tensor = nn.Tensor

// NewTensor wraps an existing dense tensor.
func NewTensor(data *tensor.Dense) *Tensor {
	return nn.NewTensor(data)
}

// FromScalars creates a 1-D float64 tensor.
//
// Example:
//
//	w := nn.FromScalars(0.1, -0.3, 0.7)
func FromScalars(values ...float64) *Tensor {
	return nn.FromScalars(values...)
}

// Visualization

// DotConfig configures ToDot.
type DotConfig = nn.DotConfig

// DefaultDotConfig returns the default Graphviz rendering options.
func DefaultDotConfig() DotConfig {
	return nn.DefaultDotConfig()
}

// ToDot renders the module tree as a Graphviz digraph.
//
// Example:
//
//	dot, err := nn.ToDot(model.Module, nn.DefaultDotConfig())
//	// dot -Tsvg model.dot > model.svg
func ToDot(m *Module, cfg DotConfig) (string, error) {
	return nn.ToDot(m, cfg)
}
