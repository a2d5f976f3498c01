// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the module tree used to organize learnable values.
//
// # Overview
//
// This package contains:
//   - Module: tree node owning named parameters and named child modules
//   - Parameter: named wrapper around a value, marking GradTracker values
//   - Tensor: a GradTracker backed by a dense gorgonia tensor
//   - ToDot: Graphviz rendering of a module tree
//
// # Basic Usage
//
//	type Linear struct {
//	    *nn.Module
//	    weight, bias *nn.Parameter
//	}
//
//	func NewLinear() *Linear {
//	    l := &Linear{Module: nn.NewModule("Linear")}
//	    l.weight = l.AddParameter("weight", nn.FromScalars(0.1, 0.2))
//	    l.bias = l.AddParameter("bias", nn.FromScalars(0))
//	    l.SetForward(l.Forward)
//	    return l
//	}
//
//	net := nn.NewModule("Network")
//	net.RegisterChild("hidden", NewLinear().Module)
//	fmt.Println(net)
//	// Network(
//	//   (hidden): Linear()
//	// )
//
// # Parameter Management
//
// NamedParameters returns qualified names built from attachment names:
//
//	for _, np := range net.NamedParameters() {
//	    fmt.Println(np.Name) // hidden.weight, hidden.bias
//	}
//
// Parameters is a lazy iterator in the same order:
//
//	for p := range net.Parameters() {
//	    fmt.Println(p)
//	}
//
// # Modes
//
// Train and Eval set the training flag on a module and all its descendants.
package nn
