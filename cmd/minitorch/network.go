package main

import (
	"github.com/born-ml/minitorch/nn"
	"github.com/born-ml/minitorch/operators"
	"github.com/pkg/errors"
)

// unit is a single scalar neuron: act(w*x + b).
type unit struct {
	*nn.Module
	weight *nn.Parameter
	bias   *nn.Parameter
	act    func(float64) float64
}

func newUnit(kind string, w, b float64, act func(float64) float64) *unit {
	u := &unit{Module: nn.NewModule(kind), act: act}
	u.weight = u.AddParameter("weight", w)
	u.bias = u.AddParameter("bias", b)
	u.SetForward(u.forward)
	return u
}

func (u *unit) forward(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, errors.Errorf("%s: want 1 input, got %d", u.Kind(), len(args))
	}
	x, ok := args[0].(float64)
	if !ok {
		return nil, errors.Errorf("%s: want float64 input, got %T", u.Kind(), args[0])
	}
	w := u.weight.Value().(float64)
	b := u.bias.Value().(float64)
	return u.act(operators.Add(operators.Mul(w, x), b)), nil
}

// network sums two hidden units and squashes the result.
type network struct {
	*nn.Module
	scale *nn.Parameter
}

func newNetwork() *network {
	n := &network{Module: nn.NewModule("Network")}
	n.scale = n.AddParameter("scale", nn.FromScalars(1.0))

	hidden := nn.NewModule("Hidden")
	left := newUnit("ReLUUnit", 0.8, -0.2, operators.ReLU[float64])
	right := newUnit("SigmoidUnit", -1.5, 0.3, operators.Sigmoid[float64])
	hidden.RegisterChild("left", left.Module)
	hidden.RegisterChild("right", right.Module)
	hidden.SetForward(func(args ...any) (any, error) {
		outs := make([]float64, 0, 2)
		for _, u := range []*unit{left, right} {
			v, err := u.Call(args...)
			if err != nil {
				return nil, err
			}
			outs = append(outs, v.(float64))
		}
		return outs, nil
	})

	n.RegisterChild("hidden", hidden)
	n.RegisterChild("out", newUnit("SigmoidUnit", 1.0, 0, operators.Sigmoid[float64]).Module)
	n.SetForward(n.forward)
	return n
}

func (n *network) forward(args ...any) (any, error) {
	hidden, _ := n.Child("hidden")
	out, _ := n.Child("out")

	h, err := hidden.Call(args...)
	if err != nil {
		return nil, err
	}
	s := operators.SumList(h.([]float64))
	if scale, ok := n.scale.Value().(*nn.Tensor).Float64s(); ok {
		s = operators.Mul(s, operators.ProdList(scale))
	}
	return out.Call(s)
}
