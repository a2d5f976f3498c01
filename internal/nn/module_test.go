package nn

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paramNames returns the qualified names produced by NamedParameters.
func paramNames(m *Module) []string {
	var names []string
	for _, np := range m.NamedParameters() {
		names = append(names, np.Name)
	}
	return names
}

// newTree builds:
//
//	Root
//	├── a (Mid)  params: a1
//	│   └── b (Leaf) params: b1, b2
//	└── c (Leaf) params: c1
//
// with root parameter r added after the children.
func newTree() *Module {
	root := NewModule("Root")
	mid := NewModule("Mid")
	leafB := NewModule("Leaf")
	leafC := NewModule("Leaf")

	root.RegisterChild("a", mid)
	root.RegisterChild("c", leafC)
	mid.RegisterChild("b", leafB)

	mid.AddParameter("a1", 1.0)
	leafB.AddParameter("b1", 2.0)
	leafB.AddParameter("b2", 3.0)
	leafC.AddParameter("c1", 4.0)
	root.AddParameter("r", 5.0)
	return root
}

// TestNamedParametersOrder checks own parameters come before children.
func TestNamedParametersOrder(t *testing.T) {
	root := NewModule("Root")
	lin := NewModule("Linear")
	root.RegisterChild("lin", lin)
	w := lin.AddParameter("w", 0.5)
	b := root.AddParameter("b", 0.1)

	named := root.NamedParameters()
	require.Len(t, named, 2)
	assert.Equal(t, "b", named[0].Name)
	assert.Same(t, b, named[0].Parameter)
	assert.Equal(t, "lin.w", named[1].Name)
	assert.Same(t, w, named[1].Parameter)
}

func TestNamedParametersDeep(t *testing.T) {
	want := []string{"r", "a.a1", "a.b.b1", "a.b.b2", "c.c1"}
	if diff := cmp.Diff(want, paramNames(newTree())); diff != "" {
		t.Errorf("NamedParameters() mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedParametersEmpty(t *testing.T) {
	named := NewModule("").NamedParameters()
	assert.NotNil(t, named)
	assert.Empty(t, named)
}

// TestParametersMatchesNamed checks Parameters walks in NamedParameters order.
func TestParametersMatchesNamed(t *testing.T) {
	root := newTree()

	var want []*Parameter
	for _, np := range root.NamedParameters() {
		want = append(want, np.Parameter)
	}

	first := slices.Collect(root.Parameters())
	second := slices.Collect(root.Parameters())
	assert.Equal(t, want, first)
	assert.Equal(t, first, second, "Parameters must restart on each range")

	var values []float64
	for p := range root.Parameters() {
		values = append(values, p.Value().(float64))
	}
	assert.Equal(t, []float64{5, 1, 2, 3, 4}, values)
}

func TestParametersEarlyBreak(t *testing.T) {
	root := newTree()

	count := 0
	for range root.Parameters() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestTrainEval(t *testing.T) {
	root := newTree()
	all := func() []bool {
		mid, _ := root.Child("a")
		leafB, _ := mid.Child("b")
		leafC, _ := root.Child("c")
		return []bool{root.Training(), mid.Training(), leafB.Training(), leafC.Training()}
	}

	assert.Equal(t, []bool{true, true, true, true}, all(), "modules start in training mode")

	root.Eval()
	assert.Equal(t, []bool{false, false, false, false}, all())
	root.Eval()
	assert.Equal(t, []bool{false, false, false, false}, all(), "Eval is idempotent")

	root.Train()
	assert.Equal(t, []bool{true, true, true, true}, all())

	mid, _ := root.Child("a")
	mid.Eval()
	assert.Equal(t, []bool{true, false, false, true}, all(), "Eval only affects the subtree")
}

func TestModules(t *testing.T) {
	root := newTree()
	mid, _ := root.Child("a")
	leafC, _ := root.Child("c")

	mods := root.Modules()
	require.Len(t, mods, 2)
	assert.Same(t, mid, mods[0])
	assert.Same(t, leafC, mods[1])

	children := root.NamedChildren()
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Name)
	assert.Equal(t, "c", children[1].Name)

	leafB, _ := mid.Child("b")
	assert.Empty(t, leafB.Modules())
}

// TestAddParameterLookup adds a plain value and reads it back by name.
func TestAddParameterLookup(t *testing.T) {
	m := NewModule("Module")
	p := m.AddParameter("x", 5)

	got := m.Lookup("x")
	require.IsType(t, &Parameter{}, got)
	assert.Same(t, p, got)
	assert.Equal(t, 5, p.Value())
	assert.Equal(t, "x", p.Name())

	byName, ok := m.Parameter("x")
	assert.True(t, ok)
	assert.Same(t, p, byName)
}

func TestLookup(t *testing.T) {
	m := NewModule("Module")
	child := NewModule("Child")
	m.RegisterChild("sub", child)

	assert.Same(t, child, m.Lookup("sub"))
	assert.Nil(t, m.Lookup("missing"))

	_, ok := m.Child("missing")
	assert.False(t, ok)
	_, ok = m.Parameter("sub")
	assert.False(t, ok)

	// Parameters shadow children of the same name.
	p := m.AddParameter("sub", 1.0)
	assert.Same(t, p, m.Lookup("sub"))
}

// TestOverwriteKeepsPosition replaces a parameter and a child by name.
func TestOverwriteKeepsPosition(t *testing.T) {
	m := NewModule("Module")
	m.AddParameter("a", 1.0)
	m.AddParameter("b", 2.0)
	replaced := m.AddParameter("a", 3.0)

	assert.Equal(t, []string{"a", "b"}, paramNames(m))
	got, _ := m.Parameter("a")
	assert.Same(t, replaced, got)
	assert.Equal(t, 3.0, got.Value())

	first, second, third := NewModule("First"), NewModule("Second"), NewModule("Third")
	m.RegisterChild("x", first)
	m.RegisterChild("y", second)
	m.RegisterChild("x", third)
	mods := m.Modules()
	require.Len(t, mods, 2)
	assert.Same(t, third, mods[0])
	assert.Same(t, second, mods[1])
}

func TestRegisterParameter(t *testing.T) {
	m := NewModule("Module")
	p := NewParameter(1.5, "")
	m.RegisterParameter("scale", p)

	assert.Same(t, p, m.Lookup("scale"))
	assert.Equal(t, []string{"scale"}, paramNames(m))
}

func TestCall(t *testing.T) {
	m := NewModule("Doubler")

	_, err := m.Call(1.0)
	require.ErrorIs(t, err, ErrNoForward)
	assert.Contains(t, err.Error(), "Doubler")

	m.SetForward(func(args ...any) (any, error) {
		return args[0].(float64) * 2, nil
	})
	out, err := m.Call(1.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, out)

	boom := errors.New("boom")
	m.SetForward(func(...any) (any, error) { return nil, boom })
	_, err = m.Call()
	assert.ErrorIs(t, err, boom)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Module()", NewModule("").String())

	want := "Root(\n" +
		"  (a): Mid(\n" +
		"    (b): Leaf()\n" +
		"  )\n" +
		"  (c): Leaf()\n" +
		")"
	assert.Equal(t, want, newTree().String())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "single", indent("single", 2))
	assert.Equal(t, "a\n  b\n  c", indent("a\nb\nc", 2))
}

// linear is a minimal concrete module embedding *Module.
type linear struct {
	*Module
	weight *Parameter
	bias   *Parameter
}

func newLinear(w, b float64) *linear {
	l := &linear{Module: NewModule("Linear")}
	l.weight = l.AddParameter("weight", w)
	l.bias = l.AddParameter("bias", b)
	l.SetForward(l.forward)
	return l
}

func (l *linear) forward(args ...any) (any, error) {
	x, ok := args[0].(float64)
	if !ok {
		return nil, errors.Errorf("linear: want float64 input, got %T", args[0])
	}
	return l.weight.Value().(float64)*x + l.bias.Value().(float64), nil
}

func TestEmbeddedModule(t *testing.T) {
	net := NewModule("Network")
	l1 := newLinear(2, 1)
	l2 := newLinear(-1, 0.5)
	net.RegisterChild("l1", l1.Module)
	net.RegisterChild("l2", l2.Module)
	net.SetForward(func(args ...any) (any, error) {
		h, err := l1.Call(args...)
		if err != nil {
			return nil, err
		}
		return l2.Call(h)
	})

	out, err := net.Call(3.0)
	require.NoError(t, err)
	assert.Equal(t, -6.5, out)

	_, err = net.Call("x")
	assert.Error(t, err)

	assert.Equal(t, []string{"l1.weight", "l1.bias", "l2.weight", "l2.bias"}, paramNames(net))
	assert.Equal(t, "Network(\n  (l1): Linear()\n  (l2): Linear()\n)", net.String())
}

// TestRegisterNilIgnored checks nil registrations leave the tree usable.
func TestRegisterNilIgnored(t *testing.T) {
	m := newTree()
	m.RegisterChild("missing", (*Module)(nil))
	m.RegisterParameter("p", nil)

	assert.Nil(t, m.Lookup("missing"))
	assert.Nil(t, m.Lookup("p"))
	assert.Len(t, m.Modules(), 2)

	assert.NotPanics(t, func() {
		m.Eval()
		m.Train()
	})
	assert.Equal(t, []string{"r", "a.a1", "a.b.b1", "a.b.b2", "c.c1"}, paramNames(m))
	assert.Len(t, slices.Collect(m.Parameters()), 5)
	assert.NotContains(t, m.String(), "missing")

	out, err := ToDot(m, DefaultDotConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestZeroValueModule(t *testing.T) {
	var m Module
	assert.Equal(t, "Module", m.Kind())
	assert.Equal(t, "Module()", m.String())
	assert.False(t, m.Training())

	m.AddParameter("w", 1.0)
	assert.Equal(t, []string{"w"}, paramNames(&m))

	_, err := m.Call()
	require.ErrorIs(t, err, ErrNoForward)
	assert.Contains(t, err.Error(), "Module")
}
