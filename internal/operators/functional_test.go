package operators

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	got := Map(func(x float64) float64 { return x * 2 }, []float64{1, -2, 3.5})
	if diff := cmp.Diff([]float64{2, -4, 7}, got); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}

	labels := Map(func(x int) string { return strconv.Itoa(x) }, []int{3, 1, 2})
	assert.Equal(t, []string{"3", "1", "2"}, labels)

	assert.Empty(t, Map(Neg[float64], nil))
}

func TestZipWith(t *testing.T) {
	got := ZipWith(Mul[float64], []float64{1, 2, 3}, []float64{4, 5})
	assert.Equal(t, []float64{4, 10}, got)

	assert.Empty(t, ZipWith(Add[float64], nil, []float64{1}))
}

// TestReduceIsLeftFold verifies evaluation order with a non-commutative fn.
func TestReduceIsLeftFold(t *testing.T) {
	digits := Reduce(func(acc, x float64) float64 { return acc*10 + x }, []float64{1, 2, 3}, 0)
	assert.Equal(t, 123.0, digits)

	path := Reduce(func(acc string, x int) string { return acc + "/" + strconv.Itoa(x) }, []int{1, 2}, "root")
	assert.Equal(t, "root/1/2", path)

	assert.Equal(t, 9.0, Reduce(Add[float64], nil, 9.0))
}

func TestAddLists(t *testing.T) {
	for _, a := range smallFloats()[:10] {
		for _, c := range smallFloats()[10:20] {
			b, d := a/2, c/3
			got := AddLists([]float64{a, b}, []float64{c, d})
			require.Len(t, got, 2)
			assert.InDelta(t, a+c, got[0], CloseTolerance)
			assert.InDelta(t, b+d, got[1], CloseTolerance)
		}
	}

	assert.Len(t, AddLists([]float64{1, 2, 3}, []float64{1}), 1)
}

// TestSumDistribute checks SumList(a) + SumList(b) == SumList(AddLists(a, b)).
func TestSumDistribute(t *testing.T) {
	values := smallFloats()
	for i := 0; i+10 <= len(values); i += 10 {
		ls1, ls2 := values[i:i+5], values[i+5:i+10]
		assert.InDelta(t, SumList(ls1)+SumList(ls2), SumList(AddLists(ls1, ls2)), CloseTolerance)
	}
}

func TestSumList(t *testing.T) {
	a, b, c := 0.25, -0.5, 0.125
	assert.InDelta(t, a+b+c, SumList([]float64{a, b, c}), CloseTolerance)
	assert.Equal(t, 0.0, SumList[float64](nil))

	var want float64
	for _, v := range smallFloats() {
		want += v
	}
	assert.InDelta(t, want, SumList(smallFloats()), CloseTolerance)
}

func TestProdList(t *testing.T) {
	a, b, c := 0.5, -0.8, 0.9
	assert.InDelta(t, a*b*c, ProdList([]float64{a, b, c}), CloseTolerance)
	assert.Equal(t, Prod([]float64{a, b, c}), ProdList([]float64{a, b, c}))
	assert.Equal(t, 1.0, ProdList[float64](nil))
}

func TestNegList(t *testing.T) {
	ls := smallFloats()
	check := NegList(ls)
	require.Len(t, check, len(ls))
	for i := range ls {
		assert.InDelta(t, ls[i], -check[i], CloseTolerance)
	}
}

// TestFloat32FastPaths compares the vectorized float32 paths to the generic ones.
func TestFloat32FastPaths(t *testing.T) {
	a := []float32{1.5, -2, 0, 0.25}
	b := []float32{0.5, 4, -3}
	aCopy := append([]float32(nil), a...)
	bCopy := append([]float32(nil), b...)

	neg := NegList(a)
	assert.Equal(t, Map(Neg[float32], a), neg)

	sum := AddLists(a, b)
	assert.Equal(t, ZipWith(Add[float32], a, b), sum)
	assert.Equal(t, []float32{2, 2, -3}, sum)

	assert.Equal(t, aCopy, a, "NegList/AddLists must not modify inputs")
	assert.Equal(t, bCopy, b, "AddLists must not modify inputs")

	assert.Empty(t, NegList([]float32{}))
	assert.Empty(t, AddLists([]float32{1}, nil))
	assert.Equal(t, float32(1.75), SumList([]float32{1.5, 0.25}))
}
