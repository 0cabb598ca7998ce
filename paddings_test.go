package convgeom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplicitPaddings(t *testing.T) {
	// One value per spatial axis for all three parameters.
	var err error
	_, err = ExplicitPaddings([]int{5, 5}, []int{3}, []int{1, 1}, PadSame)
	require.Error(t, err)
	_, err = ExplicitPaddings([]int{5, 5}, []int{3, 3}, []int{1}, PadSame)
	require.Error(t, err)

	// A failing axis aborts the conversion and names the axis.
	_, err = ExplicitPaddings([]int{5, 2}, []int{3, 3}, []int{1, 1}, PadValid)
	require.Error(t, err)
	require.Contains(t, err.Error(), "axis 1")

	// VALID is always the zero padding.
	paddings := must1(ExplicitPaddings([]int{5, 7}, []int{3, 3}, []int{2, 1}, PadValid))
	require.Equal(t, [][2]int{{0, 0}, {0, 0}}, paddings)

	// SAME with stride 1 reduces to {(k-1)/2, k/2} per axis, the split used
	// by PadSame convolutions.
	paddings = must1(ExplicitPaddings([]int{8, 8, 8}, []int{3, 4, 5}, []int{1, 1, 1}, PadSame))
	require.Equal(t, [][2]int{{1, 1}, {1, 2}, {2, 2}}, paddings)

	// Per-axis values match the single-axis primitive.
	inputs, windows, strides := []int{5, 6, 7}, []int{3, 4, 2}, []int{2, 1, 3}
	paddings = must1(ExplicitPaddings(inputs, windows, strides, PadSame))
	for axis := range inputs {
		geometry := must1(WindowedOutputSize(inputs[axis], windows[axis], strides[axis], PadSame))
		require.Equal(t, [2]int{geometry.PadBefore, geometry.PadAfter}, paddings[axis])
	}
}
