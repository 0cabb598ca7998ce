package convgeom

import (
	"github.com/pkg/errors"
)

// ExplicitPaddings converts a padding mode to the explicit per-axis
// {before, after} pairs consumed by backend APIs that take a
// `paddings [][2]int` argument, such as ConvGeneral and ReduceWindow style
// operations. The three slices must have the same length, one entry per
// spatial axis, and the per-axis semantics are exactly those of
// WindowedOutputSize (including the odd unit going to the "after" edge).
func ExplicitPaddings(inputs, windows, strides []int, mode PaddingMode) ([][2]int, error) {
	if len(windows) != len(inputs) || len(strides) != len(inputs) {
		return nil, errors.Errorf(
			"ExplicitPaddings: inputs, windows and strides must have one value per spatial axis, got %d, %d and %d values",
			len(inputs), len(windows), len(strides))
	}
	paddings := make([][2]int, len(inputs))
	for axis := range inputs {
		geometry, err := WindowedOutputSize(inputs[axis], windows[axis], strides[axis], mode)
		if err != nil {
			return nil, errors.WithMessagef(err, "axis %d", axis)
		}
		paddings[axis] = [2]int{geometry.PadBefore, geometry.PadAfter}
	}
	return paddings, nil
}
