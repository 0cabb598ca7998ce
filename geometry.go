package convgeom

import (
	"github.com/pkg/errors"
)

// AxisGeometry is the output geometry of a sliding window along one spatial
// axis: the number of output positions and the padding applied at each edge
// of the input.
type AxisGeometry struct {
	OutputSize int

	// PadBefore and PadAfter are the padding added at the start and at the end
	// of the axis. When the total padding required by PadSame is odd, the
	// extra unit goes to PadAfter, so PadAfter-PadBefore is always 0 or 1.
	PadBefore, PadAfter int
}

// Geometry2D is the output geometry of a 2D window, with the combined
// (before+after) padding per axis. Use Output2DVerbose if you need the
// per-edge split.
type Geometry2D struct {
	OutputHeight, OutputWidth int
	PadRows, PadCols          int
}

// Geometry2DVerbose is the output geometry of a 2D window with the padding
// split per edge. Odd total padding puts the extra unit on PadBottom/PadRight.
type Geometry2DVerbose struct {
	OutputHeight, OutputWidth            int
	PadTop, PadBottom, PadLeft, PadRight int
}

// WindowedOutputSize computes the output size and edge paddings of a sliding
// window along one spatial axis. It is the single-axis primitive behind
// Output2D, Output2DVerbose and Output3D.
//
// For PadSame, outputSize = ceil(inputSize/stride) and enough padding is added
// so that every output position has a full window; for PadValid no padding is
// added and only fully-inside windows count, so it is an error if
// windowSize > inputSize.
//
// inputSize == 0 is well-defined and returns an all-zero geometry for both
// modes. Excess input cells that no VALID window reaches are left unconsumed,
// they are neither padding nor an error.
func WindowedOutputSize(inputSize, windowSize, stride int, mode PaddingMode) (AxisGeometry, error) {
	if windowSize < 1 {
		return AxisGeometry{}, errors.Errorf("WindowedOutputSize: windowSize=%d must be >= 1", windowSize)
	}
	if stride < 1 {
		return AxisGeometry{}, errors.Errorf("WindowedOutputSize: stride=%d must be >= 1", stride)
	}
	if inputSize < 0 {
		return AxisGeometry{}, errors.Errorf("WindowedOutputSize: inputSize=%d must be >= 0", inputSize)
	}
	if inputSize == 0 {
		return AxisGeometry{}, nil
	}

	switch mode {
	case PadSame:
		outputSize := (inputSize + stride - 1) / stride
		totalPadding := max(0, (outputSize-1)*stride+windowSize-inputSize)
		padBefore := totalPadding / 2
		return AxisGeometry{
			OutputSize: outputSize,
			PadBefore:  padBefore,
			PadAfter:   totalPadding - padBefore,
		}, nil

	case PadValid:
		if windowSize > inputSize {
			return AxisGeometry{}, errors.Errorf(
				"WindowedOutputSize: windowSize=%d is larger than inputSize=%d, no window position is fully inside the input with %s padding",
				windowSize, inputSize, mode)
		}
		return AxisGeometry{
			OutputSize: (inputSize - windowSize + stride) / stride,
		}, nil

	default:
		return AxisGeometry{}, errors.Errorf("WindowedOutputSize: invalid padding mode %d", mode)
	}
}

// Output2D computes the output sizes and combined (before+after) paddings of
// a 2D sliding window, one axis at a time with WindowedOutputSize. If either
// axis fails, the whole call fails with that axis's error and no partial
// geometry is returned.
func Output2D(inputHeight, inputWidth, windowHeight, windowWidth, strideHeight, strideWidth int, mode PaddingMode) (Geometry2D, error) {
	rows, err := WindowedOutputSize(inputHeight, windowHeight, strideHeight, mode)
	if err != nil {
		return Geometry2D{}, errors.WithMessage(err, "height axis")
	}
	cols, err := WindowedOutputSize(inputWidth, windowWidth, strideWidth, mode)
	if err != nil {
		return Geometry2D{}, errors.WithMessage(err, "width axis")
	}
	return Geometry2D{
		OutputHeight: rows.OutputSize,
		OutputWidth:  cols.OutputSize,
		PadRows:      rows.PadBefore + rows.PadAfter,
		PadCols:      cols.PadBefore + cols.PadAfter,
	}, nil
}

// Output2DVerbose is Output2D with the padding reported per edge
// (top/bottom/left/right) instead of combined per axis. Odd total padding on
// an axis puts the extra unit on the bottom/right edge.
func Output2DVerbose(inputHeight, inputWidth, windowHeight, windowWidth, strideHeight, strideWidth int, mode PaddingMode) (Geometry2DVerbose, error) {
	rows, err := WindowedOutputSize(inputHeight, windowHeight, strideHeight, mode)
	if err != nil {
		return Geometry2DVerbose{}, errors.WithMessage(err, "height axis")
	}
	cols, err := WindowedOutputSize(inputWidth, windowWidth, strideWidth, mode)
	if err != nil {
		return Geometry2DVerbose{}, errors.WithMessage(err, "width axis")
	}
	return Geometry2DVerbose{
		OutputHeight: rows.OutputSize,
		OutputWidth:  cols.OutputSize,
		PadTop:       rows.PadBefore,
		PadBottom:    rows.PadAfter,
		PadLeft:      cols.PadBefore,
		PadRight:     cols.PadAfter,
	}, nil
}

// Output3D computes the output sizes and combined (before+after) paddings of
// a 3D sliding window. It is the 3-axis version of Output2D: each axis is
// computed independently with WindowedOutputSize, and the first failing axis
// aborts the call with no partial results.
func Output3D(input, window, strides [3]int, mode PaddingMode) (output, padding [3]int, err error) {
	for axis := range input {
		var geometry AxisGeometry
		geometry, err = WindowedOutputSize(input[axis], window[axis], strides[axis], mode)
		if err != nil {
			return [3]int{}, [3]int{}, errors.WithMessagef(err, "axis %d", axis)
		}
		output[axis] = geometry.OutputSize
		padding[axis] = geometry.PadBefore + geometry.PadAfter
	}
	return
}
