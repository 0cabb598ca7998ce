package convgeom

import (
	. "github.com/gomlx/exceptions"
)

// The Must* variants panic with an exception instead of returning an error,
// for graph-building code paths that handle invalid configurations with
// exceptions rather than error values.

// MustWindowedOutputSize is WindowedOutputSize, panicking on invalid parameters.
func MustWindowedOutputSize(inputSize, windowSize, stride int, mode PaddingMode) AxisGeometry {
	geometry, err := WindowedOutputSize(inputSize, windowSize, stride, mode)
	if err != nil {
		Panicf("%+v", err)
	}
	return geometry
}

// MustOutput2D is Output2D, panicking on invalid parameters.
func MustOutput2D(inputHeight, inputWidth, windowHeight, windowWidth, strideHeight, strideWidth int, mode PaddingMode) Geometry2D {
	geometry, err := Output2D(inputHeight, inputWidth, windowHeight, windowWidth, strideHeight, strideWidth, mode)
	if err != nil {
		Panicf("%+v", err)
	}
	return geometry
}

// MustOutput2DVerbose is Output2DVerbose, panicking on invalid parameters.
func MustOutput2DVerbose(inputHeight, inputWidth, windowHeight, windowWidth, strideHeight, strideWidth int, mode PaddingMode) Geometry2DVerbose {
	geometry, err := Output2DVerbose(inputHeight, inputWidth, windowHeight, windowWidth, strideHeight, strideWidth, mode)
	if err != nil {
		Panicf("%+v", err)
	}
	return geometry
}

// MustOutput3D is Output3D, panicking on invalid parameters.
func MustOutput3D(input, window, strides [3]int, mode PaddingMode) (output, padding [3]int) {
	output, padding, err := Output3D(input, window, strides, mode)
	if err != nil {
		Panicf("%+v", err)
	}
	return
}

// MustBroadcastRange is BroadcastRange, panicking on invalid parameters.
func MustBroadcastRange(outputIndex, inputSize, windowSize, stride, padBefore int) (start, size int) {
	start, size, err := BroadcastRange(outputIndex, inputSize, windowSize, stride, padBefore)
	if err != nil {
		Panicf("%+v", err)
	}
	return
}
