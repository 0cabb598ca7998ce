// Package convgeom computes the spatial output geometry of sliding-window
// operations -- convolutions and pooling.
//
// Given the input size, window (kernel) size, stride and padding mode of each
// spatial axis, it computes the output size and the padding applied at each
// edge, for 2D and 3D windows. It also computes the inverse mapping: for one
// output coordinate, the range of input coordinates the forward window read,
// which gradient implementations of pooling use to scatter values back into
// the input.
//
// All functions are pure and stateless, so they are safe to call concurrently.
// Operator kernels typically call the Output* functions once per tensor shape
// to size their output buffers, and BroadcastRange once per output coordinate
// during the backward pass.
package convgeom

//go:generate go tool enumer -type=PaddingMode -trimprefix=Pad -transform=snake -output=gen_paddingmode_enumer.go convgeom.go

// PaddingMode selects how a sliding-window operation pads its input.
//
//   - PadSame pads the input so the output size is ceil(inputSize/stride);
//     any required padding is split between the two edges of the axis.
//   - PadValid adds no padding: only windows fully inside the input produce
//     an output position, and it is an error if the window is larger than
//     the input.
//
// The enumer-generated String and PaddingModeString use the snake-case names
// "same" and "valid", the spelling used by most tensor-compute libraries.
type PaddingMode int

const (
	PadSame PaddingMode = iota
	PadValid
)
