package convgeom

import (
	"github.com/pkg/errors"
)

// BroadcastRange computes, for one axis, the contiguous run of input
// coordinates that the forward window at outputIndex read, clipped to the
// valid input range. It is the inverse of WindowedOutputSize: gradient
// implementations of pooling call it once per output coordinate to know which
// input coordinates must accumulate the backpropagated value.
//
// The unclipped window starts at outputIndex*stride-padBefore and spans
// windowSize cells; start and size are that window intersected with
// [0, inputSize). A window that falls entirely in padding is not an error: it
// returns size=0 (nothing to accumulate) with start still clamped in range.
func BroadcastRange(outputIndex, inputSize, windowSize, stride, padBefore int) (start, size int, err error) {
	if outputIndex < 0 {
		return 0, 0, errors.Errorf("BroadcastRange: outputIndex=%d must be >= 0", outputIndex)
	}
	if inputSize < 0 {
		return 0, 0, errors.Errorf("BroadcastRange: inputSize=%d must be >= 0", inputSize)
	}
	if windowSize < 1 {
		return 0, 0, errors.Errorf("BroadcastRange: windowSize=%d must be >= 1", windowSize)
	}
	if stride < 1 {
		return 0, 0, errors.Errorf("BroadcastRange: stride=%d must be >= 1", stride)
	}
	if padBefore < 0 {
		return 0, 0, errors.Errorf("BroadcastRange: padBefore=%d must be >= 0", padBefore)
	}

	rawStart := outputIndex*stride - padBefore
	start = min(max(0, rawStart), inputSize)
	end := min(inputSize, rawStart+windowSize)
	size = max(0, end-start)
	return
}
