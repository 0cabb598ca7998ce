package convgeom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadcastRange(t *testing.T) {
	// Invalid parameters.
	var err error
	_, _, err = BroadcastRange(-1, 5, 3, 2, 0)
	require.Error(t, err)
	_, _, err = BroadcastRange(0, -1, 3, 2, 0)
	require.Error(t, err)
	_, _, err = BroadcastRange(0, 5, 0, 2, 0)
	require.Error(t, err)
	_, _, err = BroadcastRange(0, 5, 3, 0, 0)
	require.Error(t, err)
	_, _, err = BroadcastRange(0, 5, 3, 2, -1)
	require.Error(t, err)

	check := func(outputIndex, inputSize, windowSize, stride, padBefore, wantStart, wantSize int) {
		start, size, err := BroadcastRange(outputIndex, inputSize, windowSize, stride, padBefore)
		require.NoError(t, err)
		require.Equal(t, wantStart, start)
		require.Equal(t, wantSize, size)
	}

	// No padding: first window reads [0, 3).
	check(0, 5, 3, 2, 0, 0, 3)
	// Last window would read [4, 7): clipped to the single remaining cell.
	check(2, 5, 3, 2, 0, 4, 1)
	// With padBefore=1 the first window starts in padding.
	check(0, 5, 3, 2, 1, 0, 2)
	check(2, 5, 3, 2, 1, 3, 2)
	// Window entirely in padding: empty range, clamped start, no error.
	check(3, 2, 2, 3, 0, 2, 0)
	check(0, 5, 2, 1, 4, 0, 0)
	// Empty input.
	check(0, 0, 3, 1, 0, 0, 0)
}

// TestBroadcastRangeCoversInput checks, against the forward geometry, that the
// per-output input ranges stay in bounds and jointly cover every input cell
// the forward pass read.
func TestBroadcastRangeCoversInput(t *testing.T) {
	for _, mode := range PaddingModeValues() {
		for inputSize := 1; inputSize <= 10; inputSize++ {
			for windowSize := 1; windowSize <= 5; windowSize++ {
				for stride := 1; stride <= 3; stride++ {
					geometry, err := WindowedOutputSize(inputSize, windowSize, stride, mode)
					if err != nil {
						continue
					}
					covered := make([]bool, inputSize)
					for outputIndex := 0; outputIndex < geometry.OutputSize; outputIndex++ {
						start, size, err := BroadcastRange(outputIndex, inputSize, windowSize, stride, geometry.PadBefore)
						require.NoError(t, err)
						require.GreaterOrEqual(t, start, 0)
						require.LessOrEqual(t, start+size, inputSize)
						for i := start; i < start+size; i++ {
							covered[i] = true
						}
					}
					// When windows tile the axis (stride <= window), SAME
					// geometry reaches every input cell; VALID may leave a
					// far-edge remainder unconsumed, but never the start.
					if mode == PadSame && stride <= windowSize {
						for i, wasCovered := range covered {
							require.True(t, wasCovered, "mode=%s input=%d window=%d stride=%d: input cell %d not covered",
								mode, inputSize, windowSize, stride, i)
						}
					} else if geometry.OutputSize > 0 {
						require.True(t, covered[0])
					}
				}
			}
		}
	}
}
