package convgeom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaddingModeStrings(t *testing.T) {
	// The snake-case names are the interop spelling used by external tensor
	// libraries, so both directions of the lookup matter.
	require.Equal(t, "same", PadSame.String())
	require.Equal(t, "valid", PadValid.String())

	require.Equal(t, PadSame, must1(PaddingModeString("same")))
	require.Equal(t, PadValid, must1(PaddingModeString("valid")))
	_, err := PaddingModeString("reflect")
	require.Error(t, err)

	require.True(t, PadSame.IsAPaddingMode())
	require.False(t, PaddingMode(17).IsAPaddingMode())
	require.Equal(t, []PaddingMode{PadSame, PadValid}, PaddingModeValues())
}
