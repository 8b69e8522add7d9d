package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	{ // Every named kind parses back from its String()
		for k := BC_Fixed; k < BC_Count; k++ {
			p, err := ParseBCKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, p)
		}
		for k := Load_CLoad; k < Load_Count; k++ {
			p, err := ParseLoadKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, p)
		}
		for k := Field_Temperature; k < Field_Count; k++ {
			p, err := ParseFieldKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, p)
		}
		for k := Step_Static; k < Step_Count; k++ {
			p, err := ParseStepKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, p)
		}
	}
	{ // Aliases and normalization
		k, err := ParseStepKind("Heat transfer")
		require.NoError(t, err)
		assert.Equal(t, Step_HeatTransfer, k)
		l, err := ParseLoadKind("shell_edge_load")
		require.NoError(t, err)
		assert.Equal(t, Load_ShellEdge, l)
		tm, err := ParseTotalsMode("ONLY")
		require.NoError(t, err)
		assert.Equal(t, Totals_Only, tm)
		tm, err = ParseTotalsMode("")
		require.NoError(t, err)
		assert.Equal(t, Totals_No, tm)
	}
	{ // Unknown names are errors, not defaults
		_, err := ParseBCKind("wall")
		assert.Error(t, err)
		_, err = ParseLoadKind("")
		assert.Error(t, err)
		_, err = ParseTotalsMode("sometimes")
		assert.Error(t, err)
	}
	assert.Equal(t, "BCKind(42)", BCKind(42).String())
	assert.True(t, Load_Film.IsThermal())
	assert.False(t, Load_PreTension.IsThermal())
}
