package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestParseBlank(t *testing.T) {
	for _, ctx := range []Context{{}, NewContext(MM_TON_S_C), NewContext(IN_LB_S_F)} {
		for _, s := range []string{"", " ", "\t", " \n "} {
			v, err := ParseQuantity(s, Length, ctx)
			require.NoError(t, err)
			assert.Equal(t, 0., v)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	numbers := []string{"0", "1", "-2.5", "1e-5", "7.85e-09", "210000", "0.3", "123456.789"}
	for sys := Unitless; sys < numSystems; sys++ {
		ctx := NewContext(sys)
		for q := Dimensionless; q < numQuantities; q++ {
			for _, s := range numbers {
				v, err := ParseQuantity(s, q, ctx)
				require.NoError(t, err)
				out := FormatQuantity(v, q, ctx)
				back, err := ParseQuantity(out, q, ctx)
				require.NoError(t, err, "%s %s %q", sys, q, out)
				assert.True(t, scalar.EqualWithinAbsOrRel(v, back, 1e-12, 1e-12),
					"%s %s: %q -> %q -> %v", sys, q, s, out, back)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "10 mm", FormatQuantity(10, Length, NewContext(MM_TON_S_C)))
	assert.Equal(t, "210000 MPa", FormatQuantity(210000, Pressure, NewContext(MM_TON_S_C)))
	assert.Equal(t, "7.85e-09 t/mm^3", FormatQuantity(7.85e-9, Density, NewContext(MM_TON_S_C)))
	assert.Equal(t, "20 °C", FormatQuantity(20, Temperature, NewContext(M_KG_S_C)))
	assert.Equal(t, "10", FormatQuantity(10, Length, Context{}))
	assert.Equal(t, "0.3", FormatQuantity(0.3, Dimensionless, NewContext(MM_TON_S_C)))
}

func TestConversion(t *testing.T) {
	mm := NewContext(MM_TON_S_C)
	si := NewContext(M_KG_S_K)
	tests := []struct {
		in   string
		q    Quantity
		ctx  Context
		want float64
	}{
		{"1 m", Length, mm, 1000},
		{"1m", Length, mm, 1000},
		{"25.4 mm", Length, NewContext(IN_LB_S_F), 1},
		{"210 GPa", Pressure, mm, 210000},
		{"1 N/mm^2", Pressure, mm, 1},
		{"1 N/mm²", Pressure, mm, 1},
		{"7850 kg/m^3", Density, mm, 7.85e-9},
		{"1 kN", Force, mm, 1000},
		{"20 °C", Temperature, si, 293.15},
		{"0 K", Temperature, mm, -273.15},
		{"32 °F", Temperature, mm, 0},
		{"212 degF", Temperature, mm, 100},
		{"9.81 m/s^2", Acceleration, mm, 9810},
		{"1 kN*m", Moment, mm, 1e6},
		{"180 deg", Angle, mm, 3.141592653589793},
		{"60 rpm", RotationalSpeed, mm, 6.283185307179586},
		{"50 W/(m*K)", ThermalConductivity, mm, 50},
		{"460 J/(kg*K)", SpecificHeat, mm, 4.6e8},
		{"1 W/m^2", HeatFlux, mm, 1e-3},
		{"1.2e-5 1/K", ThermalExpansion, mm, 1.2e-5},
	}
	for _, tc := range tests {
		v, err := ParseQuantity(tc.in, tc.q, tc.ctx)
		require.NoError(t, err, tc.in)
		assert.True(t, scalar.EqualWithinAbsOrRel(tc.want, v, 1e-12, 1e-9), "%q: want %v, got %v", tc.in, tc.want, v)
	}
}

func TestUnitIsAdvisoryWithoutContext(t *testing.T) {
	v, err := ParseQuantity("10 m", Length, Context{})
	require.NoError(t, err)
	assert.Equal(t, 10., v)
	v, err = ParseQuantity("20 °C", Temperature, Context{})
	require.NoError(t, err)
	assert.Equal(t, 20., v)
}

func TestParseErrors(t *testing.T) {
	mm := NewContext(MM_TON_S_C)
	for _, s := range []string{"abc", "10 bananas", "mm 10", "1..2", "NaN", "Inf", "10 N"} {
		_, err := ParseQuantity(s, Length, mm)
		assert.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrParse), s)
	}
	// A dimension mismatch is reported even without a unit context
	_, err := ParseQuantity("10 N", Length, Context{})
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem("mm_ton_s_c")
	require.NoError(t, err)
	assert.Equal(t, MM_TON_S_C, s)
	s, err = ParseSystem("")
	require.NoError(t, err)
	assert.Equal(t, Unitless, s)
	_, err = ParseSystem("furlong")
	assert.Error(t, err)
	assert.Equal(t, "IN_LB_S_F", IN_LB_S_F.String())
}

func TestSystemsAreConsistent(t *testing.T) {
	// Every unit a system writes must be a known unit of the right dimension
	for sys := MM_TON_S_C; sys < numSystems; sys++ {
		for q := Length; q < numQuantities; q++ {
			abbr := NewContext(sys).Abbreviation(q)
			require.NotEmpty(t, abbr, "%s %s", sys, q)
			def, ok := Lookup(abbr)
			require.True(t, ok, abbr)
			assert.Equal(t, q.Dimensions(), def.Dims, "%s %s", sys, abbr)
		}
	}
	q, ok := ParseQuantityKind("stress")
	assert.True(t, ok)
	assert.Equal(t, Pressure, q)
}
