package measure_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmeasure/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tolerance scales an absolute tolerance by the magnitude of x.
func tolerance(x float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(x))
}

// TestStandardUnit_Identity verifies both conversions are the identity on the
// standard unit, including for infinities.
func TestStandardUnit_Identity(t *testing.T) {
	r := measure.NewRegistry()
	std := r.MustStandardUnit("any", math.Inf(-1), math.Inf(1))

	for _, x := range []float64{0, 1, -1, 0.1, 1e-300, -7.25e12, math.MaxFloat64, math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, x, std.ToStandard(x))
		assert.Equal(t, x, std.FromStandard(x))
	}
}

// TestConversion_RoundTrip verifies FromStandard∘ToStandard and
// ToStandard∘FromStandard are the identity up to rounding.
func TestConversion_RoundTrip(t *testing.T) {
	r := measure.NewRegistry()
	r.MustStandardUnit("rt", -1e6, 1e6)

	units := []*measure.Unit{
		r.MustUnit("rt", 0.001, 0),
		r.MustUnit("rt", 1000, 0),
		r.MustUnit("rt", 5.0/9.0, -459.67*5.0/9.0),
		r.MustUnit("rt", 1, -273.15),
		r.MustUnit("rt", -1, 0),
		r.MustUnit("rt", -0.3048, 12.5),
	}
	for _, u := range units {
		lo, hi := u.Bounds()
		for _, f := range []float64{0, 0.001, 0.25, 0.5, 0.75, 0.999, 1} {
			x := math.Min(lo+f*(hi-lo), hi)
			require.True(t, u.IsValid(x), "%v: %g", u, x)
			assert.InDelta(t, x, u.FromStandard(u.ToStandard(x)), tolerance(x), "%v: %g", u, x)
			assert.InDelta(t, x, u.ToStandard(u.FromStandard(x)), tolerance(x), "%v: %g", u, x)
		}
	}
}

// TestIsValid_InclusiveBounds verifies both ends are inclusive and the next
// representable values outside are rejected.
func TestIsValid_InclusiveBounds(t *testing.T) {
	r := measure.NewRegistry()
	r.MustStandardUnit("bounded", -5, 20)
	units := []*measure.Unit{
		r.MustStandard("bounded"),
		r.MustUnit("bounded", 2.5, 1),
		r.MustUnit("bounded", -4, 0),
	}
	for _, u := range units {
		lo, hi := u.Bounds()
		assert.True(t, u.IsValid(lo), "%v", u)
		assert.True(t, u.IsValid(hi), "%v", u)
		assert.False(t, u.IsValid(math.Nextafter(lo, math.Inf(-1))), "%v", u)
		assert.False(t, u.IsValid(math.Nextafter(hi, math.Inf(1))), "%v", u)
		assert.False(t, u.IsValid(math.NaN()), "%v", u)
	}
}

// TestIsValid_NoClamping verifies out-of-range values still convert.
func TestIsValid_NoClamping(t *testing.T) {
	_, kg, g := newMassRegistry(t)

	assert.False(t, kg.IsValid(-1))
	assert.InDelta(t, -1000.0, g.FromStandard(-1), 1e-9)
}

// TestConvert verifies cross-unit conversion within a family.
func TestConvert(t *testing.T) {
	r := measure.NewRegistry()
	k := r.MustStandardUnit("temperature", 0, math.Inf(1))
	c := r.MustUnit("temperature", 1, -273.15)
	f := r.MustUnit("temperature", 5.0/9.0, -459.67*5.0/9.0)

	got, err := measure.Convert(100, c, f)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, got, 1e-9)

	got, err = measure.Convert(32, f, c)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)

	got, err = measure.Convert(-40, c, f)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, got, 1e-9)

	got, err = measure.Convert(0, k, c)
	require.NoError(t, err)
	assert.InDelta(t, -273.15, got, 1e-12)

	got, err = measure.Convert(42.5, c, c)
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)
}

// TestConvert_Errors verifies nil and cross-family arguments are rejected.
func TestConvert_Errors(t *testing.T) {
	_, kg, g := newMassRegistry(t)
	r := measure.NewRegistry()
	m := r.MustStandardUnit(distance, 0, math.Inf(1))

	_, err := measure.Convert(1, nil, g)
	assert.ErrorIs(t, err, measure.ErrNilUnit)
	_, err = measure.Convert(1, kg, nil)
	assert.ErrorIs(t, err, measure.ErrNilUnit)
	_, err = measure.Convert(1, kg, m)
	assert.ErrorIs(t, err, measure.ErrFamilyMismatch)
}

// TestConvert_SeparateRegistries verifies same-named families built against
// different standard units do not convert into each other.
func TestConvert_SeparateRegistries(t *testing.T) {
	_, kg, g := newMassRegistry(t)
	other := measure.NewRegistry()
	lb := other.MustStandardUnit(mass, 0, math.Inf(1), measure.WithName("pounds"))
	oz := other.MustUnit(mass, 1.0/16, 0, measure.WithName("ounces"))

	assert.False(t, lb.SameFamily(g))
	assert.False(t, g.SameFamily(oz))
	assert.True(t, g.SameFamily(kg))
	assert.True(t, oz.SameFamily(lb))
	assert.False(t, g.SameFamily(nil))

	for _, pair := range [][2]*measure.Unit{{lb, g}, {g, lb}, {kg, lb}, {oz, g}} {
		got, err := measure.Convert(1, pair[0], pair[1])
		assert.ErrorIs(t, err, measure.ErrFamilyMismatch, "%v -> %v", pair[0], pair[1])
		assert.Zero(t, got)
	}

	got, err := measure.Convert(1, lb, oz)
	require.NoError(t, err)
	assert.InDelta(t, 16.0, got, 1e-12)
}

// TestNormalize_DefaultIdentity verifies units without a normalizer return
// the input unchanged.
func TestNormalize_DefaultIdentity(t *testing.T) {
	_, kg, g := newMassRegistry(t)
	for _, x := range []float64{-1, 0, 1e9, math.Inf(1)} {
		assert.Equal(t, x, kg.Normalize(x))
		assert.Equal(t, x, g.Normalize(x))
	}
}

// TestWrap verifies folding into [origin, origin+period).
func TestWrap(t *testing.T) {
	deg := measure.Wrap(0, 360)
	assert.Equal(t, 0.0, deg(0))
	assert.Equal(t, 10.0, deg(370))
	assert.Equal(t, 350.0, deg(-10))
	assert.Equal(t, 0.0, deg(720))
	assert.Equal(t, 0.0, deg(-360))
	assert.Equal(t, 359.5, deg(-0.5))
	assert.True(t, math.IsNaN(deg(math.NaN())))
	assert.True(t, math.IsInf(deg(math.Inf(1)), 1))

	signed := measure.Wrap(-180, 360)
	assert.Equal(t, -170.0, signed(190))
	assert.Equal(t, -180.0, signed(180))
	assert.Equal(t, 179.0, signed(-181))

	// Tiny negative inputs must not produce a value equal to the period.
	turn := measure.Wrap(0, 2*math.Pi)
	v := turn(-1e-300)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 2*math.Pi)

	// origin+r must not round up to the exclusive end either.
	unit := measure.Wrap(1, 1)
	assert.Equal(t, 1.0, unit(math.Nextafter(1, 0)))
	assert.Equal(t, 1.0, unit(2))
	assert.Equal(t, 1.5, unit(0.5))
}

// TestWrap_HalfOpen sweeps values just below each multiple of the period for
// several non-zero origins.
func TestWrap_HalfOpen(t *testing.T) {
	for _, origin := range []float64{1, -1, 0.1, 3.7, -180, 1e6} {
		for _, period := range []float64{1, 0.3, 2 * math.Pi, 360} {
			wrap := measure.Wrap(origin, period)
			for k := -3.0; k <= 3; k++ {
				edge := origin + k*period
				for _, v := range []float64{math.Nextafter(edge, math.Inf(-1)), edge, math.Nextafter(edge, math.Inf(1))} {
					got := wrap(v)
					assert.GreaterOrEqual(t, got, origin, "Wrap(%g, %g)(%g)", origin, period, v)
					assert.Less(t, got, origin+period, "Wrap(%g, %g)(%g)", origin, period, v)
				}
			}
		}
	}
}

// TestWrap_InvalidParameters verifies option-time panics.
func TestWrap_InvalidParameters(t *testing.T) {
	assert.Panics(t, func() { measure.Wrap(0, 0) })
	assert.Panics(t, func() { measure.Wrap(0, -1) })
	assert.Panics(t, func() { measure.Wrap(0, math.NaN()) })
	assert.Panics(t, func() { measure.Wrap(0, math.Inf(1)) })
	assert.Panics(t, func() { measure.Wrap(math.NaN(), 1) })
}
