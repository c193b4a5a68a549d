package hookstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXflRoundTrip(t *testing.T) {
	values := []float64{1, 10, 0.5, 5120, 0.00001, 1000000, 9999999999999999}
	for _, value := range values {
		xfl, err := FloatToXfl(value)
		assert.NoError(t, err)
		decoded, err := XflToFloat(xfl)
		assert.NoError(t, err)
		assert.InEpsilon(t, value, decoded, 1e-12, "value %v", value)
	}
}

func TestXflZero(t *testing.T) {
	xfl, err := FloatToXfl(0)
	assert.NoError(t, err)
	assert.Zero(t, xfl)
	value, err := XflToFloat(0)
	assert.NoError(t, err)
	assert.Zero(t, value)
}

func TestXflKnownEncoding(t *testing.T) {
	// 10 encodes as sign bit, exponent -14, mantissa 10^15
	want := int64(1)<<62 | int64(-14+xflExponentBias)<<54 | xflMinMantissa
	xfl, err := FloatToXfl(10)
	assert.NoError(t, err)
	assert.Equal(t, want, xfl)
}

func TestXflExponentBounds(t *testing.T) {
	// extremes of the representable range survive a round trip
	for _, value := range []float64{1e-80, 1e79} {
		xfl, err := FloatToXfl(value)
		assert.NoError(t, err)
		decoded, err := XflToFloat(xfl)
		assert.NoError(t, err)
		assert.InEpsilon(t, value, decoded, 1e-12, "value %v", value)
	}

	// beyond them the exponent would corrupt the sign and tag bits
	for _, value := range []float64{1e-100, 1e100} {
		_, err := FloatToXfl(value)
		assert.ErrorIs(t, err, ErrInvalidXfl, "value %v", value)
	}

	// decode rejects out of range exponents too
	tooLarge := int64(1)<<62 | (xflMaxExponent+1+xflExponentBias)<<54 | xflMinMantissa
	_, err := XflToFloat(tooLarge)
	assert.ErrorIs(t, err, ErrInvalidXfl)
}

func TestXflRejectsNegative(t *testing.T) {
	_, err := FloatToXfl(-1)
	assert.ErrorIs(t, err, ErrInvalidXfl)

	// sign bit clear means negative on the wire
	_, err = XflToFloat(int64(80+xflExponentBias)<<54 | xflMinMantissa)
	assert.ErrorIs(t, err, ErrInvalidXfl)

	_, err = XflToFloat(-1)
	assert.ErrorIs(t, err, ErrInvalidXfl)
}
