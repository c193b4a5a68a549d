package hookstate

import (
	"fmt"
	"math"
)

// XFL is the 64 bit fixed point numeric encoding the hooks use for
// monetary configuration values: bit 62 is the sign (set means
// positive), bits 54..61 the exponent biased by 97, bits 0..53 the
// decimal mantissa normalized into [10^15, 10^16).
const (
	xflMantissaMask = int64(1)<<54 - 1
	xflExponentBias = 97

	xflMinMantissa = int64(1000000000000000)
	xflMaxMantissa = int64(9999999999999999)

	xflMinExponent = int64(-96)
	xflMaxExponent = int64(80)
)

// XflToFloat decodes an XFL into a float64. The canonical zero is the
// all zero value. Negative XFLs do not occur in this protocol, they
// are rejected as invalid.
func XflToFloat(xfl int64) (float64, error) {
	if xfl == 0 {
		return 0, nil
	}
	if xfl < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidXfl, xfl)
	}
	if (xfl>>62)&1 == 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidXfl, xfl)
	}
	exponent := int64(xfl>>54)&0xFF - xflExponentBias
	if exponent < xflMinExponent || exponent > xflMaxExponent {
		return 0, fmt.Errorf("%w: exponent %d out of range", ErrInvalidXfl, exponent)
	}
	mantissa := xfl & xflMantissaMask
	return float64(mantissa) * math.Pow(10, float64(exponent)), nil
}

// FloatToXfl encodes a non negative float64 as an XFL
func FloatToXfl(value float64) (int64, error) {
	if value == 0 {
		return 0, nil
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: cannot encode %v", ErrInvalidXfl, value)
	}
	exponent := int64(0)
	for value < float64(xflMinMantissa) {
		value *= 10
		exponent--
	}
	for value > float64(xflMaxMantissa) {
		value /= 10
		exponent++
	}
	mantissa := int64(math.Round(value))
	if mantissa > xflMaxMantissa {
		mantissa /= 10
		exponent++
	}
	if exponent < xflMinExponent || exponent > xflMaxExponent {
		return 0, fmt.Errorf("%w: exponent %d out of range", ErrInvalidXfl, exponent)
	}
	xfl := int64(1) << 62
	xfl |= (exponent + xflExponentBias) << 54
	xfl |= mantissa
	return xfl, nil
}
