package fiasco

import "math"

// RPFRange selects the representable coefficient interval of a reduced
// precision format. A range value r means coefficients are quantized
// within [-r, +r].
// Source: ~/dev/fiasco/lib/rpf.h
type RPFRange uint8

// Reduced precision ranges.
const (
	RPFRange05 RPFRange = 0 // [-0.5, +0.5]
	RPFRange10 RPFRange = 1 // [-1.0, +1.0]
	RPFRange15 RPFRange = 2 // [-1.5, +1.5]
	RPFRange20 RPFRange = 3 // [-2.0, +2.0]
)

var rpfRangeValues = [4]float64{0.5, 1.0, 1.5, 2.0}

// RPF mantissa bit limits. The upper limit keeps every arithmetic coding
// alphabet below the coder's quarter interval so frequency scaling never
// degenerates.
const (
	MinMantissaBits = 2
	MaxMantissaBits = 12
)

// RPF is a reduced precision format: a fixed, immutable mapping between a
// bounded integer alphabet of size 2^(mantissaBits+1) and real coefficient
// values. Binary value 0 represents zero. Any other value b carries its
// sign in the least significant bit (1 = negative) and the quantized
// magnitude (b+1)>>1, scaled by range/2^mantissaBits.
//
// RPF values are shared by reference across all transitions of a context
// class and never mutated after construction.
//
// Ported from: ~/dev/fiasco/lib/rpf.c
type RPF struct {
	mantissaBits uint
	rng          float64
}

// NewRPF creates a reduced precision format with the given mantissa bit
// count and coefficient range.
func NewRPF(mantissaBits uint, rng RPFRange) (*RPF, error) {
	if mantissaBits < MinMantissaBits || mantissaBits > MaxMantissaBits {
		return nil, ErrInvalidMantissa
	}
	if int(rng) >= len(rpfRangeValues) {
		return nil, ErrInvalidRange
	}
	return &RPF{mantissaBits: mantissaBits, rng: rpfRangeValues[rng]}, nil
}

// MantissaBits returns the mantissa precision of the format.
func (r *RPF) MantissaBits() uint {
	return r.mantissaBits
}

// Alphabet returns the symbol alphabet size, 2^(mantissaBits+1).
func (r *RPF) Alphabet() int {
	return 1 << (r.mantissaBits + 1)
}

// BitsToReal converts the binary symbol back to its real coefficient
// value. Symbols outside the alphabet yield ErrInvalidBinary.
//
// Ported from: btor() in ~/dev/fiasco/lib/rpf.c
func (r *RPF) BitsToReal(binary int) (float64, error) {
	if binary < 0 || binary >= r.Alphabet() {
		return 0, ErrInvalidBinary
	}
	if binary == 0 {
		return 0, nil
	}

	mantissa := float64((binary + 1) >> 1)
	f := mantissa / float64(uint(1)<<r.mantissaBits) * r.rng
	if binary&1 != 0 {
		return -f, nil
	}
	return f, nil
}

// RealToBits quantizes f to the nearest representable binary value. Values
// beyond the range are clamped to the range limits. RealToBits is the left
// inverse of BitsToReal: every alphabet symbol maps back to itself.
//
// Ported from: rtob() in ~/dev/fiasco/lib/rpf.c
func (r *RPF) RealToBits(f float64) int {
	m := 1 << r.mantissaBits

	mantissa := int(math.Abs(f)/r.rng*float64(m) + 0.5)
	if mantissa == 0 {
		return 0
	}
	if f < 0 {
		if mantissa > m {
			mantissa = m
		}
		return mantissa<<1 - 1
	}
	// One fewer positive level than negative: the all-ones symbol is the
	// most negative value.
	if mantissa > m-1 {
		mantissa = m - 1
	}
	return mantissa << 1
}
