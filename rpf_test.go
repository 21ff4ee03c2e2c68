package fiasco

import (
	"math"
	"testing"
)

func mustRPF(t *testing.T, bits uint, rng RPFRange) *RPF {
	t.Helper()
	r, err := NewRPF(bits, rng)
	if err != nil {
		t.Fatalf("NewRPF(%d, %d): %v", bits, rng, err)
	}
	return r
}

func TestNewRPFValidation(t *testing.T) {
	tests := []struct {
		name string
		bits uint
		rng  RPFRange
		want error
	}{
		{"min mantissa", MinMantissaBits, RPFRange10, nil},
		{"max mantissa", MaxMantissaBits, RPFRange10, nil},
		{"mantissa too small", MinMantissaBits - 1, RPFRange10, ErrInvalidMantissa},
		{"mantissa too large", MaxMantissaBits + 1, RPFRange10, ErrInvalidMantissa},
		{"bad range", 4, RPFRange(9), ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRPF(tt.bits, tt.rng)
			if err != tt.want {
				t.Errorf("NewRPF(%d, %d) err = %v, want %v", tt.bits, tt.rng, err, tt.want)
			}
		})
	}
}

func TestRPFAlphabet(t *testing.T) {
	tests := []struct {
		bits uint
		want int
	}{
		{2, 8}, {3, 16}, {6, 128}, {12, 8192},
	}
	for _, tt := range tests {
		r := mustRPF(t, tt.bits, RPFRange10)
		if got := r.Alphabet(); got != tt.want {
			t.Errorf("Alphabet() with %d mantissa bits = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestBitsToRealMapping(t *testing.T) {
	r := mustRPF(t, 3, RPFRange10) // magnitude step 1/8

	tests := []struct {
		binary int
		want   float64
	}{
		{0, 0},
		{1, -0.125}, // odd = negative
		{2, 0.125},
		{3, -0.25},
		{4, 0.25},
		{14, 0.875}, // largest positive
		{15, -1.0},  // largest magnitude, negative only
	}
	for _, tt := range tests {
		got, err := r.BitsToReal(tt.binary)
		if err != nil {
			t.Fatalf("BitsToReal(%d): %v", tt.binary, err)
		}
		if got != tt.want {
			t.Errorf("BitsToReal(%d) = %v, want %v", tt.binary, got, tt.want)
		}
	}
}

func TestBitsToRealInvalid(t *testing.T) {
	r := mustRPF(t, 3, RPFRange10)
	for _, binary := range []int{-1, 16, 100} {
		if _, err := r.BitsToReal(binary); err != ErrInvalidBinary {
			t.Errorf("BitsToReal(%d) err = %v, want %v", binary, err, ErrInvalidBinary)
		}
	}
}

func TestRealToBitsRoundTrip(t *testing.T) {
	// Every alphabet symbol must survive BitsToReal then RealToBits
	// unchanged; the weight coder relies on this for bitstream identity.
	configs := []struct {
		bits uint
		rng  RPFRange
	}{
		{2, RPFRange05}, {3, RPFRange05}, {4, RPFRange10},
		{6, RPFRange15}, {8, RPFRange20}, {12, RPFRange10},
	}
	for _, cfg := range configs {
		r := mustRPF(t, cfg.bits, cfg.rng)
		for binary := 0; binary < r.Alphabet(); binary++ {
			f, err := r.BitsToReal(binary)
			if err != nil {
				t.Fatalf("BitsToReal(%d): %v", binary, err)
			}
			if got := r.RealToBits(f); got != binary {
				t.Fatalf("bits %d, range %d: RealToBits(BitsToReal(%d)) = %d",
					cfg.bits, cfg.rng, binary, got)
			}
		}
	}
}

func TestRealToBitsClamping(t *testing.T) {
	r := mustRPF(t, 3, RPFRange10)

	// Out of range values clamp to the range limits.
	if got := r.RealToBits(5.0); got != 14 {
		t.Errorf("RealToBits(5.0) = %d, want 14", got)
	}
	if got := r.RealToBits(-5.0); got != 15 {
		t.Errorf("RealToBits(-5.0) = %d, want 15", got)
	}
	// Tiny magnitudes quantize to zero.
	if got := r.RealToBits(0.001); got != 0 {
		t.Errorf("RealToBits(0.001) = %d, want 0", got)
	}
	if got := r.RealToBits(0); got != 0 {
		t.Errorf("RealToBits(0) = %d, want 0", got)
	}
}

func TestRealToBitsNearest(t *testing.T) {
	r := mustRPF(t, 3, RPFRange10)
	// 0.13 sits nearest to 1/8; 0.20 nearest to 2/8.
	if got := r.RealToBits(0.13); got != 2 {
		t.Errorf("RealToBits(0.13) = %d, want 2", got)
	}
	if got := r.RealToBits(0.20); got != 4 {
		t.Errorf("RealToBits(0.20) = %d, want 4", got)
	}
	if got := r.RealToBits(-0.13); got != 1 {
		t.Errorf("RealToBits(-0.13) = %d, want 1", got)
	}
}

func TestRPFQuantizationError(t *testing.T) {
	r := mustRPF(t, 6, RPFRange10)
	step := 1.0 / 64
	for _, f := range []float64{-0.99, -0.5, -0.013, 0, 0.2, 0.77, 0.97} {
		q, err := r.BitsToReal(r.RealToBits(f))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(q-f) > step/2+1e-12 {
			t.Errorf("quantizing %v gave %v, off by more than half a step", f, q)
		}
	}
}
