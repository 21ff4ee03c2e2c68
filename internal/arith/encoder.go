package arith

import (
	"github.com/llehouerou/go-fiasco/bitio"
)

// encoder is the encode-side state machine, the mirror image of decoder.
// outstanding counts straddle bits whose value is only known at the next
// definite bit.
type encoder struct {
	out         *bitio.Writer
	low         uint32
	width       uint32
	outstanding int
}

func newEncoder(out *bitio.Writer) *encoder {
	return &encoder{out: out, width: half}
}

func (e *encoder) bitPlusFollow(b int) {
	e.out.WriteBit(b)
	for ; e.outstanding > 0; e.outstanding-- {
		e.out.WriteBit(b ^ 1)
	}
}

// encode narrows the interval to the cumulative bounds [lo, hi) out of
// total and renormalizes.
func (e *encoder) encode(lo, hi, total uint32) {
	r := e.width / total
	e.low += r * lo
	if hi < total {
		e.width = r * (hi - lo)
	} else {
		e.width -= r * lo
	}

	for e.width <= quarter {
		switch {
		case e.low >= half:
			e.bitPlusFollow(1)
			e.low -= half
		case e.low+e.width <= half:
			e.bitPlusFollow(0)
		default:
			e.outstanding++
			e.low -= quarter
		}
		e.low <<= 1
		e.width <<= 1
	}
}

// finish disambiguates the final interval by emitting all 16 bits of low.
// Together with the 16 bit preload on the decode side this keeps the bits
// written equal to the bits consumed.
func (e *encoder) finish() {
	for i := codeBits - 1; i >= 0; i-- {
		e.bitPlusFollow(int(e.low>>uint(i)) & 1)
	}
}

// EncodeArray writes the symbols in data to out, the exact inverse of
// DecodeArray: same per-symbol contexts, same initial alphabets, same
// adaptive model scaling.
//
// Ported from: encode_array() in ~/dev/fiasco/lib/arith.c
func EncodeArray(out *bitio.Writer, data []int, contexts []int, alphabets []int, scaling uint32) {
	models := make([]*model, len(alphabets))

	e := newEncoder(out)
	for i, s := range data {
		c := contexts[i]
		m := models[c]
		if m == nil {
			m = newModel(alphabets[c])
			models[c] = m
		}
		lo, hi := m.interval(s)
		e.encode(lo, hi, m.total)
		m.update(s, scaling)
	}
	e.finish()
}
