package arith

import (
	"github.com/llehouerou/go-fiasco/bitio"
)

// decoder is the decode-side state machine: a 16 bit window into the
// stream, tracked relative to the encoder's low value, plus the shared
// interval width.
type decoder struct {
	in    *bitio.Reader
	value uint32
	width uint32
}

func newDecoder(in *bitio.Reader) *decoder {
	return &decoder{
		in:    in,
		value: uint32(in.ReadBits(codeBits)),
		width: half,
	}
}

// decode extracts one symbol under model m and renormalizes.
func (d *decoder) decode(m *model) int {
	r := d.width / m.total
	v := d.value / r
	if max := m.total - 1; v > max {
		v = max
	}

	s, lo, hi := m.lookup(v)

	d.value -= r * lo
	if hi < m.total {
		d.width = r * (hi - lo)
	} else {
		d.width -= r * lo
	}

	for d.width <= quarter {
		d.width <<= 1
		d.value = d.value<<1 | uint32(d.in.ReadBit())
	}
	return s
}

// DecodeArray decodes total symbols from in. contexts[i] selects the
// frequency model of symbol i; alphabets gives the initial (uniform) table
// size per context; scaling is the rescale threshold of the adaptive
// probability models. The symbol order, context assignment and scaling must
// match the encoder exactly: there is no resynchronization.
//
// Ported from: decode_array() in ~/dev/fiasco/lib/arith.c
func DecodeArray(in *bitio.Reader, contexts []int, alphabets []int, total int, scaling uint32) []int {
	models := make([]*model, len(alphabets))
	data := make([]int, total)

	d := newDecoder(in)
	for i := 0; i < total; i++ {
		c := contexts[i]
		m := models[c]
		if m == nil {
			m = newModel(alphabets[c])
			models[c] = m
		}
		data[i] = d.decode(m)
		m.update(data[i], scaling)
	}
	return data
}
