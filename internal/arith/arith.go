// Package arith implements the adaptive arithmetic coder used for WFA
// coefficient payloads.
//
// Ported from: ~/dev/fiasco/lib/arith.c
//
// The coder is the classic low/width formulation with a 16 bit code value.
// The encoder finishes by emitting all 16 bits of its final low value, and
// the decoder preloads 16 bits; both sides then perform one bit of I/O per
// interval doubling, so the number of bits written and the number of bits
// consumed are identical. Downstream bitstream sections rely on that exact
// boundary.
package arith

const (
	codeBits = 16
	half     = uint32(1) << (codeBits - 1)
	quarter  = uint32(1) << (codeBits - 2)
)

// model holds the adaptive symbol frequencies of one coding context.
// Counts start uniform at one and adapt per coded symbol; once the total
// passes the rescale threshold the counts are halved (never below one).
type model struct {
	count []uint32
	total uint32
}

func newModel(symbols int) *model {
	m := &model{
		count: make([]uint32, symbols),
		total: uint32(symbols),
	}
	for i := range m.count {
		m.count[i] = 1
	}
	return m
}

// interval returns the cumulative frequency bounds [lo, hi) of symbol s.
func (m *model) interval(s int) (lo, hi uint32) {
	for _, c := range m.count[:s] {
		lo += c
	}
	return lo, lo + m.count[s]
}

// lookup finds the symbol whose cumulative interval contains v, returning
// the symbol and its bounds.
func (m *model) lookup(v uint32) (int, uint32, uint32) {
	var lo uint32
	for s, c := range m.count {
		if v < lo+c {
			return s, lo, lo + c
		}
		lo += c
	}
	// v beyond the total only happens on a corrupt stream; clamp to the
	// last symbol so the decode stays in bounds.
	s := len(m.count) - 1
	return s, m.total - m.count[s], m.total
}

// update adapts the frequencies after coding symbol s. threshold is the
// probability model scaling: past it, counts are halved.
func (m *model) update(s int, threshold uint32) {
	m.count[s]++
	m.total++
	if m.total > threshold {
		m.total = 0
		for i, c := range m.count {
			c = (c + 1) >> 1
			m.count[i] = c
			m.total += c
		}
	}
}
