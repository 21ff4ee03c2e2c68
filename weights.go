package fiasco

import (
	"github.com/llehouerou/go-fiasco/bitio"
	"github.com/llehouerou/go-fiasco/internal/arith"
)

// weightScaling is the rescale threshold of the arithmetic coder's
// probability models for the weight payload. An opaque wire constant: it
// must match the encoder exactly and is not derived from anything here.
// Source: read_weights() in ~/dev/fiasco/input/weights.c
const weightScaling = 500

// WeightObserver is invoked once per decoded transition, in traversal
// order, after its weight has been installed. A nil observer is skipped
// without overhead.
type WeightObserver func(state, label, edge, domain int, weight float64)

// weightContexts is the transient classification of weighted transitions
// into arithmetic coding contexts. It lives only for the duration of one
// ReadWeights or WriteWeights call.
type weightContexts struct {
	// ids holds the context id per transition in traversal order, padded
	// with zeros up to the declared total.
	ids []int

	// Cumulative class offsets within the flat context id space:
	//
	//	[0, offset1)        DC, non-delta (width 0 or 1)
	//	[offset1, offset2)  DC, delta (width 0 or 1)
	//	[offset2, offset3)  AC, non-delta, one id per bintree level
	//	[offset3, offset4)  AC, delta, one id per bintree level
	offset1, offset2, offset3, offset4 int
}

// classifyWeights assigns every weighted transition to a coding context.
// DC components (domain 0) get one context per approximation scheme; AC
// components get one context per bintree level and scheme. More qualifying
// transitions than the declared total is a fatal stream/topology mismatch.
//
// Ported from: the level_array construction in read_weights(),
// ~/dev/fiasco/input/weights.c
func (w *WFA) classifyWeights(edges []rangeEdge, total int) (*weightContexts, error) {
	if total < 0 || len(edges) > total {
		return nil, ErrTooManyWeights
	}

	minLevel, maxLevel := MaxLevel, 0
	dMinLevel, dMaxLevel := MaxLevel, 0
	dc, dDC := false, false

	for _, e := range edges {
		level := w.LevelOfState[e.state] - 1
		switch {
		case e.domain == 0 && w.DeltaState[e.state]:
			dDC = true
		case e.domain == 0:
			dc = true
		case w.DeltaState[e.state]:
			dMinLevel = min(dMinLevel, level)
			dMaxLevel = max(dMaxLevel, level)
		default:
			minLevel = min(minLevel, level)
			maxLevel = max(maxLevel, level)
		}
	}
	// No AC transition of a scheme: force a zero width level range so the
	// offset arithmetic stays well defined.
	if minLevel > maxLevel {
		maxLevel = minLevel - 1
	}
	if dMinLevel > dMaxLevel {
		dMaxLevel = dMinLevel - 1
	}

	c := &weightContexts{ids: make([]int, total)}
	if dc {
		c.offset1 = 1
	}
	c.offset2 = c.offset1
	if dDC {
		c.offset2++
	}
	c.offset3 = c.offset2 + (maxLevel - minLevel + 1)
	c.offset4 = c.offset3 + (dMaxLevel - dMinLevel + 1)

	for i, e := range edges {
		level := w.LevelOfState[e.state] - 1
		switch {
		case e.domain == 0 && !w.DeltaState[e.state]:
			c.ids[i] = 0
		case e.domain == 0:
			c.ids[i] = c.offset1
		case !w.DeltaState[e.state]:
			c.ids[i] = c.offset2 + level - minLevel
		default:
			c.ids[i] = c.offset3 + level - dMinLevel
		}
	}
	return c, nil
}

// contextAlphabets derives the initial symbol table size of every coding
// context from the mantissa precision of its class's quantization model.
//
// Ported from: the c_symbols setup in read_weights(),
// ~/dev/fiasco/input/weights.c
func (w *WFA) contextAlphabets(c *weightContexts) []int {
	n := max(c.offset4, 1)
	alphabets := make([]int, n)

	alphabets[0] = w.Info.DCRPF.Alphabet()
	if c.offset1 != c.offset2 {
		alphabets[c.offset1] = w.Info.DeltaDCRPF.Alphabet()
	}
	for i := c.offset2; i < c.offset3; i++ {
		alphabets[i] = w.Info.RPF.Alphabet()
	}
	for i := c.offset3; i < c.offset4; i++ {
		alphabets[i] = w.Info.DeltaRPF.Alphabet()
	}
	return alphabets
}

// checkModels verifies that every quantization model the classified
// contexts refer to is present.
func (w *WFA) checkModels(c *weightContexts) error {
	if w.Info == nil || w.Info.DCRPF == nil {
		return ErrMissingModel
	}
	if c.offset1 != c.offset2 && w.Info.DeltaDCRPF == nil {
		return ErrMissingModel
	}
	if c.offset3 > c.offset2 && w.Info.RPF == nil {
		return ErrMissingModel
	}
	if c.offset4 > c.offset3 && w.Info.DeltaRPF == nil {
		return ErrMissingModel
	}
	return nil
}

// weightModel selects the quantization model of one transition: DC or AC,
// delta or non-delta.
func (w *WFA) weightModel(e rangeEdge) *RPF {
	delta := w.DeltaState[e.state]
	switch {
	case e.domain != 0 && !delta:
		return w.Info.RPF
	case e.domain != 0:
		return w.Info.DeltaRPF
	case !delta:
		return w.Info.DCRPF
	default:
		return w.Info.DeltaDCRPF
	}
}

// installWeights stores one decoded symbol per transition, consuming the
// symbol array in the same traversal order the contexts were built in.
// Each transition gets the real coefficient and its fixed point form.
func (w *WFA) installWeights(edges []rangeEdge, symbols []int, observe WeightObserver) error {
	for i, e := range edges {
		weight, err := w.weightModel(e).BitsToReal(symbols[i])
		if err != nil {
			return err
		}

		// Allocated per field: on the encode path Weight arrives
		// caller-populated while IntWeight is still nil.
		if w.Weight[e.state][e.label] == nil {
			w.Weight[e.state][e.label] = make([]float64, len(w.Into[e.state][e.label]))
		}
		if w.IntWeight[e.state][e.label] == nil {
			w.IntWeight[e.state][e.label] = make([]int32, len(w.Into[e.state][e.label]))
		}
		w.Weight[e.state][e.label][e.edge] = weight
		// Truncation after the +0.5, not round-to-nearest: the fixed
		// point reconstruction depends on this exact expression, negative
		// weights included.
		w.IntWeight[e.state][e.label][e.edge] = int32(weight*WeightScaling + 0.5)

		if observe != nil {
			observe(e.state, e.label, e.edge, e.domain, weight)
		}
	}
	return nil
}

// ReadWeights decodes total weights from in and installs them on the
// weighted transitions of the automaton, whose topology must already be
// decoded. On success every transition of a range block carries its real
// and fixed point coefficient, and the stream cursor sits exactly past the
// arithmetic coded weight payload. observe, if non-nil, is called per
// transition.
//
// The automaton must not be accessed concurrently during the call.
// Independent automata with independent streams may decode in parallel.
//
// Ported from: read_weights() in ~/dev/fiasco/input/weights.c
func (w *WFA) ReadWeights(total int, in *bitio.Reader, observe WeightObserver) error {
	edges := w.rangeEdges()
	c, err := w.classifyWeights(edges, total)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}
	if err := w.checkModels(c); err != nil {
		return err
	}

	symbols := arith.DecodeArray(in, c.ids, w.contextAlphabets(c), total, weightScaling)
	if in.Err() {
		return ErrStreamOverrun
	}

	return w.installWeights(edges, symbols, observe)
}
