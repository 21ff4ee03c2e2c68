package fiasco

// WFAInfo carries the stream-wide coding parameters of an automaton: the
// four quantization models selecting how each class of weight is coded.
// The models are shared by reference across all transitions of a class and
// are never mutated by the decoder.
// Source: wfa_info_t in ~/dev/fiasco/codec/wfa.h
type WFAInfo struct {
	RPF        *RPF // AC coefficients
	DCRPF      *RPF // DC coefficients (domain 0)
	DeltaRPF   *RPF // AC coefficients of delta approximated states
	DeltaDCRPF *RPF // DC coefficients of delta approximated states
}

// WFA is a weighted finite automaton whose topology (states, bintree,
// domain references) has already been decoded. The weight reader only
// fills in the Weight and IntWeight fields.
//
// States below BasisStates are the fixed basis and carry no coded weights.
//
// Ported from: wfa_t in ~/dev/fiasco/codec/wfa.h
type WFA struct {
	States      int // total number of states
	BasisStates int // number of fixed basis states

	LevelOfState []int  // bintree level per state
	DeltaState   []bool // delta approximation flag per state

	// Tree holds, per state and label, the child state of the bintree or
	// RangeNode when that child is a range block approximated by a linear
	// combination of domains.
	Tree [][MaxLabels]int

	// Into lists, per range block, the domain states of its linear
	// combination. Domain 0 is the DC component (constant bias, no source
	// region); any other value references a source region.
	Into [][MaxLabels][]int

	// Weight and IntWeight hold the real and fixed-point coefficient per
	// transition. They are populated only for transitions of range blocks,
	// by ReadWeights or WriteWeights.
	Weight    [][MaxLabels][]float64
	IntWeight [][MaxLabels][]int32

	Info *WFAInfo
}

// NewWFA allocates an automaton shell with the given state counts. Tree
// entries default to child state 0 (no range); callers fill in topology.
func NewWFA(basisStates, states int, info *WFAInfo) *WFA {
	return &WFA{
		States:       states,
		BasisStates:  basisStates,
		LevelOfState: make([]int, states),
		DeltaState:   make([]bool, states),
		Tree:         make([][MaxLabels]int, states),
		Into:         make([][MaxLabels][]int, states),
		Weight:       make([][MaxLabels][]float64, states),
		IntWeight:    make([][MaxLabels][]int32, states),
		Info:         info,
	}
}

// isRange reports whether the child of state under label is a range block.
func (w *WFA) isRange(state, label int) bool {
	return w.Tree[state][label] == RangeNode
}

// rangeEdge identifies one weighted transition and its domain.
type rangeEdge struct {
	state  int
	label  int
	edge   int
	domain int
}

// rangeEdges materializes every weighted transition of the non-basis
// states in the canonical order: state ascending, label ascending, edge
// ascending. The weight coder consumes this sequence once to build the
// arithmetic coding contexts and once more to install the coefficients, so
// the two passes are bound to the identical ordering by construction.
func (w *WFA) rangeEdges() []rangeEdge {
	var edges []rangeEdge
	for state := w.BasisStates; state < w.States; state++ {
		for label := 0; label < MaxLabels; label++ {
			if !w.isRange(state, label) {
				continue
			}
			for edge, domain := range w.Into[state][label] {
				edges = append(edges, rangeEdge{state, label, edge, domain})
			}
		}
	}
	return edges
}

// DeltaApprox reports whether any non-basis state uses the delta
// approximation scheme. Streams with delta approximated states carry the
// two extra quantization models in their header.
func (w *WFA) DeltaApprox() bool {
	for state := w.BasisStates; state < w.States; state++ {
		if w.DeltaState[state] {
			return true
		}
	}
	return false
}
