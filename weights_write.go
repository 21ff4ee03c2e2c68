package fiasco

import (
	"github.com/llehouerou/go-fiasco/bitio"
	"github.com/llehouerou/go-fiasco/internal/arith"
)

// WriteWeights quantizes the coefficients of the automaton's weighted
// transitions and writes them to out as an arithmetic coded payload, the
// exact inverse of ReadWeights: identical traversal order, context
// classification and probability model scaling. Transitions whose weight
// fields were never populated are coded as zero.
//
// The stored Weight and IntWeight fields are replaced with the quantized
// reconstruction, so the encode side ends up with the same values a
// decoder will see. Returns the number of weights written, the total a
// matching ReadWeights call must be given.
//
// Ported from: write_weights() in ~/dev/fiasco/output/weights.c
func (w *WFA) WriteWeights(out *bitio.Writer) (int, error) {
	edges := w.rangeEdges()
	c, err := w.classifyWeights(edges, len(edges))
	if err != nil {
		return 0, err
	}
	if len(edges) == 0 {
		return 0, nil
	}
	if err := w.checkModels(c); err != nil {
		return 0, err
	}

	symbols := make([]int, len(edges))
	for i, e := range edges {
		var weight float64
		if w.Weight[e.state][e.label] != nil {
			weight = w.Weight[e.state][e.label][e.edge]
		}
		symbols[i] = w.weightModel(e).RealToBits(weight)
	}

	arith.EncodeArray(out, symbols, c.ids, w.contextAlphabets(c), weightScaling)

	if err := w.installWeights(edges, symbols, nil); err != nil {
		return 0, err
	}
	return len(edges), nil
}
