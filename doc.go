// Package fiasco implements the weighted-finite-automaton (WFA)
// coefficient coding of the FIASCO fractal image codec in pure Go.
//
// FIASCO approximates image blocks by linear combinations of previously
// decoded regions. The blending coefficients ("weights") of those linear
// combinations travel in the bitstream as one arithmetic coded payload;
// this package reconstructs them (ReadWeights) and produces them
// (WriteWeights) once the automaton's topology is known.
//
// # Basic Usage
//
// To decode the weight payload of an automaton whose topology has already
// been parsed:
//
//	in := bitio.NewReader(payload)
//	if err := wfa.ReadWeights(total, in, nil); err != nil {
//	    log.Fatal(err)
//	}
//	// wfa.Weight and wfa.IntWeight are now populated.
//
// The stream cursor ends exactly past the payload: subsequent bitstream
// sections can be parsed from the same reader immediately afterwards.
//
// # Numeric Contract
//
// Each transition carries its coefficient twice: as a float64 reconstructed
// through the reduced precision format (RPF) of its context class, and as
// the fixed point integer int32(weight*512 + 0.5). Both forms are part of
// the decoding contract and must match the encoder bit for bit.
//
// # Thread Safety
//
// A WFA is NOT safe for concurrent use while ReadWeights or WriteWeights
// runs; the call owns the automaton for its duration. Decoding independent
// automata from independent streams in parallel is fine.
//
// # Reference
//
// Ported from FIASCO ([F]ractal [I]mage [A]nd [S]equence [CO]dec) by
// Ullrich Hafner.
package fiasco
