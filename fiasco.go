// Package fiasco provides a pure Go implementation of the FIASCO
// weighted-finite-automaton coefficient coding.
// Ported from FIASCO: ~/dev/fiasco/
package fiasco

// MaxLabels is the number of labels per state. FIASCO partitions image
// blocks with a binary tree, so every state has exactly two children.
// Source: ~/dev/fiasco/codec/wfa.h (MAXLABELS)
const MaxLabels = 2

// MaxLevel is the deepest bintree level a WFA state can sit at. It doubles
// as the "empty range" initializer when scanning levels for the arithmetic
// coding contexts.
// Source: ~/dev/fiasco/codec/wfa.h (MAXLEVEL)
const MaxLevel = 22

// RangeNode marks a (state, label) tree entry as a range: a leaf block
// approximated by a linear combination of domains instead of a child state.
// Source: ~/dev/fiasco/codec/wfa.h (RANGE)
const RangeNode = -1

// WeightScaling is the fixed-point scale of the integer weight
// representation: intWeight = int32(weight*WeightScaling + 0.5). The
// reconstruction path depends on this exact value; it is part of the
// numeric contract, not a tunable.
// Source: read_weights() in ~/dev/fiasco/input/weights.c
const WeightScaling = 512
