// Package bitio provides the MSB-first bit stream used by the FIASCO
// coefficient coder.
//
// Ported from: ~/dev/fiasco/lib/bit-io.c
package bitio

// Reader reads bits from a byte buffer, most significant bit first.
//
// Reading past the end of the buffer returns zero bits and sets a sticky
// error flag instead of failing per call; callers check Err once after a
// batch of reads. This mirrors the overrun handling of the AAC-style
// two-buffer readers, without their 64-bit lookahead: the arithmetic
// decoder consumes single bits and the exact consumed-bit count is part of
// the wire contract, so the cursor is kept at bit granularity.
type Reader struct {
	data []byte
	pos  int // next bit index
	err  bool
}

// NewReader creates a Reader over data. The slice is not copied; it must
// not be mutated while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit returns the next bit (0 or 1). Past the end of the buffer it
// returns 0 and sets the error flag.
func (r *Reader) ReadBit() int {
	if r.pos >= len(r.data)*8 {
		r.err = true
		return 0
	}
	b := int(r.data[r.pos>>3]>>(7-uint(r.pos&7))) & 1
	r.pos++
	return b
}

// ReadBits reads n bits (0-64) MSB first and returns them in the low bits
// of the result.
func (r *Reader) ReadBits(n uint) uint64 {
	var v uint64
	for i := uint(0); i < n; i++ {
		v = v<<1 | uint64(r.ReadBit())
	}
	return v
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.pos
}

// Err reports whether a read ran past the end of the buffer.
func (r *Reader) Err() bool {
	return r.err
}
