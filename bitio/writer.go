package bitio

// Writer accumulates bits, most significant bit first, into a growing byte
// buffer. It is the encode-side counterpart of Reader.
type Writer struct {
	data []byte
	bits int // bits written so far
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBit appends a single bit; any nonzero b writes a 1.
func (w *Writer) WriteBit(b int) {
	if w.bits&7 == 0 {
		w.data = append(w.data, 0)
	}
	if b != 0 {
		w.data[w.bits>>3] |= 1 << (7 - uint(w.bits&7))
	}
	w.bits++
}

// WriteBits appends the low n bits of v, MSB first.
func (w *Writer) WriteBits(v uint64, n uint) {
	for i := n; i > 0; i-- {
		w.WriteBit(int(v>>(i-1)) & 1)
	}
}

// BitsWritten returns the number of bits appended so far.
func (w *Writer) BitsWritten() int {
	return w.bits
}

// Bytes returns the accumulated buffer. The final partial byte, if any, is
// zero padded on the right.
func (w *Writer) Bytes() []byte {
	return w.data
}
