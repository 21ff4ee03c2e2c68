package bitio

import (
	"bytes"
	"testing"
)

func TestReaderMSBFirst(t *testing.T) {
	r := NewReader([]byte{0xB4}) // 1011 0100
	want := []int{1, 0, 1, 1, 0, 1, 0, 0}
	for i, w := range want {
		if got := r.ReadBit(); got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
	if r.Err() {
		t.Error("Err() = true after reading exactly 8 bits")
	}
}

func TestReaderReadBits(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56})
	if got := r.ReadBits(12); got != 0x123 {
		t.Errorf("ReadBits(12) = %#x, want 0x123", got)
	}
	if got := r.ReadBits(12); got != 0x456 {
		t.Errorf("ReadBits(12) = %#x, want 0x456", got)
	}
	if got := r.BitsRead(); got != 24 {
		t.Errorf("BitsRead() = %d, want 24", got)
	}
}

func TestReaderOverrun(t *testing.T) {
	r := NewReader([]byte{0xFF})
	r.ReadBits(8)
	if r.Err() {
		t.Fatal("error flag set before overrun")
	}
	if got := r.ReadBit(); got != 0 {
		t.Errorf("past-end ReadBit() = %d, want 0", got)
	}
	if !r.Err() {
		t.Error("error flag not set after overrun")
	}
	// The flag is sticky and further reads still return zeros.
	if got := r.ReadBits(16); got != 0 {
		t.Errorf("past-end ReadBits(16) = %d, want 0", got)
	}
	if !r.Err() {
		t.Error("error flag cleared by later read")
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(nil)
	if r.Err() {
		t.Error("fresh empty reader reports an error")
	}
	if got := r.ReadBit(); got != 0 || !r.Err() {
		t.Errorf("ReadBit() on empty = %d, Err() = %v; want 0, true", got, r.Err())
	}
}

func TestWriterPacking(t *testing.T) {
	w := NewWriter()
	for _, b := range []int{1, 0, 1, 1, 0, 1, 0, 0} {
		w.WriteBit(b)
	}
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xB4}) {
		t.Errorf("Bytes() = %#v, want [0xB4]", got)
	}
}

func TestWriterPartialBytePadding(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x5, 3) // 101
	if got := w.BitsWritten(); got != 3 {
		t.Errorf("BitsWritten() = %d, want 3", got)
	}
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xA0}) {
		t.Errorf("Bytes() = %#v, want [0xA0]", got)
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	values := []struct {
		v uint64
		n uint
	}{
		{0, 1}, {1, 1}, {0x2A, 6}, {0xFFFF, 16}, {0x12345, 20}, {1, 33},
	}

	w := NewWriter()
	total := 0
	for _, c := range values {
		w.WriteBits(c.v, c.n)
		total += int(c.n)
	}
	if got := w.BitsWritten(); got != total {
		t.Fatalf("BitsWritten() = %d, want %d", got, total)
	}

	r := NewReader(w.Bytes())
	for i, c := range values {
		if got := r.ReadBits(c.n); got != c.v {
			t.Errorf("value %d: ReadBits(%d) = %#x, want %#x", i, c.n, got, c.v)
		}
	}
	if r.Err() {
		t.Error("Err() = true after reading back written bits")
	}
	if got := r.BitsRead(); got != total {
		t.Errorf("BitsRead() = %d, want %d", got, total)
	}
}
