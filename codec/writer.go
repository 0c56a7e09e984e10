/*
Package codec implements the wire primitives shared by all canonical
encodings: a big-endian byte writer with support for length-hole framing
(a size field reserved up front and patched once the body length is
known) and a positioned reader that turns truncated or malformed input
into structural errors instead of panics.
*/
package codec

import (
	"encoding/binary"
	"fmt"
)

// Writer accumulates a big-endian encoded byte frame.
// The zero value is an empty writer ready to use.
type Writer struct {
	buf []byte
}

// Hole is a placeholder for a fixed-size field reserved with Writer.Hole
// and filled after the rest of the frame is written.
type Hole struct {
	offset int
	size   int
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteUint64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Hole reserves size zero bytes at the current position and returns a
// handle for filling them in later.
func (w *Writer) Hole(size int) Hole {
	h := Hole{offset: len(w.buf), size: size}
	w.buf = append(w.buf, make([]byte, size)...)
	return h
}

// FillHoleUint16 writes v into a 2-byte hole. Panics if the hole was not
// reserved with size 2, that is a programming error, not an input error.
func (w *Writer) FillHoleUint16(h Hole, v uint16) {
	if h.size != 2 {
		panic(fmt.Sprintf("filling %d byte hole with uint16", h.size))
	}
	binary.BigEndian.PutUint16(w.buf[h.offset:], v)
}

// Len returns the number of bytes written so far, reserved holes included.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated frame. The returned slice is owned by the
// writer, callers must not retain it across further writes.
func (w *Writer) Bytes() []byte {
	return w.buf
}
