package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrStructureInvalid is wrapped by every decoding error produced from
// malformed, truncated or otherwise unparseable input. Callers match it
// with errors.Is and reject the offending block or certificate.
var ErrStructureInvalid = errors.New("invalid structure")

// Reader is a positioned cursor over an immutable byte buffer. Reads past
// the end of the buffer return an error wrapping ErrStructureInvalid.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

func (r *Reader) require(n int) error {
	if remaining := len(r.buf) - r.pos; remaining < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrStructureInvalid, n, r.pos, remaining)
	}
	return nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// PeekUint8 returns the next byte without consuming it.
func (r *Reader) PeekUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	return r.buf[r.pos], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadBytes consumes n bytes and returns them as a copy, so the result
// stays valid independent of the underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.buf[r.pos:])
	r.pos += n
	return b, nil
}

// ReadInto fills dst with the next len(dst) bytes.
func (r *Reader) ReadInto(dst []byte) error {
	if err := r.require(len(dst)); err != nil {
		return err
	}
	copy(dst, r.buf[r.pos:])
	r.pos += len(dst)
	return nil
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of bytes left to read.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}
