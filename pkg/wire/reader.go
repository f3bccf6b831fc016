// Package wire implements the low-level krpc wire primitives: positioned
// varint/zigzag/fixed-width reads and writes over byte buffers, plus
// length-delimited block framing for stream I/O.
package wire

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Malformed reports input that is not a valid krpc encoding: a truncated
// buffer, an overlong varint, a bad length prefix, or invalid UTF-8.
type Malformed struct {
	Offset int
	Reason string
}

func (e *Malformed) Error() string {
	return fmt.Sprintf("malformed encoding at byte %d: %s", e.Offset, e.Reason)
}

func malformed(off int, format string, args ...any) error {
	return &Malformed{Offset: off, Reason: fmt.Sprintf(format, args...)}
}

// Reader is a positioned cursor over a borrowed byte slice. It never copies
// the underlying buffer; slices returned by ReadBytes alias it.
type Reader struct {
	buf []byte
	off int
}

// NewReader positions a cursor at the start of b.
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Offset reports the current read position.
func (r *Reader) Offset() int { return r.off }

// ReadVarint reads one unsigned base-128 varint.
func (r *Reader) ReadVarint() (uint64, error) {
	v, n := protowire.ConsumeVarint(r.buf[r.off:])
	if n < 0 {
		return 0, malformed(r.off, "varint: %v", protowire.ParseError(n))
	}
	r.off += n
	return v, nil
}

// ReadZigzag reads one zigzag-encoded signed varint.
func (r *Reader) ReadZigzag() (int64, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return protowire.DecodeZigZag(v), nil
}

// ReadFixed32 reads four little-endian bytes.
func (r *Reader) ReadFixed32() (uint32, error) {
	v, n := protowire.ConsumeFixed32(r.buf[r.off:])
	if n < 0 {
		return 0, malformed(r.off, "fixed32: %v", protowire.ParseError(n))
	}
	r.off += n
	return v, nil
}

// ReadFixed64 reads eight little-endian bytes.
func (r *Reader) ReadFixed64() (uint64, error) {
	v, n := protowire.ConsumeFixed64(r.buf[r.off:])
	if n < 0 {
		return 0, malformed(r.off, "fixed64: %v", protowire.ParseError(n))
	}
	r.off += n
	return v, nil
}

// ReadBytes reads one varint-length-prefixed byte region. The returned
// slice aliases the reader's buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	start := r.off
	n, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining()) {
		return nil, malformed(start, "length prefix %d exceeds %d remaining bytes", n, r.Remaining())
	}
	b := r.buf[r.off : r.off+int(n)]
	r.off += int(n)
	return b, nil
}

// ReadString reads one length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	start := r.off
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", malformed(start, "string is not valid UTF-8")
	}
	return string(b), nil
}

// Rest consumes and returns every unread byte. Composite decoders use it to
// hand the remainder of a blob to a wrapper-message parser.
func (r *Reader) Rest() []byte {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b
}
