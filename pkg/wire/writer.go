package wire

import "google.golang.org/protobuf/encoding/protowire"

// Writer is an append-only buffer with the write-side wire primitives.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty writer.
func NewWriter() *Writer { return &Writer{} }

// WriteVarint appends one unsigned base-128 varint.
func (w *Writer) WriteVarint(v uint64) { w.buf = protowire.AppendVarint(w.buf, v) }

// WriteZigzag appends one zigzag-encoded signed varint.
func (w *Writer) WriteZigzag(v int64) {
	w.buf = protowire.AppendVarint(w.buf, protowire.EncodeZigZag(v))
}

// WriteFixed32 appends four little-endian bytes.
func (w *Writer) WriteFixed32(v uint32) { w.buf = protowire.AppendFixed32(w.buf, v) }

// WriteFixed64 appends eight little-endian bytes.
func (w *Writer) WriteFixed64(v uint64) { w.buf = protowire.AppendFixed64(w.buf, v) }

// WriteBytes appends a varint length prefix followed by b.
func (w *Writer) WriteBytes(b []byte) { w.buf = protowire.AppendBytes(w.buf, b) }

// WriteString appends a varint length prefix followed by the bytes of s.
func (w *Writer) WriteString(s string) { w.buf = protowire.AppendString(w.buf, s) }

// WriteRaw appends b with no framing.
func (w *Writer) WriteRaw(b []byte) { w.buf = append(w.buf, b...) }

// Len reports how many bytes have been written.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer. The writer retains ownership until
// the caller stops writing.
func (w *Writer) Bytes() []byte { return w.buf }
