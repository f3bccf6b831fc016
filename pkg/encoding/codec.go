// Package encoding converts native Go values to and from the krpc value
// encoding. Supported shapes are fixed at compile time: booleans, signed and
// unsigned 32/64-bit integers, 32/64-bit floats, strings, the unit value,
// ordered slices, unordered sets, key-value maps, and tuples of arity 2-4.
// Composite codecs are built by combining element codecs, mirroring the
// trait dispatch of the protocol's reference clients.
package encoding

import (
	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// Codec converts values of one shape to and from their wire form. Obtain
// one from a primitive constructor (Bool, Int32, String, ...) or a composite
// combinator (List, Set, Dict, Tuple2, ...).
type Codec[T any] struct {
	enc func(w *wire.Writer, v T) error
	dec func(ctx *Context, r *wire.Reader) (T, error)
}

// Encode serializes v to a complete, self-contained byte buffer. Encoding
// never mutates v, and encoding the same value twice yields identical bytes.
func (c Codec[T]) Encode(v T) ([]byte, error) {
	w := wire.NewWriter()
	if err := c.enc(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decode materializes one value from b, which must hold exactly the bytes
// produced by Encode for this codec's shape. A nil ctx uses default limits.
func (c Codec[T]) Decode(ctx *Context, b []byte) (T, error) {
	if ctx == nil {
		ctx = NewContext()
	}
	return c.dec(ctx, wire.NewReader(b))
}
