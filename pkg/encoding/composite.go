package encoding

import (
	"bytes"
	"sort"

	"github.com/henryrgithub/krpc-mars/pkg/schema"
	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// Composite encodings double-encode their elements: each element is
// serialized to its own complete buffer first, and that buffer rides inside
// the wrapper message as an opaque blob. The blob's explicit length is what
// lets a decoder recurse into heterogeneous containers without knowing any
// element's width in advance. Tuples are the deliberate exception: their
// arity and slot types are static, so slots go back-to-back with no framing.

// List combines an element codec into a codec for ordered slices. Element
// order survives the round trip exactly.
func List[T any](elem Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		enc: func(w *wire.Writer, vs []T) error {
			m := schema.List{Items: make([][]byte, 0, len(vs))}
			for _, v := range vs {
				b, err := elem.Encode(v)
				if err != nil {
					return err
				}
				m.Items = append(m.Items, b)
			}
			b, err := m.MarshalWire()
			if err != nil {
				return err
			}
			w.WriteRaw(b)
			return nil
		},
		dec: func(ctx *Context, r *wire.Reader) ([]T, error) {
			if err := ctx.enter(r.Offset()); err != nil {
				return nil, err
			}
			defer ctx.leave()
			var m schema.List
			if err := m.UnmarshalWire(r.Rest()); err != nil {
				return nil, err
			}
			vs := make([]T, 0, len(m.Items))
			for _, it := range m.Items {
				v, err := elem.dec(ctx, wire.NewReader(it))
				if err != nil {
					return nil, err
				}
				vs = append(vs, v)
			}
			return vs, nil
		},
	}
}

// Set combines an element codec into a codec for unordered sets, modeled as
// map[T]struct{}. Decoding dedups by value equality: entries that decode
// equal collapse to one member. Encoding order is unspecified.
func Set[T comparable](elem Codec[T]) Codec[map[T]struct{}] {
	return Codec[map[T]struct{}]{
		enc: func(w *wire.Writer, vs map[T]struct{}) error {
			m := schema.Set{Items: make([][]byte, 0, len(vs))}
			for v := range vs {
				b, err := elem.Encode(v)
				if err != nil {
					return err
				}
				m.Items = append(m.Items, b)
			}
			// members are unordered; sort blobs so output is deterministic
			sort.Slice(m.Items, func(i, j int) bool {
				return bytes.Compare(m.Items[i], m.Items[j]) < 0
			})
			b, err := m.MarshalWire()
			if err != nil {
				return err
			}
			w.WriteRaw(b)
			return nil
		},
		dec: func(ctx *Context, r *wire.Reader) (map[T]struct{}, error) {
			if err := ctx.enter(r.Offset()); err != nil {
				return nil, err
			}
			defer ctx.leave()
			var m schema.Set
			if err := m.UnmarshalWire(r.Rest()); err != nil {
				return nil, err
			}
			vs := make(map[T]struct{}, len(m.Items))
			for _, it := range m.Items {
				v, err := elem.dec(ctx, wire.NewReader(it))
				if err != nil {
					return nil, err
				}
				vs[v] = struct{}{}
			}
			return vs, nil
		},
	}
}

// Dict combines key and value codecs into a codec for maps. Keys and values
// are encoded as independent blobs per entry. When the input repeats a key,
// the entry appearing later in encoded order wins.
func Dict[K comparable, V any](key Codec[K], val Codec[V]) Codec[map[K]V] {
	return Codec[map[K]V]{
		enc: func(w *wire.Writer, vs map[K]V) error {
			m := schema.Dictionary{Entries: make([]schema.DictionaryEntry, 0, len(vs))}
			for k, v := range vs {
				kb, err := key.Encode(k)
				if err != nil {
					return err
				}
				vb, err := val.Encode(v)
				if err != nil {
					return err
				}
				m.Entries = append(m.Entries, schema.DictionaryEntry{Key: kb, Value: vb})
			}
			// entries are unordered; sort by key blob so output is deterministic
			sort.Slice(m.Entries, func(i, j int) bool {
				return bytes.Compare(m.Entries[i].Key, m.Entries[j].Key) < 0
			})
			b, err := m.MarshalWire()
			if err != nil {
				return err
			}
			w.WriteRaw(b)
			return nil
		},
		dec: func(ctx *Context, r *wire.Reader) (map[K]V, error) {
			if err := ctx.enter(r.Offset()); err != nil {
				return nil, err
			}
			defer ctx.leave()
			var m schema.Dictionary
			if err := m.UnmarshalWire(r.Rest()); err != nil {
				return nil, err
			}
			vs := make(map[K]V, len(m.Entries))
			for _, e := range m.Entries {
				k, err := key.dec(ctx, wire.NewReader(e.Key))
				if err != nil {
					return nil, err
				}
				v, err := val.dec(ctx, wire.NewReader(e.Value))
				if err != nil {
					return nil, err
				}
				vs[k] = v
			}
			return vs, nil
		},
	}
}

// Pair is a fixed two-slot tuple.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is a fixed three-slot tuple.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Quad is a fixed four-slot tuple.
type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple2 combines two slot codecs into a codec for pairs. Slots are encoded
// back-to-back in one stream and decoded strictly left to right.
func Tuple2[A, B any](a Codec[A], b Codec[B]) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		enc: func(w *wire.Writer, v Pair[A, B]) error {
			if err := a.enc(w, v.A); err != nil {
				return err
			}
			return b.enc(w, v.B)
		},
		dec: func(ctx *Context, r *wire.Reader) (Pair[A, B], error) {
			var out Pair[A, B]
			var err error
			if out.A, err = a.dec(ctx, r); err != nil {
				return out, err
			}
			out.B, err = b.dec(ctx, r)
			return out, err
		},
	}
}

// Tuple3 combines three slot codecs into a codec for triples.
func Tuple3[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Triple[A, B, C]] {
	return Codec[Triple[A, B, C]]{
		enc: func(w *wire.Writer, v Triple[A, B, C]) error {
			if err := a.enc(w, v.A); err != nil {
				return err
			}
			if err := b.enc(w, v.B); err != nil {
				return err
			}
			return c.enc(w, v.C)
		},
		dec: func(ctx *Context, r *wire.Reader) (Triple[A, B, C], error) {
			var out Triple[A, B, C]
			var err error
			if out.A, err = a.dec(ctx, r); err != nil {
				return out, err
			}
			if out.B, err = b.dec(ctx, r); err != nil {
				return out, err
			}
			out.C, err = c.dec(ctx, r)
			return out, err
		},
	}
}

// Tuple4 combines four slot codecs into a codec for quads.
func Tuple4[A, B, C, D any](a Codec[A], b Codec[B], c Codec[C], d Codec[D]) Codec[Quad[A, B, C, D]] {
	return Codec[Quad[A, B, C, D]]{
		enc: func(w *wire.Writer, v Quad[A, B, C, D]) error {
			if err := a.enc(w, v.A); err != nil {
				return err
			}
			if err := b.enc(w, v.B); err != nil {
				return err
			}
			if err := c.enc(w, v.C); err != nil {
				return err
			}
			return d.enc(w, v.D)
		},
		dec: func(ctx *Context, r *wire.Reader) (Quad[A, B, C, D], error) {
			var out Quad[A, B, C, D]
			var err error
			if out.A, err = a.dec(ctx, r); err != nil {
				return out, err
			}
			if out.B, err = b.dec(ctx, r); err != nil {
				return out, err
			}
			if out.C, err = c.dec(ctx, r); err != nil {
				return out, err
			}
			out.D, err = d.dec(ctx, r)
			return out, err
		},
	}
}
