package encoding

import (
	"math"

	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// Bool codes booleans as single-byte varints (0 or 1).
func Bool() Codec[bool] {
	return Codec[bool]{
		enc: func(w *wire.Writer, v bool) error {
			var u uint64
			if v {
				u = 1
			}
			w.WriteVarint(u)
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (bool, error) {
			u, err := r.ReadVarint()
			return u != 0, err
		},
	}
}

// Int32 codes signed 32-bit integers as zigzag varints.
func Int32() Codec[int32] {
	return Codec[int32]{
		enc: func(w *wire.Writer, v int32) error {
			w.WriteZigzag(int64(v))
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (int32, error) {
			z, err := r.ReadZigzag()
			return int32(z), err
		},
	}
}

// Int64 codes signed 64-bit integers as zigzag varints.
func Int64() Codec[int64] {
	return Codec[int64]{
		enc: func(w *wire.Writer, v int64) error {
			w.WriteZigzag(v)
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (int64, error) {
			return r.ReadZigzag()
		},
	}
}

// UInt32 codes unsigned 32-bit integers as plain varints.
func UInt32() Codec[uint32] {
	return Codec[uint32]{
		enc: func(w *wire.Writer, v uint32) error {
			w.WriteVarint(uint64(v))
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (uint32, error) {
			u, err := r.ReadVarint()
			return uint32(u), err
		},
	}
}

// UInt64 codes unsigned 64-bit integers as plain varints.
func UInt64() Codec[uint64] {
	return Codec[uint64]{
		enc: func(w *wire.Writer, v uint64) error {
			w.WriteVarint(v)
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (uint64, error) {
			return r.ReadVarint()
		},
	}
}

// Float codes 32-bit floats as fixed-width little-endian.
func Float() Codec[float32] {
	return Codec[float32]{
		enc: func(w *wire.Writer, v float32) error {
			w.WriteFixed32(math.Float32bits(v))
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (float32, error) {
			u, err := r.ReadFixed32()
			return math.Float32frombits(u), err
		},
	}
}

// Double codes 64-bit floats as fixed-width little-endian.
func Double() Codec[float64] {
	return Codec[float64]{
		enc: func(w *wire.Writer, v float64) error {
			w.WriteFixed64(math.Float64bits(v))
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (float64, error) {
			u, err := r.ReadFixed64()
			return math.Float64frombits(u), err
		},
	}
}

// String codes strings as length-prefixed UTF-8.
func String() Codec[string] {
	return Codec[string]{
		enc: func(w *wire.Writer, v string) error {
			w.WriteString(v)
			return nil
		},
		dec: func(_ *Context, r *wire.Reader) (string, error) {
			return r.ReadString()
		},
	}
}

// Unit codes the empty value: zero bytes on the wire in both directions.
func Unit() Codec[struct{}] {
	return Codec[struct{}]{
		enc: func(*wire.Writer, struct{}) error { return nil },
		dec: func(*Context, *wire.Reader) (struct{}, error) { return struct{}{}, nil },
	}
}
