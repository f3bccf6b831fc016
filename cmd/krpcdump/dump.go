package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/henryrgithub/krpc-mars/pkg/codec"
	"github.com/henryrgithub/krpc-mars/pkg/schema"
	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// maxDumpDepth bounds recursion when decoding with a -type expression.
// Expression nesting is already finite, but hostile blobs can still nest
// wrappers deeper than the expression; depth tracks the blob side.
const maxDumpDepth = 64

type frameReport struct {
	Frame     int            `json:"frame" cbor:"frame"`
	CallError *errorReport   `json:"call_error,omitempty" cbor:"call_error,omitempty"`
	Results   []resultReport `json:"results,omitempty" cbor:"results,omitempty"`
}

type errorReport struct {
	Service     string `json:"service,omitempty" cbor:"service,omitempty"`
	Name        string `json:"name,omitempty" cbor:"name,omitempty"`
	Description string `json:"description,omitempty" cbor:"description,omitempty"`
	StackTrace  string `json:"stack_trace,omitempty" cbor:"stack_trace,omitempty"`
}

type resultReport struct {
	Error       *errorReport `json:"error,omitempty" cbor:"error,omitempty"`
	Value       any          `json:"value,omitempty" cbor:"value,omitempty"`
	Raw         []byte       `json:"raw,omitempty" cbor:"raw,omitempty"`
	DecodeError string       `json:"decode_error,omitempty" cbor:"decode_error,omitempty"`
}

// kvPair renders one dictionary entry. Keys stay typed, so maps with
// non-string keys survive JSON rendering.
type kvPair struct {
	Key   any `json:"key" cbor:"key"`
	Value any `json:"value" cbor:"value"`
}

// dump reads Response frames from in until EOF (or maxFrames) and writes
// one rendered report per frame to out.
func dump(in io.Reader, out io.Writer, t *typeExpr, render codec.Codec, maxFrames int, logger *zap.Logger) error {
	br := bufio.NewReader(in)
	for n := 1; maxFrames == 0 || n <= maxFrames; n++ {
		var resp schema.Response
		if err := schema.Read(br, &resp); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("frame %d: %w", n, err)
		}
		rep := report(n, &resp, t)
		b, err := render.Marshal(rep)
		if err != nil {
			return fmt.Errorf("frame %d: render: %w", n, err)
		}
		if render.ContentType() == "application/json" {
			b = append(b, '\n')
		}
		if _, err := out.Write(b); err != nil {
			return err
		}
		logger.Debug("frame dumped",
			zap.Int("frame", n),
			zap.Int("results", len(resp.Results)),
			zap.Bool("call_error", resp.Error != nil))
	}
	return nil
}

// report classifies one response. A top-level error supersedes per-result
// content, matching the codec's failure precedence.
func report(n int, resp *schema.Response, t *typeExpr) frameReport {
	rep := frameReport{Frame: n}
	if resp.Error != nil {
		rep.CallError = newErrorReport(resp.Error)
		return rep
	}
	for _, pr := range resp.Results {
		var rr resultReport
		switch {
		case pr.Error != nil:
			rr.Error = newErrorReport(pr.Error)
		case t == nil:
			rr.Raw = pr.Value
		default:
			v, err := decodeValue(t, pr.Value, 0)
			if err != nil {
				rr.Raw = pr.Value
				rr.DecodeError = err.Error()
			} else {
				rr.Value = v
			}
		}
		rep.Results = append(rep.Results, rr)
	}
	return rep
}

func newErrorReport(e *schema.Error) *errorReport {
	return &errorReport{
		Service:     e.Service,
		Name:        e.Name,
		Description: e.Description,
		StackTrace:  e.StackTrace,
	}
}

// decodeValue decodes one complete encoded value of type t from b.
func decodeValue(t *typeExpr, b []byte, depth int) (any, error) {
	r := wire.NewReader(b)
	return decodeFrom(t, r, depth)
}

// decodeFrom decodes one value of type t from the reader's position. It is
// the dynamic twin of the generic codec: same shapes, same double-encoded
// blob scheme, but producing `any` values for rendering.
func decodeFrom(t *typeExpr, r *wire.Reader, depth int) (any, error) {
	if depth > maxDumpDepth {
		return nil, &wire.Malformed{Offset: r.Offset(), Reason: fmt.Sprintf("container nesting exceeds depth %d", maxDumpDepth)}
	}
	switch t.name {
	case "bool":
		u, err := r.ReadVarint()
		return u != 0, err
	case "sint32":
		z, err := r.ReadZigzag()
		return int32(z), err
	case "sint64":
		return r.ReadZigzag()
	case "uint32":
		u, err := r.ReadVarint()
		return uint32(u), err
	case "uint64":
		return r.ReadVarint()
	case "float":
		u, err := r.ReadFixed32()
		return math.Float32frombits(u), err
	case "double":
		u, err := r.ReadFixed64()
		return math.Float64frombits(u), err
	case "string":
		return r.ReadString()
	case "unit":
		return nil, nil
	case "list":
		var m schema.List
		if err := m.UnmarshalWire(r.Rest()); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(m.Items))
		for _, it := range m.Items {
			v, err := decodeValue(t.args[0], it, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case "set":
		var m schema.Set
		if err := m.UnmarshalWire(r.Rest()); err != nil {
			return nil, err
		}
		seen := make(map[any]struct{}, len(m.Items))
		out := make([]any, 0, len(m.Items))
		for _, it := range m.Items {
			v, err := decodeValue(t.args[0], it, depth+1)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
		return out, nil
	case "dict":
		var m schema.Dictionary
		if err := m.UnmarshalWire(r.Rest()); err != nil {
			return nil, err
		}
		seen := make(map[any]int, len(m.Entries))
		out := make([]kvPair, 0, len(m.Entries))
		for _, e := range m.Entries {
			k, err := decodeValue(t.args[0], e.Key, depth+1)
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(t.args[1], e.Value, depth+1)
			if err != nil {
				return nil, err
			}
			// last entry wins, same as the typed codec's map insert
			if i, dup := seen[k]; dup {
				out[i].Value = v
				continue
			}
			seen[k] = len(out)
			out = append(out, kvPair{Key: k, Value: v})
		}
		return out, nil
	case "tuple":
		out := make([]any, 0, len(t.args))
		for _, slot := range t.args {
			v, err := decodeFrom(slot, r, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown type %q", t.name)
}
