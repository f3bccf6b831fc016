package main

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/henryrgithub/krpc-mars/pkg/codec"
	"github.com/henryrgithub/krpc-mars/pkg/encoding"
	"github.com/henryrgithub/krpc-mars/pkg/schema"
)

func mustParse(t *testing.T, s string) *typeExpr {
	t.Helper()
	te, err := parseTypeExpr(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return te
}

func TestDecodeValueTuple(t *testing.T) {
	payload, err := encoding.Tuple2(encoding.Bool(), encoding.String()).Encode(
		encoding.Pair[bool, string]{A: true, B: "abc"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	v, err := decodeValue(mustParse(t, "tuple(bool,string)"), payload, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(v, []any{true, "abc"}) {
		t.Fatalf("value: %#v", v)
	}
}

func TestDecodeValueSetDedup(t *testing.T) {
	payload, err := encoding.List(encoding.Int32()).Encode([]int32{1, 2, 2, 3})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	v, err := decodeValue(mustParse(t, "set(sint32)"), payload, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(v, []any{int32(1), int32(2), int32(3)}) {
		t.Fatalf("value: %#v", v)
	}
}

func TestDecodeValueDictLastWins(t *testing.T) {
	ka, _ := encoding.String().Encode("a")
	v1, _ := encoding.Int32().Encode(1)
	v2, _ := encoding.Int32().Encode(2)
	m := schema.Dictionary{Entries: []schema.DictionaryEntry{
		{Key: ka, Value: v1},
		{Key: ka, Value: v2},
	}}
	payload, err := m.MarshalWire()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	v, err := decodeValue(mustParse(t, "dict(string,sint32)"), payload, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	pairs := v.([]kvPair)
	if len(pairs) != 1 || pairs[0].Key != "a" || pairs[0].Value != int32(2) {
		t.Fatalf("value: %#v", pairs)
	}
}

func TestReportFailurePrecedence(t *testing.T) {
	payload, _ := encoding.String().Encode("fine")
	resp := &schema.Response{
		Error:   &schema.Error{Description: "call rejected"},
		Results: []*schema.ProcedureResult{{Value: payload}},
	}
	rep := report(1, resp, mustParse(t, "string"))
	if rep.CallError == nil || rep.CallError.Description != "call rejected" {
		t.Fatalf("call error: %+v", rep.CallError)
	}
	if len(rep.Results) != 0 {
		t.Fatalf("results leaked past top-level failure: %+v", rep.Results)
	}
}

func TestReportDecodeError(t *testing.T) {
	resp := &schema.Response{Results: []*schema.ProcedureResult{
		{Value: []byte{0x09, 'x'}}, // truncated string
	}}
	rep := report(1, resp, mustParse(t, "string"))
	if len(rep.Results) != 1 || rep.Results[0].DecodeError == "" {
		t.Fatalf("decode error not surfaced: %+v", rep.Results)
	}
}

func TestDumpStream(t *testing.T) {
	var stream bytes.Buffer
	payload, _ := encoding.UInt32().Encode(42)
	for i := 0; i < 3; i++ {
		m := schema.Response{Results: []*schema.ProcedureResult{{Value: payload}}}
		if err := schema.Write(&stream, &m); err != nil {
			t.Fatalf("write frame: %v", err)
		}
	}

	var out bytes.Buffer
	err := dump(&stream, &out, mustParse(t, "uint32"), codec.JSON(), 2, zap.NewNop())
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("want 2 frames (max-frames), got %d", len(lines))
	}
	var rep struct {
		Frame   int `json:"frame"`
		Results []struct {
			Value uint32 `json:"value"`
		} `json:"results"`
	}
	if err := json.Unmarshal(lines[1], &rep); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if rep.Frame != 2 || len(rep.Results) != 1 || rep.Results[0].Value != 42 {
		t.Fatalf("report mismatch: %+v", rep)
	}
}
