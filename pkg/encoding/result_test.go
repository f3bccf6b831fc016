package encoding

import (
	"errors"
	"testing"

	"github.com/henryrgithub/krpc-mars/pkg/schema"
)

func TestResultDecodesPayload(t *testing.T) {
	payload, err := Tuple2(Bool(), String()).Encode(Pair[bool, string]{A: true, B: "abc"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	pr := &schema.ProcedureResult{Value: payload}
	got, err := Result(nil, pr, Tuple2(Bool(), String()))
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if got.A != true || got.B != "abc" {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestResultRemoteFailure(t *testing.T) {
	pr := &schema.ProcedureResult{Error: &schema.Error{
		Service:     "SpaceCenter",
		Name:        "InvalidOperation",
		Description: "engine off",
	}}
	_, err := Result(nil, pr, String())
	if !IsRemote(err) {
		t.Fatalf("want remote failure, got %v", err)
	}
	var re *RemoteError
	if !errors.As(err, &re) || re.Service != "SpaceCenter" || re.Description != "engine off" {
		t.Fatalf("remote error fields: %+v", re)
	}
	if IsMalformed(err) {
		t.Fatalf("remote failure misclassified as malformed")
	}
}

func TestSingleResultFailurePrecedence(t *testing.T) {
	// a top-level failure wins even when a valid payload is present
	payload, err := String().Encode("looks fine")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	resp := &schema.Response{
		Error:   &schema.Error{Description: "call not evaluated"},
		Results: []*schema.ProcedureResult{{Value: payload}},
	}
	_, err = SingleResult(nil, resp, String())
	if !IsRemote(err) {
		t.Fatalf("want top-level remote failure, got %v", err)
	}
	var re *RemoteError
	if !errors.As(err, &re) || re.Description != "call not evaluated" {
		t.Fatalf("wrong failure surfaced: %+v", re)
	}
}

func TestSingleResultSuccess(t *testing.T) {
	payload, err := Int32().Encode(-5)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	resp := &schema.Response{Results: []*schema.ProcedureResult{{Value: payload}}}
	got, err := SingleResult(nil, resp, Int32())
	if err != nil {
		t.Fatalf("single result: %v", err)
	}
	if got != -5 {
		t.Fatalf("payload mismatch: %d", got)
	}
}

func TestSingleResultEmptyResponse(t *testing.T) {
	_, err := SingleResult(nil, &schema.Response{}, String())
	if !IsMalformed(err) {
		t.Fatalf("want malformed, got %v", err)
	}
}

func TestMalformedPayloadDistinct(t *testing.T) {
	// a superficially successful result whose payload cannot be parsed
	pr := &schema.ProcedureResult{Value: []byte{0x09, 'x'}}
	_, err := Result(nil, pr, String())
	if !IsMalformed(err) || IsRemote(err) {
		t.Fatalf("want malformed (not remote), got %v", err)
	}
}
