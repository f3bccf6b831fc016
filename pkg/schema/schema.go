// Package schema holds Go forms of the fixed external krpc protocol
// messages consumed by the codec: the blob-carrying collection wrappers and
// the call response envelopes. The schema is owned by the protocol, not by
// this module; field numbers and shapes here are frozen and hand-maintained
// against it.
package schema

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// Message is one krpc schema message with a protobuf wire form.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire([]byte) error
}

// Read parses exactly one length-delimited message from r into m, leaving r
// positioned immediately after the message. It returns io.EOF untouched on a
// clean end of stream.
func Read(r io.Reader, m Message) error {
	b, err := wire.ReadBlock(r)
	if err != nil {
		return err
	}
	return m.UnmarshalWire(b)
}

// Write marshals m and writes it length-delimited to w.
func Write(w io.Writer, m Message) error {
	b, err := m.MarshalWire()
	if err != nil {
		return err
	}
	return wire.WriteBlock(w, b)
}

func parseErr(msg string, num protowire.Number, n int) error {
	return &wire.Malformed{Reason: fmt.Sprintf("%s field %d: %v", msg, num, protowire.ParseError(n))}
}

// skipField consumes one field of unknown number or type so newer schema
// revisions stay readable.
func skipField(msg string, num protowire.Number, typ protowire.Type, b []byte) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return nil, parseErr(msg, num, n)
	}
	return b[n:], nil
}

func consumeTag(msg string, b []byte) (protowire.Number, protowire.Type, []byte, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, nil, &wire.Malformed{Reason: fmt.Sprintf("%s: bad field tag: %v", msg, protowire.ParseError(n))}
	}
	return num, typ, b[n:], nil
}

func consumeBytes(msg string, num protowire.Number, b []byte) ([]byte, []byte, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, nil, parseErr(msg, num, n)
	}
	// Copy out: unmarshaled messages own their blobs, the input buffer is
	// only borrowed for the duration of the call.
	return append([]byte(nil), v...), b[n:], nil
}

func consumeString(msg string, num protowire.Number, b []byte) (string, []byte, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", nil, parseErr(msg, num, n)
	}
	return v, b[n:], nil
}
