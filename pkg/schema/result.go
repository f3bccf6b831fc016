package schema

import "google.golang.org/protobuf/encoding/protowire"

// Error is the structured failure descriptor the remote side attaches to a
// call or to an individual procedure result.
type Error struct {
	Service     string
	Name        string
	Description string
	StackTrace  string
}

// ProcedureResult carries the outcome of one procedure: either an error or
// an opaque encoded value.
type ProcedureResult struct {
	Error *Error
	Value []byte
}

// Response carries the outcome of a whole call: an optional top-level error
// plus zero or more per-procedure results.
type Response struct {
	Error   *Error
	Results []*ProcedureResult
}

func (m *Error) MarshalWire() ([]byte, error) {
	var b []byte
	if m.Service != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Service)
	}
	if m.Name != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, m.Name)
	}
	if m.Description != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, m.Description)
	}
	if m.StackTrace != "" {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, m.StackTrace)
	}
	return b, nil
}

func (m *Error) UnmarshalWire(b []byte) error {
	*m = Error{}
	for len(b) > 0 {
		num, typ, rest, err := consumeTag("Error", b)
		if err != nil {
			return err
		}
		b = rest
		if typ != protowire.BytesType || num < 1 || num > 4 {
			if b, err = skipField("Error", num, typ, b); err != nil {
				return err
			}
			continue
		}
		var s string
		if s, b, err = consumeString("Error", num, b); err != nil {
			return err
		}
		switch num {
		case 1:
			m.Service = s
		case 2:
			m.Name = s
		case 3:
			m.Description = s
		case 4:
			m.StackTrace = s
		}
	}
	return nil
}

func (m *ProcedureResult) MarshalWire() ([]byte, error) {
	var b []byte
	if m.Error != nil {
		sub, err := m.Error.MarshalWire()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	if len(m.Value) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Value)
	}
	return b, nil
}

func (m *ProcedureResult) UnmarshalWire(b []byte) error {
	*m = ProcedureResult{}
	for len(b) > 0 {
		num, typ, rest, err := consumeTag("ProcedureResult", b)
		if err != nil {
			return err
		}
		b = rest
		switch {
		case num == 1 && typ == protowire.BytesType:
			var sub []byte
			if sub, b, err = consumeBytes("ProcedureResult", num, b); err != nil {
				return err
			}
			m.Error = new(Error)
			if err := m.Error.UnmarshalWire(sub); err != nil {
				return err
			}
		case num == 2 && typ == protowire.BytesType:
			if m.Value, b, err = consumeBytes("ProcedureResult", num, b); err != nil {
				return err
			}
		default:
			if b, err = skipField("ProcedureResult", num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Response) MarshalWire() ([]byte, error) {
	var b []byte
	if m.Error != nil {
		sub, err := m.Error.MarshalWire()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	for _, res := range m.Results {
		sub, err := res.MarshalWire()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b, nil
}

func (m *Response) UnmarshalWire(b []byte) error {
	*m = Response{}
	for len(b) > 0 {
		num, typ, rest, err := consumeTag("Response", b)
		if err != nil {
			return err
		}
		b = rest
		switch {
		case num == 1 && typ == protowire.BytesType:
			var sub []byte
			if sub, b, err = consumeBytes("Response", num, b); err != nil {
				return err
			}
			m.Error = new(Error)
			if err := m.Error.UnmarshalWire(sub); err != nil {
				return err
			}
		case num == 2 && typ == protowire.BytesType:
			var sub []byte
			if sub, b, err = consumeBytes("Response", num, b); err != nil {
				return err
			}
			res := new(ProcedureResult)
			if err := res.UnmarshalWire(sub); err != nil {
				return err
			}
			m.Results = append(m.Results, res)
		default:
			if b, err = skipField("Response", num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}
