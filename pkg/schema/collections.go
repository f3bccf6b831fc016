package schema

import "google.golang.org/protobuf/encoding/protowire"

// List is the wrapper for an ordered sequence. Each item is one complete,
// independently decodable encoding of an element.
type List struct {
	Items [][]byte
}

// Set is the wrapper for an unordered collection. Wire-identical to List;
// kept distinct because the external schema declares it as its own message.
type Set struct {
	Items [][]byte
}

// Tuple is the wrapper for a fixed-arity product type. Present in the
// schema for completeness; the codec encodes tuple slots back-to-back
// instead and never emits this wrapper.
type Tuple struct {
	Items [][]byte
}

// Dictionary is the wrapper for a key-value mapping.
type Dictionary struct {
	Entries []DictionaryEntry
}

// DictionaryEntry is one key-blob/value-blob pair.
type DictionaryEntry struct {
	Key   []byte
	Value []byte
}

func marshalItems(items [][]byte) ([]byte, error) {
	var b []byte
	for _, it := range items {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, it)
	}
	return b, nil
}

func unmarshalItems(msg string, b []byte) ([][]byte, error) {
	var items [][]byte
	for len(b) > 0 {
		num, typ, rest, err := consumeTag(msg, b)
		if err != nil {
			return nil, err
		}
		b = rest
		if num == 1 && typ == protowire.BytesType {
			var it []byte
			if it, b, err = consumeBytes(msg, num, b); err != nil {
				return nil, err
			}
			items = append(items, it)
			continue
		}
		if b, err = skipField(msg, num, typ, b); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (m *List) MarshalWire() ([]byte, error) { return marshalItems(m.Items) }

func (m *List) UnmarshalWire(b []byte) (err error) {
	m.Items, err = unmarshalItems("List", b)
	return
}

func (m *Set) MarshalWire() ([]byte, error) { return marshalItems(m.Items) }

func (m *Set) UnmarshalWire(b []byte) (err error) {
	m.Items, err = unmarshalItems("Set", b)
	return
}

func (m *Tuple) MarshalWire() ([]byte, error) { return marshalItems(m.Items) }

func (m *Tuple) UnmarshalWire(b []byte) (err error) {
	m.Items, err = unmarshalItems("Tuple", b)
	return
}

func (m *DictionaryEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Key)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Value)
	return b, nil
}

func (m *DictionaryEntry) UnmarshalWire(b []byte) error {
	*m = DictionaryEntry{}
	for len(b) > 0 {
		num, typ, rest, err := consumeTag("DictionaryEntry", b)
		if err != nil {
			return err
		}
		b = rest
		switch {
		case num == 1 && typ == protowire.BytesType:
			if m.Key, b, err = consumeBytes("DictionaryEntry", num, b); err != nil {
				return err
			}
		case num == 2 && typ == protowire.BytesType:
			if m.Value, b, err = consumeBytes("DictionaryEntry", num, b); err != nil {
				return err
			}
		default:
			if b, err = skipField("DictionaryEntry", num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Dictionary) MarshalWire() ([]byte, error) {
	var b []byte
	for i := range m.Entries {
		sub, err := m.Entries[i].MarshalWire()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b, nil
}

func (m *Dictionary) UnmarshalWire(b []byte) error {
	m.Entries = nil
	for len(b) > 0 {
		num, typ, rest, err := consumeTag("Dictionary", b)
		if err != nil {
			return err
		}
		b = rest
		if num == 1 && typ == protowire.BytesType {
			var sub []byte
			if sub, b, err = consumeBytes("Dictionary", num, b); err != nil {
				return err
			}
			var e DictionaryEntry
			if err := e.UnmarshalWire(sub); err != nil {
				return err
			}
			m.Entries = append(m.Entries, e)
			continue
		}
		if b, err = skipField("Dictionary", num, typ, b); err != nil {
			return err
		}
	}
	return nil
}
