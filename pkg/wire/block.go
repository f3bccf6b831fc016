package wire

import (
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// maxBlockSize guards length-delimited reads against absurd prefixes.
const maxBlockSize = 1 << 31

// ReadBlock reads one varint-length-delimited block from r, leaving r
// positioned at the first byte after the block. A clean io.EOF before any
// byte of the length prefix is returned as io.EOF so callers can iterate a
// stream of blocks; EOF anywhere else is a malformed-encoding error.
func ReadBlock(r io.Reader) ([]byte, error) {
	n, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	if n > maxBlockSize {
		return nil, malformed(0, "block length %d too large", n)
	}
	buf := make([]byte, int(n))
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, malformed(0, "truncated block: want %d bytes", n)
		}
		return nil, err
	}
	return buf, nil
}

// WriteBlock writes a varint length prefix followed by b to w.
func WriteBlock(w io.Writer, b []byte) error {
	prefix := protowire.AppendVarint(nil, uint64(len(b)))
	if _, err := w.Write(prefix); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// readVarint reads a base-128 varint byte by byte from an io.Reader.
func readVarint(r io.Reader) (uint64, error) {
	var v uint64
	var s uint
	var one [1]byte
	for i := 0; ; i++ {
		if i == 10 {
			return 0, malformed(i, "varint overflows 64 bits")
		}
		if _, err := io.ReadFull(r, one[:]); err != nil {
			if err == io.EOF && i == 0 {
				return 0, io.EOF
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, malformed(i, "truncated varint")
			}
			return 0, err
		}
		b := one[0]
		v |= uint64(b&0x7f) << s
		if b < 0x80 {
			return v, nil
		}
		s += 7
	}
}
