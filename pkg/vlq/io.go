package vlq

import (
	"errors"
	"fmt"
	"io"
)

// Read decodes a single value from r without reading past its last byte.
// It returns the value and the number of bytes read from r, which is also
// reported on failure.
//
// Running out of input yields ErrTruncatedInput wrapping io.EOF when no byte
// could be read, or io.ErrUnexpectedEOF when the value was cut short.
func Read[T Unsigned](r io.ByteReader) (T, int, error) {
	shift := width[T]() - groupBits

	var v T
	for n := 0; ; {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n > 0 {
					err = io.ErrUnexpectedEOF
				}
				return 0, n, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
			}
			return 0, n, fmt.Errorf("reading byte %d: %w", n, err)
		}
		n++

		if v>>shift != 0 {
			return 0, n, ErrOverflow
		}
		v = v<<groupBits | T(b&groupMask)
		if b&continuationBit == 0 {
			return v, n, nil
		}
	}
}

// Write writes the encoding of v to w in a single call.
func Write[T Unsigned](w io.Writer, v T) (int, error) {
	var buf [MaxLen64]byte
	n := PutUint(buf[:], v)
	return w.Write(buf[:n])
}
