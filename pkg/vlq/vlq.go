// Package vlq implements variable-length quantity encoding as used by MIDI.
//
// A value is split into 7-bit groups, most significant group first. Every
// byte except the last one has its high bit set to signal that more bytes
// follow, e.g. 300 is encoded as 0x82 0x2C.
package vlq

import (
	"math/bits"
)

// Unsigned is the set of integer types the codec can encode and decode into.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

const (
	continuationBit = 0x80
	groupMask       = 0x7f
	groupBits       = 7
)

// Longest minimal encoding for each integer width
const (
	MaxLen8  = 2
	MaxLen16 = 3
	MaxLen32 = 5
	MaxLen64 = 10
)

// width returns the size of T in bits
func width[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Len returns the number of bytes needed to encode v.
func Len[T Unsigned](v T) int {
	n := 1
	for v >>= groupBits; v != 0; v >>= groupBits {
		n++
	}
	return n
}

// PutUint encodes v into buf and returns the number of bytes written.
// If the buffer is too small, PutUint will panic.
func PutUint[T Unsigned](buf []byte, v T) int {
	n := Len(v)
	_ = buf[n-1]

	buf[n-1] = byte(v) & groupMask
	for i := n - 2; i >= 0; i-- {
		v >>= groupBits
		buf[i] = byte(v)&groupMask | continuationBit
	}
	return n
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append[T Unsigned](dst []byte, v T) []byte {
	var buf [MaxLen64]byte
	n := PutUint(buf[:], v)
	return append(dst, buf[:n]...)
}

// Encode returns the encoding of v. Zero is encoded as a single 0x00 byte.
func Encode[T Unsigned](v T) []byte {
	return Append(make([]byte, 0, Len(v)), v)
}

// Decode reads a single value from the start of buf and returns it together
// with the number of bytes it occupied, so the next value starts at buf[n:].
//
// Leading zero groups (0x80 bytes) are accepted and do not count towards
// the width of T. Use DecodeMinimal to reject them.
func Decode[T Unsigned](buf []byte) (T, int, error) {
	shift := width[T]() - groupBits

	var v T
	for i, b := range buf {
		// the next shift would push significant bits out of T
		if v>>shift != 0 {
			return 0, 0, ErrOverflow
		}
		v = v<<groupBits | T(b&groupMask)
		if b&continuationBit == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrTruncatedInput
}

// DecodeMinimal works like Decode but fails with ErrNonMinimal when the
// encoding starts with a zero group.
func DecodeMinimal[T Unsigned](buf []byte) (T, int, error) {
	if len(buf) > 0 && buf[0] == continuationBit {
		return 0, 0, ErrNonMinimal
	}
	return Decode[T](buf)
}

func EncodeUint32(v uint32) []byte {
	return Encode(v)
}

func DecodeUint32(buf []byte) (uint32, int, error) {
	return Decode[uint32](buf)
}

func EncodeUint64(v uint64) []byte {
	return Encode(v)
}

func DecodeUint64(buf []byte) (uint64, int, error) {
	return Decode[uint64](buf)
}
