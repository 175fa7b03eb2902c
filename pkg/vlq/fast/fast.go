// Package fast implements a prefix-length variant of VLQ where the number of
// bytes is known after reading the first one.
//
// The count of leading 1-bits in the first byte gives the number of bytes that
// follow it, the remaining bits of the first byte and the following bytes hold
// the value in big-endian order:
//
//	0xxx_xxxx: 1 byte,  7 bits
//	10xx_xxxx: 2 bytes, 14 bits
//	110x_xxxx: 3 bytes, 21 bits
//	...
//	1111_1110: 8 bytes, 56 bits
//	1111_1111: 9 bytes, 64 bits
package fast

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/eigerco/vlq/pkg/vlq"
)

// MaxLen is the length of the encoding of values of 2^56 and above
const MaxLen = 9

// Vlq holds an encoded value, only the first Len bytes are meaningful.
type Vlq [MaxLen]byte

// Len returns the number of meaningful bytes in v.
func (v Vlq) Len() int {
	return DecodeLen(v[0])
}

// Bytes returns the encoded bytes of v.
func (v Vlq) Bytes() []byte {
	return v[:v.Len()]
}

// DecodeLen returns the total encoding length announced by the first byte.
func DecodeLen(first byte) int {
	ones := bits.LeadingZeros8(^first)
	if ones == 8 {
		return MaxLen
	}
	return ones + 1
}

// EncodeLen returns the number of bytes needed to encode x.
func EncodeLen(x uint64) int {
	for l := 1; l < MaxLen; l++ {
		if x < 1<<(7*l) {
			return l
		}
	}
	return MaxLen
}

// prefix returns the length marker for an l byte encoding
func prefix(l int) byte {
	return ^byte(math.MaxUint8 >> (l - 1))
}

// Encode encodes x using the shortest possible length.
func Encode(x uint64) Vlq {
	var v Vlq

	l := EncodeLen(x)
	if l == MaxLen {
		v[0] = math.MaxUint8
		binary.BigEndian.PutUint64(v[1:], x)
		return v
	}

	for i := l - 1; i >= 0; i-- {
		v[i] = byte(x)
		x >>= 8
	}
	v[0] |= prefix(l)
	return v
}

// Decode returns the value held by v.
func Decode(v Vlq) uint64 {
	l := v.Len()
	if l == MaxLen {
		return binary.BigEndian.Uint64(v[1:])
	}

	x := uint64(v[0] & (math.MaxUint8 >> l))
	for i := 1; i < l; i++ {
		x = x<<8 | uint64(v[i])
	}
	return x
}

// DecodeBytes decodes a value from the start of buf and returns it together
// with the number of bytes it occupied.
func DecodeBytes(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, vlq.ErrTruncatedInput
	}
	l := DecodeLen(buf[0])
	if len(buf) < l {
		return 0, 0, vlq.ErrTruncatedInput
	}

	var v Vlq
	copy(v[:], buf[:l])
	return Decode(v), l, nil
}
