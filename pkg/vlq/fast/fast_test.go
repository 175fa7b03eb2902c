package fast

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/eigerco/vlq/pkg/vlq"
)

func TestDecodeLen(t *testing.T) {
	testCases := []struct {
		first    byte
		expected int
	}{
		{0b0000_0000, 1},
		{0b0111_1111, 1},
		{0b1000_0000, 2},
		{0b1011_1111, 2},
		{0b1100_0000, 3},
		{0b1101_1111, 3},
		{0b1110_0000, 4},
		{0b1110_1111, 4},
		{0b1111_0000, 5},
		{0b1111_0111, 5},
		{0b1111_1000, 6},
		{0b1111_1011, 6},
		{0b1111_1100, 7},
		{0b1111_1101, 7},
		{0b1111_1110, 8},
		{0b1111_1111, 9},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, DecodeLen(tc.first), "first byte %08b", tc.first)
	}
}

func TestEncodeLen(t *testing.T) {
	testCases := []struct {
		x        uint64
		expected int
	}{
		{0, 1},
		{0x7f, 1},
		{0x80, 2},
		{0x3fff, 2},
		{0x4000, 3},
		{0x1f_ffff, 3},
		{0x20_0000, 4},
		{0x0fff_ffff, 4},
		{0x1000_0000, 5},
		{0x07_ffff_ffff, 5},
		{0x08_0000_0000, 6},
		{0x03ff_ffff_ffff, 6},
		{0x0400_0000_0000, 7},
		{0x01_ffff_ffff_ffff, 7},
		{0x02_0000_0000_0000, 8},
		{0x00ff_ffff_ffff_ffff, 8},
		{0x0100_0000_0000_0000, 9},
		{math.MaxUint64, 9},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%#x", tc.x), func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodeLen(tc.x))

			v := Encode(tc.x)
			assert.Equal(t, tc.expected, v.Len())
			assert.Equal(t, tc.x, Decode(v))
		})
	}
}

func TestEncodeBytes(t *testing.T) {
	testCases := []struct {
		x        uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x80}},
		{300, []byte{0x81, 0x2c}},
		{0x3fff, []byte{0xbf, 0xff}},
		{0x4000, []byte{0xc0, 0x40, 0x00}},
		{0x00ff_ffff_ffff_ffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%#x", tc.x), func(t *testing.T) {
			assert.Equal(t, tc.expected, Encode(tc.x).Bytes())

			x, n, err := DecodeBytes(tc.expected)
			require.NoError(t, err)
			assert.Equal(t, tc.x, x)
			assert.Equal(t, len(tc.expected), n)
		})
	}
}

func TestDecodeBytesTruncated(t *testing.T) {
	_, _, err := DecodeBytes(nil)
	assert.ErrorIs(t, err, vlq.ErrTruncatedInput)

	_, _, err = DecodeBytes([]byte{0xc0, 0x40})
	assert.ErrorIs(t, err, vlq.ErrTruncatedInput)
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64().Draw(t, "x")
		encoded := Encode(x).Bytes()

		got, n, err := DecodeBytes(append(encoded, 0xaa))
		require.NoError(t, err)
		require.Equal(t, x, got)
		require.Equal(t, len(encoded), n)
	})
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode(uint64(i) << 32)
	}
}

func BenchmarkDecode(b *testing.B) {
	v := Encode(math.MaxUint32)
	for i := 0; i < b.N; i++ {
		_ = Decode(v)
	}
}
