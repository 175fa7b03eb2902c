package codec

import (
	"github.com/eigerco/vlq/pkg/vlq/fast"
)

// FastCodec implements the Codec interface for the prefix-length encoding
type FastCodec struct{}

func NewFastCodec() *FastCodec {
	return &FastCodec{}
}

func (c *FastCodec) MarshalUint(x uint64) ([]byte, error) {
	return fast.Encode(x).Bytes(), nil
}

func (c *FastCodec) UnmarshalUint(data []byte, v *uint64) (int, error) {
	x, n, err := fast.DecodeBytes(data)
	if err != nil {
		return 0, err
	}
	*v = x
	return n, nil
}

// MarshalInt encodes the two's complement bits of x
func (c *FastCodec) MarshalInt(x int64) ([]byte, error) {
	return c.MarshalUint(uint64(x))
}

func (c *FastCodec) UnmarshalInt(data []byte, v *int64) (int, error) {
	var u uint64
	n, err := c.UnmarshalUint(data, &u)
	if err != nil {
		return 0, err
	}
	*v = int64(u)
	return n, nil
}
