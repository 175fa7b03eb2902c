package codec

import (
	"github.com/eigerco/vlq/pkg/vlq"
)

// VLQCodec implements the Codec interface for continuation-bit VLQ encoding.
type VLQCodec struct{}

func NewVLQCodec() *VLQCodec {
	return &VLQCodec{}
}

func (c *VLQCodec) MarshalUint(x uint64) ([]byte, error) {
	return vlq.EncodeUint64(x), nil
}

func (c *VLQCodec) UnmarshalUint(data []byte, v *uint64) (int, error) {
	x, n, err := vlq.DecodeUint64(data)
	if err != nil {
		return 0, err
	}
	*v = x
	return n, nil
}

func (c *VLQCodec) MarshalInt(x int64) ([]byte, error) {
	return vlq.EncodeInt64(x), nil
}

func (c *VLQCodec) UnmarshalInt(data []byte, v *int64) (int, error) {
	x, n, err := vlq.DecodeInt64(data)
	if err != nil {
		return 0, err
	}
	*v = x
	return n, nil
}
