package vlq

import "errors"

var (
	// ErrTruncatedInput is returned when the input ends before a byte with the continuation bit clear
	ErrTruncatedInput = errors.New("vlq: truncated input")
	// ErrOverflow is returned when the decoded value does not fit the target integer type
	ErrOverflow = errors.New("vlq: value overflows target type")
	// ErrNonMinimal is returned by DecodeMinimal when the encoding starts with a zero group
	ErrNonMinimal = errors.New("vlq: value is not minimally encoded")
	ErrNegative   = errors.New("vlq: negative values cannot be encoded")
)
