package huffman

import "errors"

var (
	ErrTooFewLeaves = errors.New("huffman: at least two leaves are required")
	ErrCodeTooLong  = errors.New("huffman: code length exceeds the maximum depth")
)
