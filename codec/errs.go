package codec

import "errors"

var (
	// ErrUnknownTag reports a leading byte outside the assigned tag
	// range 0-10.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrPrim reports a primitive code the primitive codec rejects.
	ErrPrim = errors.New("invalid primitive")
	// ErrUTF8 reports a string or annotation payload that is not
	// valid UTF-8.
	ErrUTF8 = errors.New("invalid utf-8")
	// ErrTruncated reports a declared or implied byte count that
	// exceeds the remaining input.
	ErrTruncated = errors.New("truncated input")
	// ErrIntRange reports an integer whose magnitude does not fit the
	// 32-bit backing, including the most negative value, whose
	// magnitude cannot be taken.
	ErrIntRange = errors.New("integer out of range")
	// ErrLength reports a length-prefixed child list whose declared
	// size does not match the bytes its children consume.
	ErrLength = errors.New("length mismatch")
	// ErrDepth reports input nested deeper than the configured limit.
	ErrDepth = errors.New("max depth exceeded")
	// ErrAnnot reports an annotation containing the space separator.
	ErrAnnot = errors.New("bad annotation")
)
