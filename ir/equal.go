package ir

import (
	"bytes"
	"slices"
)

// Equal reports whether two trees are structurally identical:
// same kinds, same scalar values, same primitives, and pairwise
// equal children and annotations in the same order.
func Equal[P comparable](a, b *Node[P]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case IntKind:
		return a.Int == b.Int
	case StringKind:
		return a.String == b.String
	case BytesKind:
		return bytes.Equal(a.Bytes, b.Bytes)
	case SeqKind:
		return equalArgs(a, b)
	case PrimKind:
		if a.Prim != b.Prim {
			return false
		}
		// nil and empty annotation lists are the same thing: neither
		// occupies the wire
		if !slices.Equal(a.Annots, b.Annots) {
			return false
		}
		return equalArgs(a, b)
	}
	return false
}

func equalArgs[P comparable](a, b *Node[P]) bool {
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !Equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}
