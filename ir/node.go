package ir

import (
	"bytes"
	"slices"
)

// Node is a single Micheline value, generic over the primitive
// alphabet P. The Kind field selects which of the remaining fields
// are meaningful:
//
//   - IntKind: Int
//   - StringKind: String
//   - BytesKind: Bytes
//   - SeqKind: Args
//   - PrimKind: Prim, Args, Annots
//
// A tree is acyclic; every child is owned exclusively by its parent.
// Trees are treated as immutable once constructed: encoding reads a
// tree without modifying it, and decoding builds a fresh tree with no
// aliasing into the input buffer.
type Node[P comparable] struct {
	Kind Kind

	Int    int32
	String string
	Bytes  []byte

	Prim   P
	Args   []*Node[P]
	Annots []string
}

// WithAnnots sets the annotation list of a primitive application and
// returns the node, so applications can be built inline. Annotation
// order is significant and preserved on the wire. An annotation must
// not contain the space character, which separates annotations in
// the encoded form.
func (n *Node[P]) WithAnnots(annots ...string) *Node[P] {
	n.Annots = annots
	return n
}

func FromInt[P comparable](v int32) *Node[P] {
	return &Node[P]{Kind: IntKind, Int: v}
}

func FromString[P comparable](v string) *Node[P] {
	return &Node[P]{Kind: StringKind, String: v}
}

func FromBytes[P comparable](v []byte) *Node[P] {
	return &Node[P]{Kind: BytesKind, Bytes: v}
}

func FromSeq[P comparable](values ...*Node[P]) *Node[P] {
	return &Node[P]{Kind: SeqKind, Args: values}
}

func FromPrim[P comparable](p P, args ...*Node[P]) *Node[P] {
	return &Node[P]{Kind: PrimKind, Prim: p, Args: args}
}

func (n *Node[P]) Clone() *Node[P] {
	res := &Node[P]{}
	return n.CloneTo(res)
}

func (n *Node[P]) CloneTo(dst *Node[P]) *Node[P] {
	dst.Kind = n.Kind
	dst.Int = n.Int
	dst.String = n.String
	dst.Bytes = bytes.Clone(n.Bytes)
	dst.Prim = n.Prim
	dst.Annots = slices.Clone(n.Annots)
	if n.Args == nil {
		dst.Args = nil
		return dst
	}
	dst.Args = make([]*Node[P], len(n.Args))
	for i, arg := range n.Args {
		dstI := &Node[P]{}
		arg.CloneTo(dstI)
		dst.Args[i] = dstI
	}
	return dst
}

// Visit walks the tree depth first, calling f on each node before
// (isPost false) and after (isPost true) its children. Returning
// false from a pre call skips the node's children.
func (n *Node[P]) Visit(f func(n *Node[P], isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, arg := range n.Args {
			if err := arg.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
