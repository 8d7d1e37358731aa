package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/micheline-format/go-micheline/ir"
)

// Encode returns the wire form of the tree rooted at n. It fails only
// on precondition violations: an integer whose magnitude exceeds the
// 32-bit backing, an annotation containing the space separator, or a
// primitive the PrimCodec rejects.
func (c *Codec[P]) Encode(n *ir.Node[P]) ([]byte, error) {
	return c.AppendEncode(nil, n)
}

// AppendEncode appends the wire form of the tree rooted at n to dst
// and returns the extended buffer.
func (c *Codec[P]) AppendEncode(dst []byte, n *ir.Node[P]) ([]byte, error) {
	if n == nil {
		return dst, fmt.Errorf("micheline: cannot encode nil node")
	}
	return c.appendNode(dst, n)
}

func (c *Codec[P]) appendNode(dst []byte, n *ir.Node[P]) ([]byte, error) {
	switch n.Kind {
	case ir.IntKind:
		return appendZarith(append(dst, tagInt), n.Int)
	case ir.StringKind:
		return appendBlob(append(dst, tagString), []byte(n.String)), nil
	case ir.BytesKind:
		return appendBlob(append(dst, tagBytes), n.Bytes), nil
	case ir.SeqKind:
		return c.appendList(append(dst, tagSeq), n.Args)
	case ir.PrimKind:
		return c.appendPrim(dst, n)
	}
	return dst, fmt.Errorf("micheline: cannot encode kind %s", n.Kind)
}

func (c *Codec[P]) appendPrim(dst []byte, n *ir.Node[P]) ([]byte, error) {
	annotated := len(n.Annots) > 0
	var tag byte
	switch {
	case len(n.Args) == 0 && !annotated:
		tag = tagPrim0
	case len(n.Args) == 0:
		tag = tagPrim0A
	case len(n.Args) == 1 && !annotated:
		tag = tagPrim1
	case len(n.Args) == 1:
		tag = tagPrim1A
	case len(n.Args) == 2 && !annotated:
		tag = tagPrim2
	case len(n.Args) == 2:
		tag = tagPrim2A
	default:
		tag = tagPrimN
	}
	dst = append(dst, tag)
	dst, err := c.prims.EncodePrim(dst, n.Prim)
	if err != nil {
		return dst, err
	}
	if tag == tagPrimN {
		if dst, err = c.appendList(dst, n.Args); err != nil {
			return dst, err
		}
		// the list form carries the annotation field unconditionally
		return appendAnnots(dst, n.Annots)
	}
	for _, arg := range n.Args {
		if dst, err = c.appendNode(dst, arg); err != nil {
			return dst, err
		}
	}
	if annotated {
		return appendAnnots(dst, n.Annots)
	}
	return dst, nil
}

// appendList frames the concatenated children behind a 4-byte
// big-endian length, reserving the field first and backpatching it
// with the observed payload size.
func (c *Codec[P]) appendList(dst []byte, args []*ir.Node[P]) ([]byte, error) {
	sizeOff := len(dst)
	dst = append(dst, 0, 0, 0, 0)
	var err error
	for _, arg := range args {
		if dst, err = c.appendNode(dst, arg); err != nil {
			return dst, err
		}
	}
	binary.BigEndian.PutUint32(dst[sizeOff:], uint32(len(dst)-sizeOff-4))
	return dst, nil
}

func appendBlob(dst, payload []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(payload)))
	return append(dst, payload...)
}
