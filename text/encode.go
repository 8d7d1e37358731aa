package text

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/micheline-format/go-micheline/debug"
	"github.com/micheline-format/go-micheline/ir"
)

type encState struct {
	colors *Colors
}

type Option func(*encState)

func WithColors(c *Colors) Option {
	return func(es *encState) { es.colors = c }
}

// Encode writes the concrete Micheline syntax of the tree rooted at
// node: decimal integers, quoted strings, 0x-prefixed byte blobs,
// `{ a ; b }` sequences and primitive applications with their
// annotations inline. Primitive names come from the alphabet's
// String method. The rendering is presentational only; the wire
// contract lives in the codec package.
func Encode[P comparable](w io.Writer, node *ir.Node[P], opts ...Option) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("text: cannot render nil node")
	}
	if debug.Text() {
		debug.Logf("micheline: render %s root\n", node.Kind)
	}
	if err := encode(w, node, es, false); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode[P comparable](w io.Writer, n *ir.Node[P], es *encState, nested bool) error {
	switch n.Kind {
	case ir.IntKind:
		return writeString(w, es.color(n.Kind, ValueColor, strconv.FormatInt(int64(n.Int), 10)))
	case ir.StringKind:
		return writeString(w, es.color(n.Kind, ValueColor, strconv.Quote(n.String)))
	case ir.BytesKind:
		return writeString(w, es.color(n.Kind, ValueColor, "0x"+hex.EncodeToString(n.Bytes)))
	case ir.SeqKind:
		return encodeSeq(w, n, es)
	case ir.PrimKind:
		return encodePrim(w, n, es, nested)
	}
	return fmt.Errorf("text: cannot render kind %s", n.Kind)
}

func encodeSeq[P comparable](w io.Writer, n *ir.Node[P], es *encState) error {
	if len(n.Args) == 0 {
		return writeString(w, es.color(n.Kind, SepColor, "{}"))
	}
	if err := writeString(w, es.color(n.Kind, SepColor, "{")+" "); err != nil {
		return err
	}
	for i, arg := range n.Args {
		if i > 0 {
			if err := writeString(w, " "+es.color(n.Kind, SepColor, ";")+" "); err != nil {
				return err
			}
		}
		// sequence elements never need parentheses
		if err := encode(w, arg, es, false); err != nil {
			return err
		}
	}
	return writeString(w, " "+es.color(n.Kind, SepColor, "}"))
}

func encodePrim[P comparable](w io.Writer, n *ir.Node[P], es *encState, nested bool) error {
	wrap := nested && (len(n.Args) > 0 || len(n.Annots) > 0)
	if wrap {
		if err := writeString(w, es.color(n.Kind, SepColor, "(")); err != nil {
			return err
		}
	}
	if err := writeString(w, es.color(n.Kind, ValueColor, fmt.Sprintf("%v", n.Prim))); err != nil {
		return err
	}
	for _, a := range n.Annots {
		if err := writeString(w, " "+es.color(n.Kind, AnnotColor, a)); err != nil {
			return err
		}
	}
	for _, arg := range n.Args {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(w, arg, es, true); err != nil {
			return err
		}
	}
	if wrap {
		return writeString(w, es.color(n.Kind, SepColor, ")"))
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *encState) color(k ir.Kind, attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(k, attr, s)
}
