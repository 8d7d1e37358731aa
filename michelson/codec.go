package michelson

import (
	"fmt"

	"github.com/micheline-format/go-micheline/codec"
)

// Codec binds the Michelson alphabet to the tree engine: one byte per
// primitive, the byte being the primitive's position in the canonical
// enumeration. It is stateless and safe for concurrent use.
type Codec struct{}

var _ codec.PrimCodec[Primitive] = Codec{}

func (Codec) EncodePrim(dst []byte, p Primitive) ([]byte, error) {
	if !p.Valid() {
		return dst, fmt.Errorf("%w: code 0x%02x", codec.ErrPrim, byte(p))
	}
	return append(dst, byte(p)), nil
}

func (Codec) DecodePrim(buf []byte) (Primitive, int, error) {
	if len(buf) < 1 {
		return 0, 0, fmt.Errorf("%w: need 1 byte for primitive", codec.ErrTruncated)
	}
	p := Primitive(buf[0])
	if !p.Valid() {
		return 0, 0, fmt.Errorf("%w: code 0x%02x", codec.ErrPrim, buf[0])
	}
	return p, 1, nil
}

// New returns a tree codec bound to the Michelson alphabet.
func New(opts ...codec.Option) *codec.Codec[Primitive] {
	return codec.New[Primitive](Codec{}, opts...)
}
