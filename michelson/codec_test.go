package michelson

import (
	"bytes"
	"errors"
	"testing"

	"github.com/micheline-format/go-micheline/codec"
	"github.com/micheline-format/go-micheline/ir"
)

func prim(p Primitive, args ...*ir.Node[Primitive]) *ir.Node[Primitive] {
	return ir.FromPrim(p, args...)
}

func TestWireVectors(t *testing.T) {
	c := New()
	tests := []struct {
		name string
		node *ir.Node[Primitive]
		wire string
	}{
		{
			"pair of address and bytes",
			prim(D_Pair,
				ir.FromString[Primitive]("KT1BuEZtb68c1Q4yjtckcNjGELqWt56Xyesc"),
				ir.FromBytes[Primitive]([]byte("deadbeef")),
			),
			"\x07\x07\x01\x00\x00\x00\x24KT1BuEZtb68c1Q4yjtckcNjGELqWt56Xyesc\x0a\x00\x00\x00\x08deadbeef",
		},
		{
			"push push add",
			ir.FromSeq(
				prim(I_PUSH, prim(T_nat), ir.FromInt[Primitive](1)).WithAnnots("%one"),
				prim(I_PUSH, prim(T_nat), ir.FromInt[Primitive](2)).WithAnnots("%two"),
				prim(I_ADD),
			),
			"\x02\x00\x00\x00\x1e\x08\x43\x03\x62\x00\x01\x00\x00\x00\x04%one\x08\x43\x03\x62\x00\x02\x00\x00\x00\x04%two\x03\x12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := c.Encode(tt.node)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !bytes.Equal(wire, []byte(tt.wire)) {
				t.Fatalf("encode = %x, want %x", wire, tt.wire)
			}
			back, err := c.Decode(wire)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !ir.Equal(tt.node, back) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

func TestUnknownCode(t *testing.T) {
	c := New()
	if _, err := c.Decode([]byte{0x03, 0xd0}); !errors.Is(err, codec.ErrPrim) {
		t.Errorf("decode err = %v, want ErrPrim", err)
	}
	if _, err := c.Encode(prim(Primitive(0xd0))); !errors.Is(err, codec.ErrPrim) {
		t.Errorf("encode err = %v, want ErrPrim", err)
	}
}
