package michelson

import (
	"testing"
)

func TestWireCodes(t *testing.T) {
	tests := []struct {
		prim Primitive
		code byte
		name string
	}{
		{K_parameter, 0x00, "parameter"},
		{K_code, 0x02, "code"},
		{D_Pair, 0x07, "Pair"},
		{D_Unit, 0x0b, "Unit"},
		{I_PACK, 0x0c, "PACK"},
		{I_ADD, 0x12, "ADD"},
		{I_PAIR, 0x42, "PAIR"},
		{I_PUSH, 0x43, "PUSH"},
		{I_RENAME, 0x58, "RENAME"},
		{T_bool, 0x59, "bool"},
		{T_nat, 0x62, "nat"},
		{T_pair, 0x65, "pair"},
		{T_address, 0x6e, "address"},
	}
	for _, tt := range tests {
		if byte(tt.prim) != tt.code {
			t.Errorf("%s code = 0x%02x, want 0x%02x", tt.name, byte(tt.prim), tt.code)
		}
		if tt.prim.String() != tt.name {
			t.Errorf("0x%02x name = %q, want %q", tt.code, tt.prim.String(), tt.name)
		}
	}
	if n := len(Primitives()); n != 111 {
		t.Errorf("len(Primitives()) = %d, want 111", n)
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, p := range Primitives() {
		got, err := ParsePrimitive(p.String())
		if err != nil {
			t.Errorf("ParsePrimitive(%q): %v", p.String(), err)
			continue
		}
		if got != p {
			t.Errorf("ParsePrimitive(%q) = 0x%02x, want 0x%02x", p.String(), byte(got), byte(p))
		}
		text, err := p.MarshalText()
		if err != nil {
			t.Errorf("MarshalText(0x%02x): %v", byte(p), err)
			continue
		}
		var back Primitive
		if err := back.UnmarshalText(text); err != nil || back != p {
			t.Errorf("UnmarshalText(%q) = (0x%02x, %v), want 0x%02x", text, byte(back), err, byte(p))
		}
	}
}

func TestInvalidPrimitive(t *testing.T) {
	p := Primitive(0xd0)
	if p.Valid() {
		t.Error("0xd0 reported valid")
	}
	if _, err := p.MarshalText(); err == nil {
		t.Error("MarshalText of invalid primitive succeeded")
	}
	if _, err := ParsePrimitive("NO_SUCH_OP"); err == nil {
		t.Error("ParsePrimitive of unknown name succeeded")
	}
}
