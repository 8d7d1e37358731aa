package ir

import "fmt"

type Kind int

const (
	IntKind Kind = iota
	StringKind
	BytesKind
	PrimKind
	SeqKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		IntKind:    "Int",
		StringKind: "String",
		BytesKind:  "Bytes",
		PrimKind:   "Prim",
		SeqKind:    "Seq",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Int":    IntKind,
		"String": StringKind,
		"Bytes":  BytesKind,
		"Prim":   PrimKind,
		"Seq":    SeqKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		IntKind,
		StringKind,
		BytesKind,
		PrimKind,
		SeqKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case SeqKind, PrimKind:
		return false
	default:
		return true
	}
}
