package ir

import (
	"testing"
)

type prim byte

func TestBuilders(t *testing.T) {
	n := FromPrim(prim(7),
		FromInt[prim](42),
		FromString[prim]("hello"),
	).WithAnnots("%a", "%b")
	if n.Kind != PrimKind {
		t.Fatalf("kind = %s, want Prim", n.Kind)
	}
	if len(n.Args) != 2 || len(n.Annots) != 2 {
		t.Fatalf("args/annots = %d/%d, want 2/2", len(n.Args), len(n.Annots))
	}
	if n.Args[0].Int != 42 || n.Args[1].String != "hello" {
		t.Errorf("unexpected arg values: %v %q", n.Args[0].Int, n.Args[1].String)
	}

	seq := FromSeq(FromBytes[prim]([]byte{0xde, 0xad}))
	if seq.Kind != SeqKind || len(seq.Args) != 1 {
		t.Fatalf("seq kind/args = %s/%d", seq.Kind, len(seq.Args))
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromSeq(
		FromBytes[prim]([]byte{1, 2, 3}),
		FromPrim(prim(3), FromInt[prim](1)).WithAnnots("%x"),
	)
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone not equal to original")
	}
	cp.Args[0].Bytes[0] = 0xff
	cp.Args[1].Annots[0] = "%y"
	cp.Args[1].Args[0].Int = 2
	if orig.Args[0].Bytes[0] != 1 {
		t.Error("clone shares bytes with original")
	}
	if orig.Args[1].Annots[0] != "%x" {
		t.Error("clone shares annots with original")
	}
	if orig.Args[1].Args[0].Int != 1 {
		t.Error("clone shares children with original")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node[prim]
		want bool
	}{
		{"nil == nil", nil, nil, true},
		{"nil != node", nil, FromInt[prim](0), false},
		{"int == int", FromInt[prim](5), FromInt[prim](5), true},
		{"int != int", FromInt[prim](5), FromInt[prim](-5), false},
		{"kind mismatch", FromInt[prim](0), FromString[prim](""), false},
		{"string", FromString[prim]("a"), FromString[prim]("a"), true},
		{"bytes", FromBytes[prim]([]byte{1}), FromBytes[prim]([]byte{1}), true},
		{"nil bytes == empty bytes", FromBytes[prim](nil), FromBytes[prim]([]byte{}), true},
		{"seq order", FromSeq(FromInt[prim](1), FromInt[prim](2)), FromSeq(FromInt[prim](2), FromInt[prim](1)), false},
		{"prim", FromPrim(prim(1)), FromPrim(prim(1)), true},
		{"prim code", FromPrim(prim(1)), FromPrim(prim(2)), false},
		{"prim annots", FromPrim(prim(1)).WithAnnots("%a"), FromPrim(prim(1)), false},
		{"nil annots == empty annots", FromPrim(prim(1)), FromPrim(prim(1)).WithAnnots(), true},
		{"prim args", FromPrim(prim(1), FromInt[prim](1)), FromPrim(prim(1), FromInt[prim](1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisitOrder(t *testing.T) {
	tree := FromSeq(
		FromInt[prim](1),
		FromPrim(prim(0), FromInt[prim](2)),
	)
	var pre, post []Kind
	err := tree.Visit(func(n *Node[prim], isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Kind)
		} else {
			pre = append(pre, n.Kind)
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	wantPre := []Kind{SeqKind, IntKind, PrimKind, IntKind}
	wantPost := []Kind{IntKind, IntKind, PrimKind, SeqKind}
	for i := range wantPre {
		if pre[i] != wantPre[i] {
			t.Errorf("pre[%d] = %s, want %s", i, pre[i], wantPre[i])
		}
		if post[i] != wantPost[i] {
			t.Errorf("post[%d] = %s, want %s", i, post[i], wantPost[i])
		}
	}

	// skipping children from the pre call
	pre = pre[:0]
	_ = tree.Visit(func(n *Node[prim], isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Kind)
		}
		return false, nil
	})
	if len(pre) != 1 || pre[0] != SeqKind {
		t.Errorf("non-diving visit saw %v, want root only", pre)
	}
}
