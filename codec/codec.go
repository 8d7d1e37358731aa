package codec

// Wire tags. The 0/1/2-argument primitive forms use a dedicated
// compact tag so that short instruction trees carry no length field;
// three or more arguments fall back to the explicit list form, which
// always carries an annotation field, even an empty one.
const (
	tagInt    byte = 0
	tagString byte = 1
	tagSeq    byte = 2
	tagPrim0  byte = 3
	tagPrim0A byte = 4
	tagPrim1  byte = 5
	tagPrim1A byte = 6
	tagPrim2  byte = 7
	tagPrim2A byte = 8
	tagPrimN  byte = 9
	tagBytes  byte = 10
)

// PrimCodec translates primitives to and from their fixed-width wire
// form. The tree engine treats primitive codes opaquely and only
// forwards calls. Implementations must be pure; a stateless PrimCodec
// makes the enclosing Codec safe for concurrent use.
type PrimCodec[P comparable] interface {
	// EncodePrim appends the wire form of p to dst.
	EncodePrim(dst []byte, p P) ([]byte, error)
	// DecodePrim reads one primitive from the front of buf and
	// returns it together with the number of bytes consumed.
	DecodePrim(buf []byte) (P, int, error)
}

// Codec encodes and decodes Micheline trees over the primitive
// alphabet P.
type Codec[P comparable] struct {
	prims    PrimCodec[P]
	maxDepth int
}

func New[P comparable](prims PrimCodec[P], opts ...Option) *Codec[P] {
	cfg := &config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Codec[P]{prims: prims, maxDepth: cfg.maxDepth}
}
