// Package michelson provides the reference primitive alphabet for the
// Micheline codec: the canonical Michelson v1 symbol table, mapping
// keywords, data constructors, instructions and types to their
// single-byte wire codes.
//
// # Usage
//
//	c := michelson.New()
//	wire, err := c.Encode(ir.FromPrim(michelson.D_Pair,
//	    ir.FromInt[michelson.Primitive](1),
//	    ir.FromString[michelson.Primitive]("x"),
//	))
//
// The tree engine itself is alphabet-agnostic; any other enumeration
// can be plugged in through codec.PrimCodec.
package michelson
