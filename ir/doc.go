// Package ir provides the in-memory representation of Micheline trees.
//
// # Overview
//
// A Micheline document is a tree of nodes: signed integers, UTF-8
// strings, raw byte blobs, ordered sequences, and primitive
// applications carrying arguments and annotations. The package is
// generic over the primitive alphabet P, so the same tree machinery
// serves any enumeration of opcode or type symbols; see the michelson
// package for the reference alphabet.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node kind.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	one := ir.FromInt[michelson.Primitive](1)
//	s := ir.FromString[michelson.Primitive]("hello")
//	push := ir.FromPrim(michelson.I_PUSH,
//	    ir.FromPrim[michelson.Primitive](michelson.T_nat),
//	    one,
//	).WithAnnots("%one")
//	seq := ir.FromSeq(push)
//
// # Related Packages
//
//   - github.com/micheline-format/go-micheline/codec - binary wire codec
//   - github.com/micheline-format/go-micheline/michelson - reference primitives
//   - github.com/micheline-format/go-micheline/text - concrete syntax rendering
package ir
