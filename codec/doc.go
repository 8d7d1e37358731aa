// Package codec implements the Micheline binary wire format.
//
// # Overview
//
// Every encoded node starts with a one-byte tag selecting its kind
// and, for primitive applications, its argument-count/annotation
// shape. Integers use the zarith variable-length sign-magnitude
// encoding; strings, byte blobs, sequences and annotation lists are
// framed behind a 4-byte big-endian length prefix.
//
// The engine is generic over the primitive alphabet: it forwards
// primitive codes to a PrimCodec and never interprets them itself.
//
// # Usage
//
//	c := codec.New[michelson.Primitive](michelson.Codec{})
//	wire, err := c.Encode(node)
//	node, err = c.Decode(wire)
//
// Decoding never panics on malformed input: unknown tags, short
// buffers, bad UTF-8 and out-of-range integers all surface as typed
// errors (see Err... sentinels).
//
// # Related Packages
//
//   - github.com/micheline-format/go-micheline/ir - tree representation
//   - github.com/micheline-format/go-micheline/michelson - reference primitives
package codec
