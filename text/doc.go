// Package text renders Micheline trees as concrete syntax.
//
// # Usage
//
//	// Plain rendering
//	err := text.Encode(os.Stdout, node)
//
//	// Colored when stdout is a terminal
//	err := text.Encode(os.Stdout, node, text.WithColors(text.AutoColors(os.Stdout)))
//
// Output is for humans and debugging; the binary wire format in the
// codec package is the interchange contract.
//
// # Related Packages
//
//   - github.com/micheline-format/go-micheline/ir - tree representation
//   - github.com/micheline-format/go-micheline/codec - binary wire codec
package text
