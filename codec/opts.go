package codec

// DefaultMaxDepth bounds decode recursion when no MaxDepth option is
// given. Encoding walks caller-built trees and is not limited.
const DefaultMaxDepth = 2048

type config struct {
	maxDepth int
}

type Option func(*config)

// MaxDepth sets the nesting depth at which decoding gives up with
// ErrDepth, guarding the call stack against adversarial input.
func MaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}
