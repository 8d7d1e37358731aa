// Package debug provides env-gated debug logging for the codec
// packages. Flags are read once at startup:
//
//	MICHELINE_DEBUG_WIRE=1  trace wire-level tag dispatch
//	MICHELINE_DEBUG_TEXT=1  trace text rendering
package debug

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Wire bool
	Text bool
}

var d *debug

func init() {
	d = &debug{}
	d.Wire = boolEnv("MICHELINE_DEBUG_WIRE")
	d.Text = boolEnv("MICHELINE_DEBUG_TEXT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Wire() bool {
	return d.Wire
}
func Text() bool {
	return d.Text
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Hex returns a short single-line hex rendering of at most n bytes
// of buf, for trace messages.
func Hex(buf []byte, n int) string {
	if len(buf) <= n {
		return hex.EncodeToString(buf)
	}
	return hex.EncodeToString(buf[:n]) + "..."
}
