package text

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/micheline-format/go-micheline/ir"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	AnnotColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = ir.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ir.StringKind
	colors.Map[able] = color.GreenString

	able.Kind = ir.BytesKind
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Kind = ir.PrimKind
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	able.Attr = AnnotColor
	colors.Map[able] = color.BlueString

	return colors
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(k ir.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

// AutoColors returns the default palette when w is a terminal and nil
// otherwise, so callers can pass the result straight to WithColors.
func AutoColors(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return NewColors()
}
