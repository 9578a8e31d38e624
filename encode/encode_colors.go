package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/ir/kpath"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	TagColor
	SepColor
)

// Colorable selects a color. Keys are colored by segment kind, values by
// node type.
type Colorable struct {
	Kind kpath.EntryKind
	Type ir.Type
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Attr: KeyColor}
	able.Kind = kpath.FieldEntry
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Kind = kpath.ArrayEntry
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Kind = kpath.SparseArrayEntry
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	colors.Map[Colorable{Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[Colorable{Attr: TagColor}] = color.RGB(74, 92, 138).SprintfFunc()

	able = Colorable{Attr: ValueColor}
	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString
	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Type = ir.ObjectType
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	able.Type = ir.ArrayType
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(able Colorable) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[able]
	if f == nil {
		return c.Default
	}
	return f
}

func (c *Colors) Key(k kpath.EntryKind, s string) string {
	return c.Get(Colorable{Kind: k, Attr: KeyColor})(s)
}

func (c *Colors) Value(t ir.Type, s string) string {
	return c.Get(Colorable{Type: t, Attr: ValueColor})(s)
}

func (c *Colors) Tag(s string) string {
	return c.Get(Colorable{Attr: TagColor})(s)
}

func (c *Colors) Sep(s string) string {
	return c.Get(Colorable{Attr: SepColor})(s)
}
