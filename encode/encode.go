package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/format"
	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/ir/kpath"
	"github.com/signadot/tony-format/fragment/token"
)

type EncState struct {
	format format.Format
	colors *Colors
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node as YAML or JSON. The text format has no rendering of
// its own for a whole document and writes YAML.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	v, err := toAny(node, !es.format.IsJSON())
	if err != nil {
		return err
	}
	return es.marshal(v, w)
}

// EncodeEntries writes the entries of a fragment. YAML and JSON write one
// mapping from composite key to value in entry order; the text format
// writes one "key: value" line per entry.
func EncodeEntries(entries []children.Entry, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsText() {
		for _, e := range entries {
			line, err := es.entryLine(e)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	ms := make(yaml.MapSlice, 0, len(entries))
	for _, e := range entries {
		v, err := toAny(e.Value, !es.format.IsJSON())
		if err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
		ms = append(ms, yaml.MapItem{Key: e.Key, Value: v})
	}
	return es.marshal(ms, w)
}

func (es *EncState) marshal(v any, w io.Writer) error {
	var (
		d   []byte
		err error
	)
	if es.format.IsJSON() {
		d, err = yaml.MarshalWithOptions(v, yaml.JSON())
	} else {
		d, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) entryLine(e children.Entry) (string, error) {
	val, err := es.valueText(e.Value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Key, err)
	}
	return es.keyText(e) + es.colors.Sep(":") + " " + val, nil
}

func (es *EncState) keyText(e children.Entry) string {
	if e.Path == nil {
		return es.colors.Key(kpath.FieldEntry, e.Key)
	}
	buf := strings.Builder{}
	for i, seg := range e.Path.Segments() {
		kind := seg.EntryKind()
		if kind == kpath.FieldEntry && i > 0 {
			buf.WriteString(es.colors.Sep("."))
		}
		buf.WriteString(es.colors.Key(kind, seg.SegmentString()))
	}
	return buf.String()
}

func (es *EncState) valueText(n *ir.Node) (string, error) {
	n = n.Unwrap()
	if n == nil {
		return es.colors.Value(ir.NullType, "null"), nil
	}
	if ir.IsElement(n) {
		return es.colors.Tag(ir.ElementTag) + " " + es.colors.Value(ir.StringType, ir.ElementType(n)), nil
	}
	var s string
	switch n.Type {
	case ir.StringType:
		s = n.String
		if token.NeedsQuote(s) {
			s = token.Quote(s, true)
		}
	case ir.NumberType:
		s = numberText(n)
	case ir.BoolType:
		s = strconv.FormatBool(n.Bool)
	case ir.NullType:
		s = "null"
	default:
		v, err := toAny(n, true)
		if err != nil {
			return "", err
		}
		d, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncode, err)
		}
		s = string(bytes.TrimSpace(d))
	}
	s = es.colors.Value(n.Type, s)
	if n.Tag != "" {
		s = es.colors.Tag(n.Tag) + " " + s
	}
	return s, nil
}

func numberText(n *ir.Node) string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	default:
		return n.Number
	}
}
