package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/format"
	"github.com/signadot/tony-format/fragment/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustText renders entries in the uncolored text view.
func MustText(entries []children.Entry) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeEntries(entries, buf, EncodeFormat(format.TextFormat)); err != nil {
		panic(err)
	}
	return buf.String()
}
