package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v cannot be written as a bare literal.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '+':
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	for _, r := range v {
		if r == utf8.RuneError {
			return true
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return true
		}
		switch r {
		case '"', '\'', '\\', '#', ':', ',', '!', '&', '*', '|', '>', '}', ']':
			return true
		}
	}
	return false
}

// KPathQuoteField returns true if a field name needs to be quoted in a kinded path.
// A field needs quoting if:
//   - It contains characters that require quoting according to NeedsQuote (spaces, special chars)
//   - It contains any of the path syntax characters: ".", "[", "{"
func KPathQuoteField(v string) bool {
	return NeedsQuote(v) || strings.ContainsAny(v, ".[{")
}

// Quote double quotes v. If autoSingle is set and v contains more double
// quotes than single quotes, single quotes are used instead.
func Quote(v string, autoSingle bool) string {
	ndq, nsq := 0, 0
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			ndq++
			d = append(d, '\\', '"')
		case '\'':
			nsq++
			d = append(d, '\'')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	if !autoSingle || nsq >= ndq {
		return string(d)
	}
	n := len(d)
	sd := make([]byte, 0, n)
	j := 0
	for i, c := range d {
		switch c {
		case '\'':
			sd = append(sd, '\\', '\'')
			j += 2
		case '"':
			switch i {
			case 0, n - 1:
				sd = append(sd, '\'')
				j++
			default:
				// it was escaped, overwrite the backslash
				sd[j-1] = '"'
			}
		default:
			sd = append(sd, c)
			j++
		}
	}
	return string(sd)
}

// QuotedLen returns the number of bytes of d taken by the quoted string
// starting at d[0], closing quote included.
func QuotedLen(d []byte) (int, error) {
	if len(d) == 0 || (d[0] != '"' && d[0] != '\'') {
		return 0, ErrNotQuoted
	}
	quoteChar := rune(d[0])
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		if r == utf8.RuneError {
			return 0, ErrBadUTF8
		}
		start += sz
		switch r {
		case quoteChar:
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return 0, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
				start += 4
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if escaped && r != '"' && r != '\'' {
				return start, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, ErrUnterminated
}

// Unquote reverses Quote. v must consist of exactly one quoted string.
func Unquote(v string) (string, error) {
	n, err := QuotedLen([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return quotedToString([]byte(v)), nil
}

func allHex(d []byte) bool {
	for _, c := range d {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// quotedToString decodes a quoted string already checked by QuotedLen.
func quotedToString(d []byte) string {
	qc := rune(d[0])
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		if !esc {
			switch r {
			case '\\':
				esc = true
			case qc:
				return b.String()
			default:
				b.WriteRune(r)
			}
			continue
		}
		esc = false
		switch r {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			dst := []byte{0, 0}
			if _, err := hex.Decode(dst, d[i:i+4]); err != nil {
				b.WriteRune(utf8.RuneError)
				return b.String()
			}
			b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
			i += 4
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
