package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrBadUTF8      = errors.New("bad utf8")
	ErrNotQuoted    = errors.New("not a quoted string")
)
