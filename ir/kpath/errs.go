package kpath

import "errors"

var ErrSyntax = errors.New("kpath syntax error")
