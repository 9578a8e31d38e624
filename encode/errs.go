package encode

import "errors"

var (
	ErrEncode      = errors.New("encode error")
	ErrUnsupported = errors.New("unsupported node")
)
