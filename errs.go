package fragment

import "errors"

var ErrInvalidChild = errors.New("invalid child")
