package children

import "errors"

var (
	ErrCycle      = errors.New("child tree contains a cycle")
	ErrInvalidKey = errors.New("invalid child key")
)
