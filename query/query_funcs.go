package query

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/tony-format/fragment/ir/kpath"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("under", func(params ...any) (any, error) {
			p, err := kpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			prefix, err := kpath.Parse(params[1].(string))
			if err != nil {
				return nil, err
			}
			return p.IsChildOf(prefix), nil
		},
			new(func(string, string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
