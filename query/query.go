package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/encode"
	"github.com/signadot/tony-format/fragment/ir"
)

// Env is the set of variables a predicate sees for one entry.
type Env = map[string]any

// Query is a compiled boolean predicate over fragment entries. It holds no
// per-run state and may be shared between goroutines.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a bool. The variables are
//
//	key          composite key string
//	path         key segments, e.g. ["a", "[0]"]
//	last         last segment
//	kind         kind of the last segment: field, index or sparse
//	depth        number of segments
//	type         type of the value: Null, Number, String, Bool, ...
//	value        the value as a plain Go value
//	element      whether the value is an element
//	elementType  the element's type, or ""
//
// value is left untyped so it compares against any literal. Names which
// are not set, value included, evaluate to nil.
func Compile(src string) (*Query, error) {
	opts := append([]expr.Option{
		expr.Env(sampleEnv()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}, exprOpts()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Match reports whether e satisfies q.
func (q *Query) Match(e children.Entry) (bool, error) {
	env, err := EntryEnv(e)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrRun, e.Key, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: got %T, want bool", ErrRun, e.Key, res)
	}
	return b, nil
}

// Filter returns the entries matching q in their original order.
func (q *Query) Filter(entries []children.Entry) ([]children.Entry, error) {
	res := make([]children.Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := q.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, e)
		}
	}
	return res, nil
}

// EntryEnv returns the variables of e.
func EntryEnv(e children.Entry) (Env, error) {
	segs := e.Path.Segments()
	path := make([]string, len(segs))
	for i, seg := range segs {
		path[i] = seg.SegmentString()
	}
	env := sampleEnv()
	env["key"] = e.Key
	env["path"] = path
	env["depth"] = len(segs)
	if n := len(segs); n > 0 {
		env["last"] = path[n-1]
		env["kind"] = segs[n-1].EntryKind().String()
	}
	v := e.Value.Unwrap()
	if v == nil {
		return env, nil
	}
	val, err := encode.ToAny(v)
	if err != nil {
		return nil, err
	}
	env["type"] = v.Type.String()
	env["value"] = val
	env["element"] = ir.IsElement(v)
	env["elementType"] = ir.ElementType(v)
	return env, nil
}

func sampleEnv() Env {
	return Env{
		"key":         "",
		"path":        []string{},
		"last":        "",
		"kind":        "",
		"depth":       0,
		"type":        ir.NullType.String(),
		"element":     false,
		"elementType": "",
	}
}
