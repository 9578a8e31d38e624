package fragment

import "github.com/signadot/tony-format/fragment/ir"

// Result is the outcome of Create: either a built Fragment or, when the
// argument was not something a fragment can be built from, that argument
// passed through unchanged.
type Result struct {
	Fragment    Fragment
	Passthrough *ir.Node

	built bool
}

func built(f Fragment) *Result {
	return &Result{Fragment: f, built: true}
}

func passthrough(node *ir.Node) *Result {
	return &Result{Passthrough: node}
}

// Built reports whether a fragment was built.
func (r *Result) Built() bool {
	return r.built
}

// Node returns the fragment as an object, or the passthrough value.
func (r *Result) Node() *ir.Node {
	if r.built {
		return r.Fragment.ToNode()
	}
	return r.Passthrough
}
