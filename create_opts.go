package fragment

import (
	"log/slog"

	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/ir/kpath"
)

// Traverser walks one child value and appends its leaves to acc under
// prefix. children.Mapper is the standard implementation.
type Traverser interface {
	MapIntoWithKeyPrefix(acc *children.Acc, child *ir.Node, prefix *kpath.KPath, fn children.MapFunc) error
}

type CreateOption func(*Builder)

// WithLogger sets where diagnostics go. The default is slog.Default().
func WithLogger(log *slog.Logger) CreateOption {
	return func(b *Builder) { b.log = log }
}

// WithDevMode turns development diagnostics on or off. The default comes
// from the FRAG_DEV environment variable.
func WithDevMode(v bool) CreateOption {
	return func(b *Builder) { b.dev = v }
}

// WithLatch gives the builder its own numeric key warning latch in place
// of the process wide one.
func WithLatch(l *Latch) CreateOption {
	return func(b *Builder) { b.latch = l }
}

// WithTraverser replaces the child traversal.
func WithTraverser(t Traverser) CreateOption {
	return func(b *Builder) { b.traverse = t }
}
