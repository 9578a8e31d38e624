package fragment

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

type recorder struct {
	mu      sync.Mutex
	records []slog.Record
}

func newRecorder() (*recorder, *slog.Logger) {
	r := &recorder{}
	return r, slog.New(r)
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec.Clone())
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

func (r *recorder) warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []string
	for _, rec := range r.records {
		if rec.Level == slog.LevelWarn {
			res = append(res, rec.Message)
		}
	}
	return res
}

func (r *recorder) count(substr string) int {
	n := 0
	for _, w := range r.warnings() {
		if strings.Contains(w, substr) {
			n++
		}
	}
	return n
}
