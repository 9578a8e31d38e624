package fragment

import "sync/atomic"

// Latch fires at most once until reset. The zero value is ready to use and
// safe for concurrent use.
type Latch struct {
	fired atomic.Bool
}

// Fire reports whether this call is the one that fired the latch.
func (l *Latch) Fire() bool {
	return l.fired.CompareAndSwap(false, true)
}

func (l *Latch) Fired() bool {
	return l.fired.Load()
}

func (l *Latch) Reset() {
	l.fired.Store(false)
}

// numericKeyLatch guards the numeric key warning for the whole process.
var numericKeyLatch Latch

// ResetNumericWarning re-arms the process wide numeric key warning.
func ResetNumericWarning() {
	numericKeyLatch.Reset()
}
