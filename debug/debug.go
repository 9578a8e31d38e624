// Package debug reads process wide diagnostic switches from the
// environment once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Dev      bool
	Traverse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dev = boolEnv("FRAG_DEV")
	d.Traverse = boolEnv("FRAG_DEBUG_TRAVERSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Dev reports whether development diagnostics are on.
func Dev() bool {
	return d.Dev
}

// Traverse reports whether each visited leaf is logged.
func Traverse() bool {
	return d.Traverse
}
