package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/load"
)

// readArg reads the file named arg, or stdin for "-".
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", arg, err)
	}
	return d, nil
}

// forEachDoc loads every document of every arg, stdin when args is empty.
func forEachDoc(args []string, fn func(arg string, i int, doc *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		docs, err := load.Load(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		for i, doc := range docs {
			if err := fn(arg, i, doc); err != nil {
				return fmt.Errorf("%s document %d: %w", arg, i, err)
			}
		}
	}
	return nil
}
