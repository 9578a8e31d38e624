package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/fragment"
	"github.com/signadot/tony-format/fragment/ir"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	b := fragment.New(fragment.WithLogger(theLog))
	return forEachDoc(args, func(_ string, _ int, doc *ir.Node) error {
		return writeKeys(b, cc.Out, doc)
	})
}

func writeKeys(b *fragment.Builder, w io.Writer, doc *ir.Node) error {
	res, err := b.Create(doc)
	if err != nil {
		return err
	}
	for _, k := range res.Fragment.Keys() {
		if _, err := fmt.Fprintln(w, k); err != nil {
			return err
		}
	}
	return nil
}

func countEntries(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		return err
	}
	b := fragment.New(fragment.WithLogger(theLog))
	return forEachDoc(args, func(_ string, _ int, doc *ir.Node) error {
		return writeCount(b, cc.Out, doc)
	})
}

// writeCount writes the number of entries of doc's fragment, 0 when doc
// is passed through.
func writeCount(b *fragment.Builder, w io.Writer, doc *ir.Node) error {
	res, err := b.Create(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res.Fragment.Len())
	return err
}
