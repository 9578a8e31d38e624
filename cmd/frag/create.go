package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/fragment"
	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/encode"
	"github.com/signadot/tony-format/fragment/ir"
	"github.com/signadot/tony-format/fragment/query"
)

func create(cfg *CreateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Create.Parse(cc, args)
	if err != nil {
		return err
	}
	c, err := cfg.creator(cc.Out)
	if err != nil {
		return err
	}
	return forEachDoc(args, c.doc)
}

// creator writes the fragment of each document it is given.
type creator struct {
	b     *fragment.Builder
	where *query.Query
	w     io.Writer
	opts  []encode.EncodeOption
	sep   bool
	n     int
}

func (cfg *CreateConfig) creator(w io.Writer) (*creator, error) {
	c := &creator{
		b:    cfg.builder(),
		w:    w,
		opts: cfg.encOpts(w),
		sep:  cfg.format().IsYAML(),
	}
	if cfg.Where != "" {
		q, err := query.Compile(cfg.Where)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		c.where = q
	}
	return c, nil
}

func (c *creator) doc(_ string, _ int, doc *ir.Node) error {
	res, err := c.b.Create(doc)
	if err != nil {
		return err
	}
	if c.sep && c.n > 0 {
		if _, err := io.WriteString(c.w, "---\n"); err != nil {
			return err
		}
	}
	c.n++
	if !res.Built() {
		return encode.Encode(res.Passthrough, c.w, c.opts...)
	}
	entries := []children.Entry(res.Fragment)
	if c.where != nil {
		entries, err = c.where.Filter(entries)
		if err != nil {
			return err
		}
	}
	return encode.EncodeEntries(entries, c.w, c.opts...)
}
