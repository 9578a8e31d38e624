package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/fragment"
	"github.com/signadot/tony-format/fragment/children"
	"github.com/signadot/tony-format/fragment/debug"
	"github.com/signadot/tony-format/fragment/encode"
	"github.com/signadot/tony-format/fragment/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log each fragment entry'"`

	Text bool `cli:"name=text desc='output one key: value line per entry'"`
	J    bool `cli:"name=j aliases=json desc='output json'"`
	Y    bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	f := format.YAMLFormat
	switch {
	case cfg.Text:
		f = format.TextFormat
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CreateConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='only output entries matching an expr predicate'"`
	Dev   bool   `cli:"name=dev desc='enable development diagnostics'"`

	Create *cli.Command
}

func (cfg *CreateConfig) builder() *fragment.Builder {
	mapper := children.NewMapper(theLog).Trace(cfg.Verbose || debug.Traverse())
	return fragment.New(
		fragment.WithLogger(theLog),
		fragment.WithDevMode(cfg.Dev || debug.Dev()),
		fragment.WithTraverser(mapper))
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type CountConfig struct {
	*MainConfig

	Count *cli.Command
}
