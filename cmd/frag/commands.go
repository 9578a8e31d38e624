package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "frag").
		WithSynopsis("frag [opts] command [opts]").
		WithDescription("frag flattens keyed child mappings into keyed fragments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fragMain(cfg, cc, args)
		}).
		WithSubs(
			CreateCommand(cfg),
			KeysCommand(cfg),
			CountCommand(cfg))
}

func CreateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CreateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Create, "create").
		WithAliases("c").
		WithSynopsis("create [-where expr] [-dev] [files]").
		WithDescription("build the fragment of each document, reading stdin when no file or - is given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return create(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [files]").
		WithDescription("list the composite keys of each document's fragment").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithAliases("n").
		WithSynopsis("count [files]").
		WithDescription("count the entries of each document's fragment").
		WithRun(func(cc *cli.Context, args []string) error {
			return countEntries(cfg, cc, args)
		})
}
