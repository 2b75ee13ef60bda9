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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jp").
		WithSynopsis("jp [opts] command [opts]").
		WithDescription("jp resolves RFC 6901 JSON Pointers against documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jpMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			StepsCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <pointer> [files]").
		WithDescription("get the document value a pointer refers to").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func StepsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StepsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("steps").
		WithAliases("s", "st").
		WithSynopsis("steps <pointer>").
		WithDescription("show the decoded reference tokens of a pointer").
		WithRun(func(cc *cli.Context, args []string) error {
			return steps(cfg, cc, args)
		})
	cfg.Steps = cmd
	return cmd
}
