package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	jsonptr "github.com/jsonptr-format/go-jsonptr"
)

func steps(cfg *StepsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Steps.Parse(cc, args)
	if err != nil {
		cfg.Steps.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: steps requires one argument, a json pointer", cli.ErrUsage)
	}
	ptr, err := jsonptr.Parse(args[0])
	if err != nil {
		return err
	}
	if cfg.Color {
		color.NoColor = false
	}
	kind := color.New(color.FgCyan).SprintFunc()
	for _, s := range ptr.Steps() {
		switch s.Type {
		case jsonptr.NameStep:
			fmt.Fprintf(cc.Out, "%s %s\n", kind(s.Type.String()), strconv.Quote(s.Name))
		case jsonptr.IndexStep:
			fmt.Fprintf(cc.Out, "%s %d\n", kind(s.Type.String()), s.Index)
		case jsonptr.NewElementStep:
			fmt.Fprintf(cc.Out, "%s\n", kind(s.Type.String()))
		}
	}
	return nil
}
