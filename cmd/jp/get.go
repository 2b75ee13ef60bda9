package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jsonptr "github.com/jsonptr-format/go-jsonptr"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a json pointer", cli.ErrUsage)
	}
	ptr, err := jsonptr.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	found := 0
	for _, arg := range args {
		doc, err := cfg.decodeArg(arg)
		if err != nil {
			return err
		}
		ref := ptr.Traverse(doc)
		if ref == nil {
			// absence is ordinary; report via the exit code only
			continue
		}
		found++
		switch ref.Kind {
		case jsonptr.ExistingRef:
			if err := cfg.writeValue(cc.Out, ref.Value); err != nil {
				return err
			}
		case jsonptr.NewUnderRef:
			fmt.Fprintf(cc.Out, "append position %d in array of length %d\n", ref.Index, len(ref.Parent))
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
