package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/tidwall/pretty"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='read documents as json (default)'"`
	Y     bool `cli:"name=y aliases=yaml desc='read documents as yaml'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// decodeArg reads a document from a file path or stdin ("-") into an
// any tree.
func (cfg *MainConfig) decodeArg(arg string) (any, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	var doc any
	if cfg.Y {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

// writeValue prints v as pretty JSON, colored when the output is a
// terminal or -color is set.
func (cfg *MainConfig) writeValue(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	data = pretty.Pretty(data)
	if cfg.colorOut(w) {
		data = pretty.Color(data, nil)
	}
	_, err = w.Write(data)
	return err
}

func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type StepsConfig struct {
	*MainConfig

	Steps *cli.Command
}
