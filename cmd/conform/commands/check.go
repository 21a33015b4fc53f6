package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/conformdev/conform"
	"github.com/conformdev/conform/debug"
	"github.com/conformdev/conform/schemafile"
)

type checkConfig struct {
	*cli.Command
	Diff  bool `cli:"name=diff desc='show diff between input and normalized output'"`
	Patch bool `cli:"name=patch desc='emit JSON merge patch from input to normalized output'"`
	Quiet bool `cli:"name=quiet aliases=q desc='only report failures'"`
}

// CheckCommand returns the check subcommand.
func CheckCommand() *cli.Command {
	cfg := &checkConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check <schema.json> [doc.json...] - validate documents").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: check requires a schema file argument", cli.ErrUsage)
	}
	schemaFile := args[0]
	docFiles := args[1:]

	v, err := schemafile.Load(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	if len(docFiles) == 0 {
		return cfg.checkReader(cc, v, "-", cc.In)
	}
	failed := 0
	for _, docFile := range docFiles {
		f, err := os.Open(docFile)
		if err != nil {
			return err
		}
		cerr := cfg.checkReader(cc, v, docFile, f)
		f.Close()
		if cerr != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(docFiles))
	}
	return nil
}

func (cfg *checkConfig) checkReader(cc *cli.Context, v *conform.ObjectValidator, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		fmt.Fprintf(cc.Out, "%s %s: not valid JSON: %s\n", color.RedString("FAIL"), name, err)
		return err
	}
	if debug.CLI() {
		debug.Logf("checking %s: %v\n", name, doc)
	}

	norm, err := v.Validate(doc)
	if err != nil {
		fmt.Fprintf(cc.Out, "%s %s: %s\n", color.RedString("FAIL"), name, err)
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s %s\n", color.GreenString("PASS"), name)
	}

	if !cfg.Diff && !cfg.Patch {
		return nil
	}
	origJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	normJSON, err := json.MarshalIndent(norm, "", "  ")
	if err != nil {
		return err
	}
	if cfg.Diff {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(origJSON), string(normJSON), false)
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	}
	if cfg.Patch {
		patch, err := jsonpatch.CreateMergePatch(origJSON, normJSON)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, string(patch))
	}
	return nil
}
