package main

import (
	"fmt"

	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	defs, err := deps.Definitions.FindDefinitions(deps.Ctx, reactdict.DefinitionFilter{SortBy: reactdict.SortByTerm})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	w := fs.NewWriter(c.Dir)
	var written int
	for _, def := range defs {
		if !def.IsComplete() {
			continue
		}
		if _, err := w.WriteDefinition(deps.Ctx, def); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
			return err
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d definitions to %s\n", written, c.Dir)
	return nil
}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	defs, err := fs.NewSeedFile(c.File).LoadDefinitions(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	n, err := deps.Importer.Import(deps.Ctx, defs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d of %d definitions\n", n, len(defs))
	return nil
}
