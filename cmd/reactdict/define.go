package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/fs"
)

// Run executes the define command.
func (c *DefineCmd) Run(deps *Dependencies) error {
	def, err := deps.Lookup.Lookup(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		if reactdict.ErrorCode(err) == reactdict.ENOTIMPLEMENTED {
			fmt.Fprintln(deps.Stderr, "Hint: Set GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey")
			c.printKnown(deps)
		}
		return err
	}

	if err := deps.Searches.RecordSearch(deps.Ctx, c.Term); err != nil {
		deps.Logger.Warn("failed to record search", "term", c.Term, "error", err)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	}

	out, err := fs.FormatDefinition(def)
	if err != nil {
		return err
	}
	fmt.Fprint(deps.Stdout, out)
	return nil
}

// printKnown lists known terms close to the requested one.
func (c *DefineCmd) printKnown(deps *Dependencies) {
	if deps.Terms == nil || deps.Matcher == nil {
		return
	}
	terms, err := deps.Terms.Terms(deps.Ctx)
	if err != nil {
		return
	}
	matches := deps.Matcher.Match(c.Term, terms, reactdict.DefaultMatchLimit)
	if len(matches) == 0 {
		return
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Term
	}
	fmt.Fprintf(deps.Stderr, "Known terms: %s\n", strings.Join(names, ", "))
}

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	def, err := deps.Suggestions.Suggest(deps.Ctx, c.Term, c.Details)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Suggested %q for review (id: %s)\n", def.Term, def.ID)
	return nil
}
