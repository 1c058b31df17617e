package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/reactdict"
)

// Run executes the review command.
func (c *ReviewCmd) Run(deps *Dependencies) error {
	filter, err := reactdict.ParseReviewFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	defs, err := deps.Moderation.Review(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	if len(defs) == 0 {
		fmt.Fprintln(deps.Stdout, "No terms found.")
		return nil
	}

	for _, def := range defs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", def.ID, def.Term, status(def), def.CreatedAt.Format(time.DateOnly))
		if def.Details != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", def.Details)
		}
	}
	return nil
}

func status(def *reactdict.Definition) string {
	switch {
	case def.Suggested:
		return "suggested"
	case def.Moderated:
		return "approved"
	default:
		return "unreviewed"
	}
}

// Run executes the approve command.
func (c *ApproveCmd) Run(deps *Dependencies) error {
	def, err := deps.Moderation.Approve(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Approved %q\n", def.Term)
	return nil
}

// Run executes the reject command.
func (c *RejectCmd) Run(deps *Dependencies) error {
	def, err := deps.Moderation.Reject(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Rejected %q\n", def.Term)
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return reactdict.Errorf(reactdict.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Moderation.Delete(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", c.ID)
	return nil
}
