package main

import (
	"fmt"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	if c.All {
		if err := deps.Fields.ResetAll(deps.Ctx, session.ID); err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, "Reset all fields")
		return nil
	}

	if c.Field == "" {
		err := insideideo.Errorf(insideideo.EINVALID, "specify a field to reset, or use --all")
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	if err := deps.Fields.ResetField(deps.Ctx, session.ID, c.Field); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Reset %s\n", c.Field)
	return nil
}
