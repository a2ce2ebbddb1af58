package main

import (
	"fmt"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	if !c.Force {
		err := insideideo.Errorf(insideideo.EINVALID, "deleting %q removes its edits and page images; re-run with --force to confirm", session.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	if err := deps.Sessions.DeleteSession(deps.Ctx, session.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted session %q\n", session.Name)
	return nil
}
