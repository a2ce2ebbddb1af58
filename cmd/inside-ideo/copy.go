package main

import (
	"fmt"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	fields, err := deps.Fields.FindFieldsBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}
	field := findField(fields, c.Field)
	if field == nil {
		err := insideideo.Errorf(insideideo.ENOTFOUND, "field %q not found", c.Field)
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	text := field.Render()
	if err := deps.Clipboard.WriteText(text); err != nil {
		return fmt.Errorf("copy %s: %w", c.Field, err)
	}

	fmt.Fprintf(deps.Stdout, "Copied %s (%d chars)\n", c.Field, len(text))
	return nil
}
