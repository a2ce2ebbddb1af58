package main

import (
	"fmt"
	"io"
	"os"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the set command.
func (c *SetCmd) Run(deps *Dependencies) error {
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

	value := c.Value
	if c.Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		value = string(data)
	}

	if field.Kind == insideideo.KindList {
		err = deps.Fields.SetList(deps.Ctx, session.ID, c.Field, value)
	} else {
		err = deps.Fields.SetText(deps.Ctx, session.ID, c.Field, value)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %s\n", c.Field)
	return nil
}
