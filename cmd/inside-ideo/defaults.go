package main

import (
	"fmt"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the prompt command.
func (c *PromptCmd) Run(deps *Dependencies) error {
	prompt, err := deps.Processor.DefaultPrompt(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, prompt)
	return nil
}

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	schema, err := deps.Processor.DefaultSchema(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, string(schema))
	return nil
}
