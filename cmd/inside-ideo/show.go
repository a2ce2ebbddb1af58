package main

import (
	"fmt"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	fields, err := deps.Fields.FindFieldsBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}

	if c.Field != "" {
		field := findField(fields, c.Field)
		if field == nil {
			err := insideideo.Errorf(insideideo.ENOTFOUND, "field %q not found", c.Field)
			fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
			return err
		}
		fields = []*insideideo.Field{field}
	}

	if c.Original {
		for _, field := range fields {
			field.Edited = field.Original
		}
	}

	if c.JSON {
		data, err := insideideo.EncodeStructuredData(fields)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	for i, field := range fields {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		marker := ""
		if field.Dirty() {
			marker = " (edited)"
		}
		fmt.Fprintf(deps.Stdout, "%s%s:\n", field.Name, marker)
		if field.Kind == insideideo.KindList {
			for _, item := range field.Edited.List {
				fmt.Fprintf(deps.Stdout, "  - %s\n", item)
			}
		} else {
			fmt.Fprintf(deps.Stdout, "  %s\n", field.Edited.Text)
		}
	}

	if session.Timings != nil && c.Field == "" {
		fmt.Fprintf(deps.Stdout, "\nprocessed in %.1fs (extraction %.1fs, ocr %.1fs, analysis %.1fs)\n",
			session.Timings.Total, session.Timings.Extraction, session.Timings.OCR, session.Timings.Analysis)
	}

	return nil
}
