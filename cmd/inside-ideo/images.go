package main

import (
	"fmt"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	images, err := deps.Images.FindImagesBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}

	total := len(images)
	if !c.All {
		images = insideideo.MeaningfulImages(images)
	}

	if len(images) == 0 {
		if total > 0 {
			fmt.Fprintf(deps.Stdout, "No meaningful images (%d filtered out, use --all to see them).\n", total)
		} else {
			fmt.Fprintln(deps.Stdout, "No images in this session.")
		}
		return nil
	}

	for _, img := range images {
		fmt.Fprintf(deps.Stdout, "page %d  %s", img.Page, img.Filename)
		if img.Width > 0 && img.Height > 0 {
			fmt.Fprintf(deps.Stdout, "  %dx%d", img.Width, img.Height)
		}
		fmt.Fprintln(deps.Stdout)
		if img.Description != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", img.Description)
		}
	}

	if !c.All && len(images) < total {
		fmt.Fprintf(deps.Stdout, "\n%d of %d images shown (%d filtered as decorative).\n",
			len(images), total, total-len(images))
	}
	return nil
}
