package main

import (
	"fmt"
	"text/tabwriter"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	if c.Load != "" {
		if err := deps.Loader.LoadOne(deps.Ctx, session.ID, c.Load); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Loaded %s\n", c.Load)
		return nil
	}

	if c.Fetch {
		deps.Loader.Concurrency = c.Concurrency
		return fetchPages(deps, session.ID)
	}

	pages, err := deps.Pages.FindPagesBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages in this session.")
		return nil
	}

	loaded := 0
	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAGE\tFILENAME\tSTATUS\tSIZE")
	for _, page := range pages {
		status := insideideo.PagePending
		size := "-"
		switch {
		case page.Loaded():
			status = insideideo.PageLoaded
			size = formatBytes(len(page.ImageData))
			loaded++
		case deps.Loader.Flags().Contains(page.Filename):
			status = insideideo.PageLoading
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", page.Page, page.Filename, status, size)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if loaded < len(pages) {
		fmt.Fprintf(deps.Stdout, "\n%d of %d loaded. Run with --fetch to load the rest.\n", loaded, len(pages))
	}
	return nil
}
