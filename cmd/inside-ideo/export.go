package main

import (
	"fmt"
	"path/filepath"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	session, err := findSession(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	fields, err := deps.Fields.FindFieldsBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}
	pages, err := deps.Pages.FindPagesBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}
	images, err := deps.Images.FindImagesBySession(deps.Ctx, session.ID)
	if err != nil {
		return err
	}

	baseDir, name := filepath.Split(filepath.Clean(c.Dir))
	if baseDir == "" {
		baseDir = "."
	}
	store := fs.NewExportStore(baseDir, name)

	if err := c.export(store, session, fields, pages, images); err != nil {
		_ = store.Abort()
		return err
	}
	if err := store.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Exported session %q to %s\n", session.Name, c.Dir)
	return nil
}

func (c *ExportCmd) export(store *fs.ExportStore, session *insideideo.Session,
	fields []*insideideo.Field, pages []*insideideo.PageRender, images []*insideideo.ExtractedImage) error {
	if err := store.WriteFields(session, fields); err != nil {
		return err
	}
	if err := store.WriteFieldsJSON(fields); err != nil {
		return err
	}
	for _, page := range pages {
		if err := store.WritePage(page); err != nil {
			return err
		}
	}
	for _, img := range insideideo.MeaningfulImages(images) {
		if err := store.WriteImage(img); err != nil {
			return err
		}
	}
	return nil
}
