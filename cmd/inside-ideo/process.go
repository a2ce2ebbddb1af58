package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/pageload"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	// Validate files before anything touches the network
	policy := insideideo.DefaultUploadPolicy()
	files, err := policy.ValidateFiles(c.Files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	req := insideideo.ProcessRequest{Files: files}

	if c.PromptFile != "" {
		data, err := os.ReadFile(c.PromptFile)
		if err != nil {
			return fmt.Errorf("read prompt file: %w", err)
		}
		req.Prompt = string(data)
	}
	if c.SchemaFile != "" {
		data, err := os.ReadFile(c.SchemaFile)
		if err != nil {
			return fmt.Errorf("read schema file: %w", err)
		}
		if !json.Valid(data) {
			err := insideideo.Errorf(insideideo.EINVALID, "schema file is not valid JSON: %s", c.SchemaFile)
			fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
			return err
		}
		req.Schema = data
	}

	name := c.Name
	if name == "" {
		base := filepath.Base(files[0].Name)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// Force mode: delete existing session first
	if c.Force {
		existing, err := deps.Sessions.FindSessions(deps.Ctx, insideideo.SessionFilter{Name: &name})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			if err := deps.Sessions.DeleteSession(deps.Ctx, existing[0].ID); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "Processing %d file(s)...\n", len(files))

	result, err := deps.Processor.ProcessPDFs(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: Set INSIDE_IDEO_API if the processing service runs elsewhere")
		return err
	}

	fields, err := insideideo.DecodeStructuredData(result.StructuredData)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}

	sources := make([]string, 0, len(files))
	for _, f := range files {
		sources = append(sources, f.Name)
	}
	session := &insideideo.Session{
		Name:       name,
		SourcePDFs: sources,
		Prompt:     req.Prompt,
		Timings:    result.Timings,
	}
	if err := deps.Sessions.CreateSession(deps.Ctx, session); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", insideideo.ErrorMessage(err))
		return err
	}
	if err := deps.Fields.CreateFields(deps.Ctx, session.ID, fields); err != nil {
		return err
	}
	if err := deps.Pages.CreatePages(deps.Ctx, session.ID, result.Pages); err != nil {
		return err
	}
	if err := deps.Images.CreateImages(deps.Ctx, session.ID, result.Images); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created session %q (%s)\n", name, session.ID)
	fmt.Fprintf(deps.Stdout, "  %d field(s), %d image(s), %d page(s)\n",
		len(fields), len(result.Images), len(result.Pages))

	if c.SkipPages {
		return nil
	}

	deps.Loader.Concurrency = c.Concurrency
	return fetchPages(deps, session.ID)
}

// fetchPages runs a load pass with progress output.
func fetchPages(deps *Dependencies, sessionID string) error {
	progress := func(event pageload.ProgressEvent) {
		switch event.Type {
		case pageload.ProgressStarted:
			if event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "  Fetching %d page image(s)\n", event.Total)
			}
		case pageload.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip page %d (%s): %v\n", event.Page, event.Filename, event.Error)
		}
	}

	result, err := deps.Loader.LoadAll(deps.Ctx, sessionID, progress)
	if err != nil {
		return fmt.Errorf("fetch pages: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "  Loaded %d page(s) (%s)", result.Loaded, formatBytes(result.Bytes))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, ", %d still pending (retry with 'inside-ideo pages --fetch')", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

// formatBytes formats bytes in human-readable form.
func formatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
