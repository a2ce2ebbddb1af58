package main

import (
	"context"
	"io"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/pageload"
	"github.com/niravbeni/inside-ideo/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Sessions  insideideo.SessionService
	Fields    insideideo.FieldService
	Pages     insideideo.PageService
	Images    insideideo.ImageService
	Processor insideideo.Processor
	Loader    *pageload.Loader
	Clipboard insideideo.Clipboard
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging on stderr"`

	Process ProcessCmd `cmd:"" help:"Submit PDF files for processing and store the result as a session"`
	List    ListCmd    `cmd:"" help:"List all stored sessions"`
	Show    ShowCmd    `cmd:"" help:"Show a session's structured data"`
	Set     SetCmd     `cmd:"" help:"Edit a field of a session"`
	Reset   ResetCmd   `cmd:"" help:"Restore edited fields to their original values"`
	Copy    CopyCmd    `cmd:"" help:"Copy a field's value to the clipboard"`
	Pages   PagesCmd   `cmd:"" help:"Show or fetch a session's page images"`
	Images  ImagesCmd  `cmd:"" help:"List a session's extracted images"`
	Export  ExportCmd  `cmd:"" help:"Export a session to a directory"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a session"`
	Prompt  PromptCmd  `cmd:"" help:"Print the server's default analysis prompt"`
	Schema  SchemaCmd  `cmd:"" help:"Print the server's default output schema"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Files       []string `arg:"" help:"PDF files to submit (max 5)"`
	Name        string   `short:"n" help:"Session name (defaults to the first file's name)"`
	PromptFile  string   `short:"p" type:"existingfile" help:"File with a custom analysis prompt"`
	SchemaFile  string   `short:"s" type:"existingfile" help:"File with a custom output schema (JSON)"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent page fetch limit"`
	SkipPages   bool     `help:"Skip fetching page images after processing"`
	Force       bool     `short:"f" help:"Delete an existing session with the same name first"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name     string `arg:"" help:"Session name"`
	Field    string `help:"Show only this field"`
	Original bool   `help:"Show original values instead of edited ones"`
	JSON     bool   `help:"Print structured data as JSON"`
}

// SetCmd is the "set" subcommand.
type SetCmd struct {
	Name  string `arg:"" help:"Session name"`
	Field string `arg:"" help:"Field name"`
	Value string `arg:"" optional:"" help:"New value (list fields: one item per line)"`
	Stdin bool   `help:"Read the value from stdin"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Name  string `arg:"" help:"Session name"`
	Field string `arg:"" optional:"" help:"Field to reset"`
	All   bool   `help:"Reset every field"`
}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Name  string `arg:"" help:"Session name"`
	Field string `arg:"" help:"Field to copy"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Name        string `arg:"" help:"Session name"`
	Fetch       bool   `help:"Fetch all pending page images"`
	Load        string `help:"Fetch a single pending page by filename"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent page fetch limit"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	Name string `arg:"" help:"Session name"`
	All  bool   `help:"Include images rejected by the relevance filter"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Session name"`
	Dir  string `arg:"" help:"Destination directory"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Session name"`
	Force bool   `help:"Confirm deletion"`
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct{}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct{}
