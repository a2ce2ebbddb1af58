// Package pageload provides lazy loading of page render images. Page
// payloads are large, so they are not returned with the processing
// response; this package fetches them afterward through a bounded worker
// pool and persists them as they arrive.
package pageload

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	insideideo "github.com/niravbeni/inside-ideo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps in-flight page fetches. Three concurrent
// requests keeps the processing service responsive while a session's
// pages stream in.
const DefaultConcurrency = 3

// Loader fetches pending page images for a session.
type Loader struct {
	Pages       insideideo.PageService
	Fetcher     insideideo.PageImageFetcher
	Limiter     *Limiter
	Concurrency int
	RetryDelays []time.Duration

	flags FlagSet
}

// Result holds the outcome of a load pass.
type Result struct {
	Loaded  int
	Failed  int
	Skipped int
	Bytes   int
}

// ProgressEvent reports progress during a load pass.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Filename  string
	Page      int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting load progress.
type ProgressFunc func(event ProgressEvent)

// loadResult holds the outcome of fetching a single page.
type loadResult struct {
	filename string
	page     int
	dataURL  string
	hash     string
	err      error
}

// Flags exposes the in-flight set for status display. The set is
// transient per-process state, not persisted.
func (l *Loader) Flags() *FlagSet {
	return &l.flags
}

// LoadAll fetches every pending page of a session through the worker
// pool. Each page is marked in-flight before its fetch is issued and
// cleared when the fetch completes, regardless of outcome. A failed fetch
// leaves its page pending; it stays eligible for the next pass and never
// affects other pages. The progress callback, if provided, receives
// events as pages complete.
func (l *Loader) LoadAll(ctx context.Context, sessionID string, progress ProgressFunc) (*Result, error) {
	pages, err := l.Pages.FindPagesBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("find pages: %w", err)
	}

	var pending []*insideideo.PageRender
	for _, page := range pages {
		if page.Pending() {
			pending = append(pending, page)
		}
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}
	if total == 0 {
		return &Result{}, nil
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan loadResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, page := range pending {
			page := page
			g.Go(func() error {
				resultCh <- l.loadPage(gctx, page)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect and persist results as they arrive. Each result updates
	// only its own page row, keyed by filename.
	var result Result
	completed := 0
	for res := range resultCh {
		completed++

		if res.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Filename:  res.filename,
					Page:      res.page,
					Error:     res.err,
				})
			}
			continue
		}

		if err := l.Pages.SavePageImage(ctx, sessionID, res.filename, res.dataURL, res.hash); err != nil {
			// A page loaded by a competing pass stays loaded; anything
			// else counts as a failure and the page stays pending.
			if insideideo.ErrorCode(err) == insideideo.EINVALID {
				result.Skipped++
			} else {
				result.Failed++
			}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Filename:  res.filename,
					Page:      res.page,
					Error:     err,
				})
			}
			continue
		}

		result.Loaded++
		result.Bytes += len(res.dataURL)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Filename:  res.filename,
				Page:      res.page,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return &result, nil
}

// LoadOne fetches a single still-pending page immediately, outside the
// pool cadence. Loading an already-loaded page is a no-op; an unknown
// filename returns ENOTFOUND.
func (l *Loader) LoadOne(ctx context.Context, sessionID, filename string) error {
	pages, err := l.Pages.FindPagesBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("find pages: %w", err)
	}

	var target *insideideo.PageRender
	for _, page := range pages {
		if page.Filename == filename {
			target = page
			break
		}
	}
	if target == nil {
		return insideideo.Errorf(insideideo.ENOTFOUND, "page %q not found", filename)
	}
	if target.Loaded() {
		return nil
	}

	res := l.loadPage(ctx, target)
	if res.err != nil {
		return res.err
	}
	return l.Pages.SavePageImage(ctx, sessionID, res.filename, res.dataURL, res.hash)
}

// loadPage fetches one page with retry. The in-flight flag is set before
// the first fetch attempt and cleared when the fetch resolves either way.
func (l *Loader) loadPage(ctx context.Context, page *insideideo.PageRender) loadResult {
	result := loadResult{
		filename: page.Filename,
		page:     page.Page,
	}

	if !l.flags.Set(page.Filename) {
		result.err = insideideo.Errorf(insideideo.EINVALID, "page %q is already loading", page.Filename)
		return result
	}
	defer l.flags.Clear(page.Filename)

	if l.Limiter != nil {
		if err := l.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	delays := l.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	dataURL, err := FetchWithRetryDelays(ctx, page.Filename, l.Fetcher.FetchPageImage, delays)
	if err != nil {
		result.err = err
		return result
	}

	result.dataURL = dataURL
	result.hash = contentHash(dataURL)
	return result
}

// contentHash computes a hash of the payload using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
