package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/mock"
	ideoslog "github.com/niravbeni/inside-ideo/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProcessor_ProcessPDFs(t *testing.T) {
	t.Parallel()

	t.Run("logs counts and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Processor{
			ProcessPDFsFn: func(_ context.Context, _ insideideo.ProcessRequest) (*insideideo.ProcessResult, error) {
				return &insideideo.ProcessResult{
					Images: []*insideideo.ExtractedImage{{Filename: "i.png"}},
					Pages:  []*insideideo.PageRender{{Filename: "p1.png"}, {Filename: "p2.png"}},
				}, nil
			},
		}

		processor := ideoslog.NewLoggingProcessor(inner, logger)
		result, err := processor.ProcessPDFs(context.Background(), insideideo.ProcessRequest{
			Files: []insideideo.UploadFile{{Name: "a.pdf"}},
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		output := buf.String()
		assert.Contains(t, output, "process pdfs")
		assert.Contains(t, output, "files=1")
		assert.Contains(t, output, "images=1")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Processor{
			ProcessPDFsFn: func(_ context.Context, _ insideideo.ProcessRequest) (*insideideo.ProcessResult, error) {
				return nil, errors.New("service down")
			},
		}

		processor := ideoslog.NewLoggingProcessor(inner, logger)
		_, err := processor.ProcessPDFs(context.Background(), insideideo.ProcessRequest{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "process pdfs")
		assert.Contains(t, output, "err=\"service down\"")
	})
}

func TestLoggingProcessor_DefaultPrompt(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Processor{
		DefaultPromptFn: func(_ context.Context) (string, error) {
			return "Analyze.", nil
		},
	}

	processor := ideoslog.NewLoggingProcessor(inner, logger)
	prompt, err := processor.DefaultPrompt(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Analyze.", prompt)
	output := buf.String()
	assert.Contains(t, output, "default prompt")
	assert.Contains(t, output, "bytes=8")
}

func TestLoggingPageFetcher_FetchPageImage(t *testing.T) {
	t.Parallel()

	t.Run("logs filename, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageImageFetcher{
			FetchPageImageFn: func(_ context.Context, _ string) (string, error) {
				return "data:image/png;base64,aGk=", nil
			},
		}

		fetcher := ideoslog.NewLoggingPageFetcher(inner, logger)
		dataURL, err := fetcher.FetchPageImage(context.Background(), "page_001_x.png")

		require.NoError(t, err)
		assert.NotEmpty(t, dataURL)
		output := buf.String()
		assert.Contains(t, output, "fetch page image")
		assert.Contains(t, output, "filename=page_001_x.png")
		assert.Contains(t, output, "bytes=26")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageImageFetcher{
			FetchPageImageFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("timeout")
			},
		}

		fetcher := ideoslog.NewLoggingPageFetcher(inner, logger)
		_, err := fetcher.FetchPageImage(context.Background(), "page_001_x.png")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=timeout")
	})
}
