// Package http provides an HTTP-based client for the remote PDF
// processing service. It implements insideideo.Processor and
// insideideo.PageImageFetcher over the service's JSON API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	insideideo "github.com/niravbeni/inside-ideo"
)

// DefaultBaseURL is the processing service address used when none is
// configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout bounds a single HTTP request. Submissions run OCR and an
// AI call server-side, so this is deliberately generous.
const DefaultTimeout = 120 * time.Second

// Ensure Client implements the service interfaces at compile time.
var (
	_ insideideo.Processor        = (*Client)(nil)
	_ insideideo.PageImageFetcher = (*Client)(nil)
)

// Client talks to the processing service.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the service address. Defaults to DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new processing service client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// imagePayload mirrors the service's image entry shape.
type imagePayload struct {
	Filename    string `json:"filename"`
	Page        int    `json:"page"`
	Index       int    `json:"index"`
	Path        string `json:"path"`
	SourcePDF   string `json:"source_pdf"`
	OCRText     string `json:"ocr_text"`
	Description string `json:"image_description"`
	Data        string `json:"data"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// pagePayload mirrors the service's page entry shape.
type pagePayload struct {
	Filename  string `json:"filename"`
	Page      int    `json:"page"`
	Path      string `json:"path"`
	SourcePDF string `json:"source_pdf"`
	ImageData string `json:"image_data"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// processPayload mirrors the service's submission response.
type processPayload struct {
	StructuredData json.RawMessage     `json:"structured_data"`
	Images         []imagePayload      `json:"images"`
	Pages          []pagePayload       `json:"pages"`
	Timings        *insideideo.Timings `json:"timings"`
}

// ProcessPDFs uploads the request's files as a multipart form and decodes
// the combined extraction result. A non-2xx response returns an
// EUNAVAILABLE error with no partial result.
func (c *Client) ProcessPDFs(ctx context.Context, req insideideo.ProcessRequest) (*insideideo.ProcessResult, error) {
	if len(req.Files) == 0 {
		return nil, insideideo.Errorf(insideideo.EINVALID, "no files to process")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, file := range req.Files {
		if err := writeFilePart(writer, file); err != nil {
			return nil, err
		}
	}
	if req.Prompt != "" {
		if err := writer.WriteField("prompt", req.Prompt); err != nil {
			return nil, fmt.Errorf("write prompt field: %w", err)
		}
	}
	if req.Schema != nil {
		if err := writer.WriteField("schema", string(req.Schema)); err != nil {
			return nil, fmt.Errorf("write schema field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process-pdf", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, insideideo.Errorf(insideideo.EUNAVAILABLE, "processing service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, insideideo.Errorf(insideideo.EUNAVAILABLE, "processing failed: HTTP %d from %s", resp.StatusCode, c.baseURL)
	}

	var payload processPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode processing response: %w", err)
	}

	result := &insideideo.ProcessResult{
		StructuredData: payload.StructuredData,
		Timings:        payload.Timings,
	}
	for i, img := range payload.Images {
		index := img.Index
		if index == 0 {
			index = i
		}
		result.Images = append(result.Images, &insideideo.ExtractedImage{
			Filename:    img.Filename,
			Page:        img.Page,
			Index:       index,
			Path:        img.Path,
			SourcePDF:   img.SourcePDF,
			OCRText:     img.OCRText,
			Description: img.Description,
			ImageData:   img.Data,
			Width:       img.Width,
			Height:      img.Height,
		})
	}
	for _, page := range payload.Pages {
		result.Pages = append(result.Pages, &insideideo.PageRender{
			Filename:  page.Filename,
			Page:      page.Page,
			Path:      page.Path,
			SourcePDF: page.SourcePDF,
			ImageData: page.ImageData,
			Width:     page.Width,
			Height:    page.Height,
		})
	}

	return result, nil
}

// writeFilePart streams one local file into the multipart form.
func writeFilePart(writer *multipart.Writer, file insideideo.UploadFile) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile("files", file.Name)
	if err != nil {
		return fmt.Errorf("create form file for %s: %w", file.Name, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s into form: %w", file.Path, err)
	}
	return nil
}

// DefaultPrompt returns the service's default analysis prompt.
func (c *Client) DefaultPrompt(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/default-prompt")
	if err != nil {
		return "", err
	}

	var payload struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode default prompt: %w", err)
	}
	return payload.Prompt, nil
}

// DefaultSchema returns the service's default output schema as raw JSON.
func (c *Client) DefaultSchema(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "/default-schema")
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("default schema is not valid JSON")
	}
	return json.RawMessage(body), nil
}

// FetchPageImage retrieves a page render by its bare filename and returns
// it as a data URL. The server exposes page renders as static files under
// /pages.
func (c *Client) FetchPageImage(ctx context.Context, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pages/"+filename, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for page %s", resp.StatusCode, filename)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty payload for page %s", filename)
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" || !strings.HasPrefix(mediaType, "image/") {
		mediaType = "image/png"
	}
	return insideideo.EncodeDataURL(mediaType, data), nil
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, insideideo.Errorf(insideideo.EUNAVAILABLE, "processing service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, insideideo.Errorf(insideideo.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, path)
	}

	return io.ReadAll(resp.Body)
}
