// Package download moves segment audio between HTTP object storage and
// the local filesystem: GET for segment sources, PUT for finished
// episodes.
package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Options configures the transfer behavior
type Options struct {
	MaxSize      int64         // Maximum file size in bytes (0 = no limit)
	Timeout      time.Duration // Per-request timeout
	ProgressFunc ProgressFunc  // Optional progress callback
	UserAgent    string        // User agent string
}

// ProgressFunc is called during download to report progress
type ProgressFunc func(downloaded, total int64)

// DefaultOptions returns default transfer options
func DefaultOptions() Options {
	return Options{
		MaxSize:   500 * 1024 * 1024, // 500MB default max
		Timeout:   5 * time.Minute,
		UserAgent: "EpisodeAPI/1.0",
	}
}

// Client handles segment downloads and episode uploads
type Client struct {
	client  *http.Client
	options Options
}

// NewClient creates a new transfer client with the given options
func NewClient(options Options) *Client {
	return &Client{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // Don't compress audio
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// DownloadToFile downloads a URL to the given destination path. A non-2xx
// response surfaces the remote body in the returned error.
func (c *Client) DownloadToFile(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept", "audio/*,*/*")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, fmt.Errorf("GET returned %d: %s", resp.StatusCode, string(body))
	}

	if c.options.MaxSize > 0 && resp.ContentLength > c.options.MaxSize {
		return 0, fmt.Errorf("file too large: %d bytes (max %d)", resp.ContentLength, c.options.MaxSize)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := c.copyBody(resp.Body, out, resp.ContentLength)
	closeErr := out.Close()

	if err != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("failed to write download: %w", err)
	}
	if closeErr != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("failed to close download: %w", closeErr)
	}

	log.Printf("[DEBUG] Downloaded %d bytes to %s", written, destPath)
	return written, nil
}

// Upload PUTs a local file to the given URL with the audio content type.
// A non-2xx response surfaces the remote body in the returned error.
func (c *Client) Upload(ctx context.Context, srcPath, url string) error {
	file, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, file)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "audio/mpeg")
	req.Header.Set("User-Agent", c.options.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("PUT failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("PUT returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// copyBody copies the response body with optional progress tracking and
// size limiting
func (c *Client) copyBody(src io.Reader, dst io.Writer, totalSize int64) (int64, error) {
	reader := src
	if c.options.ProgressFunc != nil && totalSize > 0 {
		reader = &progressReader{
			reader:   src,
			total:    totalSize,
			callback: c.options.ProgressFunc,
		}
	}

	if c.options.MaxSize > 0 {
		reader = &io.LimitedReader{R: reader, N: c.options.MaxSize}
	}

	return io.Copy(dst, reader)
}

// progressReader wraps a reader to report progress
type progressReader struct {
	reader     io.Reader
	total      int64
	downloaded int64
	callback   ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.downloaded += int64(n)
		if pr.callback != nil {
			pr.callback(pr.downloaded, pr.total)
		}
	}
	return n, err
}
