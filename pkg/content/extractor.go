// Package content turns provider html into plain text: article extraction from pages and
// stripping of markup from feed summaries.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// Article is the readable part of a web page
type Article struct {
	Title string
	Text  string
	Image string
}

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	client *http.Client
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{client: &http.Client{Timeout: timeout}}
}

// Extract retrieves the page at urlStr and returns its main text
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (Article, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return Article{}, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return Article{}, fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return Article{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Spacescope/1.0)")

	resp, err := e.client.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}
	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return Article{}, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return Article{}, fmt.Errorf("no text content extracted from %s", urlStr)
	}

	return Article{
		Title: result.Metadata.Title,
		Text:  strings.TrimSpace(result.ContentText),
		Image: result.Metadata.Image,
	}, nil
}
