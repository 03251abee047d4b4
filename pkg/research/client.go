// Package research queries an HTML web search endpoint for title and url pairs.
// Failures are tolerated: every outcome other than a parsed result page yields an empty list.
package research

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/net/publicsuffix"

	"github.com/umputun/spacescope/pkg/domain"
)

// DefaultEndpoint is the DuckDuckGo HTML search page
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

var (
	errRateLimited = errors.New("search rate limited")
	errGiveUp      = errors.New("search failed")
)

// Config holds search client settings
type Config struct {
	Endpoint string
	Retries  int           // attempts per query, rate limited responses consume one each
	Backoff  time.Duration // sleep between rate limited attempts
	Timeout  time.Duration
}

// Client performs web searches
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient makes a search client with a session cookie jar
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Retries < 1 {
		cfg.Retries = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Printf("[WARN] can't make cookie jar, continue without: %v", err)
		jar = nil
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout, Jar: jar}}
}

// Search returns up to limit results for query, in page order. It never fails.
func (c *Client) Search(ctx context.Context, query string, limit int) []domain.SearchResult {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return []domain.SearchResult{}
	}

	var results []domain.SearchResult
	err := repeater.NewFixed(c.cfg.Retries, c.cfg.Backoff).Do(ctx, func() error {
		res, err := c.fetch(ctx, query, limit)
		if err != nil {
			if errors.Is(err, errRateLimited) {
				return err
			}
			return fmt.Errorf("%w: %w", errGiveUp, err)
		}
		results = res
		return nil
	}, errGiveUp)
	if err != nil {
		log.Printf("[WARN] search %q: %v", query, err)
		return []domain.SearchResult{}
	}
	return results
}

func (c *Client) fetch(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusAccepted:
		return nil, errRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	results := make([]domain.SearchResult, 0, limit)
	doc.Find("a.result__a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		title := strings.TrimSpace(s.Text())
		if !ok || href == "" || title == "" {
			return true
		}
		results = append(results, domain.SearchResult{Title: title, URL: unwrapRedirect(href)})
		return len(results) < limit
	})
	return results, nil
}

// unwrapRedirect returns the target of a "uddg=" redirect link, other links are returned as is
func unwrapRedirect(href string) string {
	idx := strings.LastIndex(href, "uddg=")
	if idx < 0 {
		return href
	}
	target := href[idx+len("uddg="):]
	if amp := strings.IndexByte(target, '&'); amp >= 0 {
		target = target[:amp]
	}
	unescaped, err := url.QueryUnescape(target)
	if err != nil {
		return target
	}
	return unescaped
}
