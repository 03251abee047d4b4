package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/spacescope/pkg/domain"
)

// provider names stored as NewsItem.Source
const (
	SourceWebb   = "webb_telescope"
	SourceImages = "nasa_images"
	SourceAPOD   = "apod"
	SourceDONKI  = "donki"
)

// default provider endpoints
const (
	DefaultWebbEndpoint   = "https://webbtelescope.org/api/v1/news_releases"
	DefaultImagesEndpoint = "https://images-api.nasa.gov/search"
	DefaultNASAEndpoint   = "https://api.nasa.gov"
)

type httpSource struct {
	client *http.Client
}

func newHTTPSource(timeout time.Duration) httpSource {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return httpSource{client: &http.Client{Timeout: timeout}}
}

func (h httpSource) getJSON(ctx context.Context, endpoint string, params url.Values, v any) error {
	u := endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "spacescope/1.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// flexID accepts both string and numeric ids
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", string(b))
	}
	*f = flexID(n.String())
	return nil
}

// WebbProvider reads Webb telescope news releases
type WebbProvider struct {
	httpSource
	Endpoint string
	SiteURL  string // prefix of relative release urls
	PageSize int
}

// NewWebbProvider makes a provider with default endpoints
func NewWebbProvider(pageSize int, timeout time.Duration) *WebbProvider {
	return &WebbProvider{httpSource: newHTTPSource(timeout), Endpoint: DefaultWebbEndpoint,
		SiteURL: "https://webbtelescope.org", PageSize: pageSize}
}

// Name of the provider
func (p *WebbProvider) Name() string { return SourceWebb }

// Fetch returns the first page of news releases
func (p *WebbProvider) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("page_size", strconv.Itoa(p.PageSize))

	var resp struct {
		Results []struct {
			ID          flexID `json:"id"`
			Title       string `json:"title"`
			Abstract    string `json:"abstract"`
			URL         string `json:"url"`
			Thumbnail   string `json:"thumbnail"`
			ReleaseDate string `json:"release_date"`
		} `json:"results"`
	}
	if err := p.getJSON(ctx, p.Endpoint, params, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		link := r.URL
		if strings.HasPrefix(link, "/") {
			link = p.SiteURL + link
		}
		items = append(items, domain.NewsItem{
			Source:      SourceWebb,
			ExternalID:  string(r.ID),
			Title:       r.Title,
			Summary:     summarize(r.Abstract),
			Content:     r.Abstract,
			URL:         link,
			ImageURL:    r.Thumbnail,
			Category:    Categorize(r.Title, r.Abstract),
			PublishedAt: parseDate(r.ReleaseDate),
		})
	}
	return items, nil
}

// ImagesProvider searches the NASA image library for recent images
type ImagesProvider struct {
	httpSource
	Endpoint string
	Query    string
	Limit    int
	now      func() time.Time
}

// NewImagesProvider makes a provider with the default endpoint
func NewImagesProvider(query string, limit int, timeout time.Duration) *ImagesProvider {
	if query == "" {
		query = "space telescope discovery"
	}
	return &ImagesProvider{httpSource: newHTTPSource(timeout), Endpoint: DefaultImagesEndpoint, Query: query, Limit: limit, now: time.Now}
}

// Name of the provider
func (p *ImagesProvider) Name() string { return SourceImages }

// Fetch returns images created since the start of last year
func (p *ImagesProvider) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	params := url.Values{}
	params.Set("q", p.Query)
	params.Set("media_type", "image")
	params.Set("year_start", strconv.Itoa(p.now().Year()-1))

	var resp struct {
		Collection struct {
			Items []struct {
				Data []struct {
					NASAID      string   `json:"nasa_id"`
					Title       string   `json:"title"`
					Description string   `json:"description"`
					Keywords    []string `json:"keywords"`
					DateCreated string   `json:"date_created"`
				} `json:"data"`
				Links []struct {
					Href string `json:"href"`
				} `json:"links"`
			} `json:"items"`
		} `json:"collection"`
	}
	if err := p.getJSON(ctx, p.Endpoint, params, &resp); err != nil {
		return nil, err
	}

	raw := resp.Collection.Items
	if p.Limit > 0 && len(raw) > p.Limit {
		raw = raw[:p.Limit]
	}
	items := make([]domain.NewsItem, 0, len(raw))
	for _, it := range raw {
		if len(it.Data) == 0 {
			continue
		}
		d := it.Data[0]
		item := domain.NewsItem{
			Source:      SourceImages,
			ExternalID:  d.NASAID,
			Title:       d.Title,
			Summary:     summarize(d.Description),
			Content:     d.Description,
			URL:         "https://images.nasa.gov/details/" + url.PathEscape(d.NASAID),
			Category:    Categorize(d.Title, d.Description, d.Keywords...),
			PublishedAt: parseDate(d.DateCreated),
		}
		if len(it.Links) > 0 {
			item.ImageURL = it.Links[0].Href
		}
		items = append(items, item)
	}
	return items, nil
}

// APODProvider reads the astronomy picture of the day for recent days
type APODProvider struct {
	httpSource
	Endpoint string
	APIKey   string
	Days     int
	now      func() time.Time
}

// NewAPODProvider makes a provider for the last days
func NewAPODProvider(apiKey string, days int, timeout time.Duration) *APODProvider {
	return &APODProvider{httpSource: newHTTPSource(timeout), Endpoint: DefaultNASAEndpoint, APIKey: apiKey, Days: days, now: time.Now}
}

// Name of the provider
func (p *APODProvider) Name() string { return SourceAPOD }

// Fetch returns one item per day of the window
func (p *APODProvider) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	end := p.now()
	params := url.Values{}
	params.Set("api_key", p.APIKey)
	params.Set("start_date", end.AddDate(0, 0, -p.Days).Format("2006-01-02"))
	params.Set("end_date", end.Format("2006-01-02"))

	var resp []struct {
		Date        string `json:"date"`
		Title       string `json:"title"`
		Explanation string `json:"explanation"`
		URL         string `json:"url"`
		HDURL       string `json:"hdurl"`
	}
	if err := p.getJSON(ctx, strings.TrimSuffix(p.Endpoint, "/")+"/planetary/apod", params, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(resp))
	for _, r := range resp {
		image := r.HDURL
		if image == "" {
			image = r.URL
		}
		items = append(items, domain.NewsItem{
			Source:      SourceAPOD,
			ExternalID:  r.Date,
			Title:       r.Title,
			Summary:     summarize(r.Explanation),
			Content:     r.Explanation,
			URL:         r.URL,
			ImageURL:    image,
			Category:    Categorize(r.Title, r.Explanation),
			PublishedAt: parseDate(r.Date),
		})
	}
	return items, nil
}

// DONKIProvider reads space weather notifications
type DONKIProvider struct {
	httpSource
	Endpoint string
	APIKey   string
	Days     int
	now      func() time.Time
}

// NewDONKIProvider makes a provider for the last days
func NewDONKIProvider(apiKey string, days int, timeout time.Duration) *DONKIProvider {
	return &DONKIProvider{httpSource: newHTTPSource(timeout), Endpoint: DefaultNASAEndpoint, APIKey: apiKey, Days: days, now: time.Now}
}

// Name of the provider
func (p *DONKIProvider) Name() string { return SourceDONKI }

// Fetch returns notifications issued in the window
func (p *DONKIProvider) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	end := p.now()
	params := url.Values{}
	params.Set("api_key", p.APIKey)
	params.Set("startDate", end.AddDate(0, 0, -p.Days).Format("2006-01-02"))
	params.Set("endDate", end.Format("2006-01-02"))

	var resp []struct {
		MessageID        string `json:"messageID"`
		MessageType      string `json:"messageType"`
		MessageBody      string `json:"messageBody"`
		MessageURL       string `json:"messageURL"`
		MessageIssueTime string `json:"messageIssueTime"`
	}
	if err := p.getJSON(ctx, strings.TrimSuffix(p.Endpoint, "/")+"/DONKI/notifications", params, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(resp))
	for _, r := range resp {
		items = append(items, domain.NewsItem{
			Source:      SourceDONKI,
			ExternalID:  r.MessageID,
			Title:       "Space Weather: " + r.MessageType,
			Summary:     summarize(r.MessageBody),
			Content:     r.MessageBody,
			URL:         r.MessageURL,
			Category:    CategorySpaceWeather,
			PublishedAt: parseDate(r.MessageIssueTime),
		})
	}
	return items, nil
}
