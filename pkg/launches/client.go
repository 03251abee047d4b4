// Package launches reads upcoming launches from the Launch Library 2 api.
package launches

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

// DefaultEndpoint is the public Launch Library 2 base url
const DefaultEndpoint = "https://ll.thespacedevs.com/2.2.0"

// Client is a Launch Library 2 client
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient makes a client for endpoint, empty endpoint selects the public api
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{endpoint: strings.TrimSuffix(endpoint, "/"), http: &http.Client{Timeout: timeout}}
}

type named struct {
	Name string `json:"name"`
}

type launchJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      named  `json:"status"`
	WindowStart string `json:"window_start"`
	Mission     *struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Orbit       named  `json:"orbit"`
	} `json:"mission"`
	Provider named `json:"launch_service_provider"`
	Pad      struct {
		Name     string `json:"name"`
		Location named  `json:"location"`
	} `json:"pad"`
	Image string `json:"image"`
}

func (l launchJSON) toDomain() domain.Launch {
	res := domain.Launch{
		ID:       l.ID,
		Name:     l.Name,
		Status:   l.Status.Name,
		Provider: l.Provider.Name,
		Pad:      l.Pad.Name,
		Location: l.Pad.Location.Name,
		ImageURL: l.Image,
	}
	if t, err := time.Parse(time.RFC3339, l.WindowStart); err == nil {
		res.WindowStart = t.UTC()
	}
	if l.Mission != nil {
		res.MissionName = l.Mission.Name
		res.MissionDescription = l.Mission.Description
		res.Orbit = l.Mission.Orbit.Name
	}
	return res
}

// Upcoming returns up to limit upcoming launches ordered by launch time
func (c *Client) Upcoming(ctx context.Context, limit int) ([]domain.Launch, error) {
	q := url.Values{}
	q.Set("mode", "detailed")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("ordering", "net")

	var resp struct {
		Results []launchJSON `json:"results"`
	}
	if err := c.get(ctx, "/launch/upcoming/?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch upcoming launches: %w", err)
	}
	res := make([]domain.Launch, 0, len(resp.Results))
	for _, l := range resp.Results {
		res = append(res, l.toDomain())
	}
	return res, nil
}

// Launch returns a single launch, domain.ErrNotFound if the api doesn't know it
func (c *Client) Launch(ctx context.Context, id string) (*domain.Launch, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	var l launchJSON
	if err := c.get(ctx, "/launch/"+url.PathEscape(id)+"/", &l); err != nil {
		return nil, fmt.Errorf("fetch launch %s: %w", id, err)
	}
	res := l.toDomain()
	return &res, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "spacescope/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
