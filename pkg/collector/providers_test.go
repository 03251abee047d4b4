package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

func TestWebbProvider_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(`{"results":[
			{"id":2026101,"title":"Webb spots a galaxy","abstract":"<p>An old galaxy</p>","url":"/contents/news-releases/2026/101","thumbnail":"http://img/1.jpg","release_date":"2026-03-02T15:04:05Z"},
			{"id":"abc","title":"Another","abstract":"","url":"https://other/2","release_date":"bad"}]}`))
	}))
	defer ts.Close()

	p := NewWebbProvider(10, time.Second)
	p.Endpoint = ts.URL
	items, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, SourceWebb, items[0].Source)
	assert.Equal(t, "2026101", items[0].ExternalID)
	assert.Equal(t, "An old galaxy", items[0].Summary)
	assert.Equal(t, "https://webbtelescope.org/contents/news-releases/2026/101", items[0].URL)
	assert.Equal(t, "http://img/1.jpg", items[0].ImageURL)
	assert.Equal(t, "galaxies", items[0].Category)
	assert.Equal(t, time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC), items[0].PublishedAt)

	assert.Equal(t, "abc", items[1].ExternalID)
	assert.Equal(t, "https://other/2", items[1].URL)
	assert.True(t, items[1].PublishedAt.IsZero())
}

func TestWebbProvider_FetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer ts.Close()

	p := NewWebbProvider(10, time.Second)
	p.Endpoint = ts.URL
	_, err := p.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestImagesProvider_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "nebula", r.URL.Query().Get("q"))
		assert.Equal(t, "image", r.URL.Query().Get("media_type"))
		assert.Equal(t, "2025", r.URL.Query().Get("year_start"))
		_, _ = w.Write([]byte(`{"collection":{"items":[
			{"data":[{"nasa_id":"PIA001","title":"Carina","description":"star forming region","keywords":["nebula"],"date_created":"2026-01-05T00:00:00Z"}],
			 "links":[{"href":"https://images/PIA001.jpg"}]},
			{"data":[]},
			{"data":[{"nasa_id":"PIA003","title":"Third","description":"","date_created":"2026-01-07"}]}]}}`))
	}))
	defer ts.Close()

	p := NewImagesProvider("nebula", 2, time.Second)
	p.Endpoint = ts.URL
	p.now = fixedNow
	items, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1, "limit applies before empty entries are skipped")

	assert.Equal(t, SourceImages, items[0].Source)
	assert.Equal(t, "PIA001", items[0].ExternalID)
	assert.Equal(t, "https://images.nasa.gov/details/PIA001", items[0].URL)
	assert.Equal(t, "https://images/PIA001.jpg", items[0].ImageURL)
	assert.Equal(t, "stars", items[0].Category)
}

func TestImagesProvider_DefaultQuery(t *testing.T) {
	assert.Equal(t, "space telescope discovery", NewImagesProvider("", 5, 0).Query)
}

func TestAPODProvider_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/planetary/apod", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "2026-03-03", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-03-10", r.URL.Query().Get("end_date"))
		_, _ = w.Write([]byte(`[
			{"date":"2026-03-09","title":"Comet tail","explanation":"A comet passes","url":"https://apod/1.jpg","hdurl":"https://apod/1-hd.jpg"},
			{"date":"2026-03-10","title":"Video","explanation":"clip","url":"https://apod/2.mp4"}]`))
	}))
	defer ts.Close()

	p := NewAPODProvider("key", 7, time.Second)
	p.Endpoint = ts.URL
	p.now = fixedNow
	items, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "2026-03-09", items[0].ExternalID)
	assert.Equal(t, "https://apod/1-hd.jpg", items[0].ImageURL)
	assert.Equal(t, "solar_system", items[0].Category)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), items[0].PublishedAt)
	assert.Equal(t, "https://apod/2.mp4", items[1].ImageURL, "falls back to url without hdurl")
}

func TestDONKIProvider_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DONKI/notifications", r.URL.Path)
		assert.Equal(t, "2026-03-07", r.URL.Query().Get("startDate"))
		_, _ = w.Write([]byte(`[{"messageID":"20260309-AL-001","messageType":"FLR","messageBody":"## Flare\nclass X1",
			"messageURL":"https://donki/1","messageIssueTime":"2026-03-09T10:22Z"}]`))
	}))
	defer ts.Close()

	p := NewDONKIProvider("DEMO_KEY", 3, time.Second)
	p.Endpoint = ts.URL + "/"
	p.now = fixedNow
	items, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Space Weather: FLR", items[0].Title)
	assert.Equal(t, "20260309-AL-001", items[0].ExternalID)
	assert.Equal(t, CategorySpaceWeather, items[0].Category)
	assert.Equal(t, "## Flare class X1", items[0].Summary)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 22, 0, 0, time.UTC), items[0].PublishedAt)
}

func TestFlexID(t *testing.T) {
	var v struct {
		ID flexID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":42}`), &v))
	assert.Equal(t, flexID("42"), v.ID)
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x-1"}`), &v))
	assert.Equal(t, flexID("x-1"), v.ID)
	require.Error(t, json.Unmarshal([]byte(`{"id":{"a":1}}`), &v))
}
