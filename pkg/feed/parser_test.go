package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Space News</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>Webb finds water</title>
		<link>http://example.com/water</link>
		<description>Water vapour around a young star</description>
		<content:encoded><![CDATA[<p>Full content</p>]]></content:encoded>
		<category>Science</category>
		<enclosure url="http://example.com/water.jpg" type="image/jpeg" length="100"/>
		<pubDate>Mon, 02 Mar 2026 15:04:05 +0000</pubDate>
		<guid>water-1</guid>
	</item>
	<item>
		<title>Second article</title>
		<link>http://example.com/second</link>
		<description>no guid here</description>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "spacescope-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssContent))
	}))
	defer server.Close()

	entries, err := NewParser(5*time.Second, "spacescope-test").Parse(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	e := entries[0]
	assert.Equal(t, "water-1", e.GUID)
	assert.Equal(t, "Webb finds water", e.Title)
	assert.Equal(t, "http://example.com/water", e.Link)
	assert.Equal(t, "Water vapour around a young star", e.Description)
	assert.Equal(t, "<p>Full content</p>", e.Content)
	assert.Equal(t, []string{"Science"}, e.Categories)
	assert.Equal(t, "http://example.com/water.jpg", e.ImageURL)
	assert.Equal(t, time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC), e.Published.UTC())

	assert.Equal(t, "http://example.com/second", entries[1].GUID, "guid falls back to link")
	assert.True(t, entries[1].Published.IsZero())
}

func TestParser_Parse_Atom(t *testing.T) {
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom Feed</title>
	<entry>
		<title>Atom Entry</title>
		<link href="http://example.com/entry1"/>
		<id>urn:entry:1</id>
		<updated>2026-03-01T10:00:00Z</updated>
		<summary>Entry summary</summary>
	</entry>
</feed>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(atomContent))
	}))
	defer server.Close()

	entries, err := NewParser(5*time.Second, "").Parse(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "urn:entry:1", entries[0].GUID)
	assert.Equal(t, "Entry summary", entries[0].Description)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), entries[0].Published.UTC())
}

func TestParser_Parse_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("not a feed"))
	}))
	defer server.Close()

	p := NewParser(5*time.Second, "")
	_, err := p.Parse(context.Background(), server.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")

	_, err = p.Parse(context.Background(), server.URL+"/garbage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")
}
