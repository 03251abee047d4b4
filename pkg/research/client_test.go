package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/domain"
)

const resultsPage = `<html><body>
<div class="result"><a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.nasa.gov%2Fartemis-ii%2F&amp;rut=abc">Artemis II Crew</a></div>
<div class="result"><a rel="nofollow" class="result__a" href="https://en.wikipedia.org/wiki/Artemis_II"> Artemis II - Wikipedia </a></div>
<div class="result"><a class="result__snippet" href="https://ignored.example.com">snippet</a></div>
<div class="result"><a rel="nofollow" class="result__a" href="https://www.esa.int/artemis">ESA and Artemis</a></div>
</body></html>`

func TestClient_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Artemis II crew members astronauts", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Equal(t, "document", r.Header.Get("Sec-Fetch-Dest"))
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, Retries: 3, Backoff: time.Millisecond})
	res := c.Search(context.Background(), "Artemis II crew members astronauts", 2)
	assert.Equal(t, []domain.SearchResult{
		{Title: "Artemis II Crew", URL: "https://www.nasa.gov/artemis-ii/"},
		{Title: "Artemis II - Wikipedia", URL: "https://en.wikipedia.org/wiki/Artemis_II"},
	}, res)

	res = c.Search(context.Background(), "Artemis II crew members astronauts", 10)
	assert.Len(t, res, 3)
}

func TestClient_Search_RateLimitedExhaustsRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, Retries: 3, Backoff: time.Millisecond})
	res := c.Search(context.Background(), "query", 3)
	require.NotNil(t, res)
	assert.Empty(t, res)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Search_RateLimitedThenOK(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, Retries: 3, Backoff: time.Millisecond})
	res := c.Search(context.Background(), "query", 1)
	require.Len(t, res, 1)
	assert.Equal(t, "Artemis II Crew", res[0].Title)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_Search_Failures(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, Retries: 3, Backoff: time.Millisecond})
	assert.Empty(t, c.Search(context.Background(), "query", 3))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "non rate limit errors are not retried")

	assert.Empty(t, c.Search(context.Background(), "", 3))
	assert.Empty(t, c.Search(context.Background(), "query", 0))

	unreachable := NewClient(Config{Endpoint: "http://127.0.0.1:1", Retries: 2, Backoff: time.Millisecond, Timeout: time.Second})
	assert.Empty(t, unreachable.Search(context.Background(), "query", 3))
}

func TestUnwrapRedirect(t *testing.T) {
	tests := []struct{ in, want string }{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fa%3Fb%3D1&rut=x", "https://example.com/a?b=1"},
		{"https://example.com/plain", "https://example.com/plain"},
		{"/l/?uddg=https%3A%2F%2Fexample.com", "https://example.com"},
		{"/l/?uddg=%zz", "%zz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unwrapRedirect(tt.in), tt.in)
	}
}
