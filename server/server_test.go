package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/server/mocks"
)

// okStatus is a status source with a healthy database and no job runs
func okStatus() *mocks.StatusSourceMock {
	return &mocks.StatusSourceMock{
		PingFunc:             func(ctx context.Context) error { return nil },
		JobRunsFunc:          func(ctx context.Context) ([]domain.JobRun, error) { return nil, nil },
		IndexedDocumentsFunc: func(ctx context.Context) (int, error) { return 0, nil },
	}
}

// serve routes the request through the full router, middleware included
func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_New(t *testing.T) {
	srv := New(Params{Listen: ":8080", Version: "1.0.0"})
	assert.Equal(t, 30*time.Second, srv.Timeout)
	assert.Equal(t, 7, srv.AnalyzeDays)
	assert.Equal(t, "1.0.0", srv.Version)
	assert.False(t, srv.Debug)

	srv = New(Params{Timeout: 5 * time.Second, AnalyzeDays: 3})
	assert.Equal(t, 5*time.Second, srv.Timeout)
	assert.Equal(t, 3, srv.AnalyzeDays)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(Params{Listen: fmt.Sprintf("127.0.0.1:%d", port), Status: okStatus(), Version: "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	finished := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("healthy", func(t *testing.T) {
		status := &mocks.StatusSourceMock{
			PingFunc: func(ctx context.Context) error { return nil },
			JobRunsFunc: func(ctx context.Context) ([]domain.JobRun, error) {
				return []domain.JobRun{{Name: "collect", FinishedAt: finished, Summary: "collected 3, stored 2, duplicates 1, failed 0"}}, nil
			},
			IndexedDocumentsFunc: func(ctx context.Context) (int, error) { return 42, nil },
		}
		srv := New(Params{Status: status, Version: "1.2.3"})

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp struct {
			Status  string          `json:"status"`
			Version string          `json:"version"`
			Time    string          `json:"time"`
			Jobs    []domain.JobRun `json:"jobs"`
			Indexed int             `json:"indexed_documents"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "1.2.3", resp.Version)
		assert.NotEmpty(t, resp.Time)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, "collect", resp.Jobs[0].Name)
		assert.True(t, finished.Equal(resp.Jobs[0].FinishedAt))
		assert.Equal(t, 42, resp.Indexed)
	})

	t.Run("database down", func(t *testing.T) {
		status := okStatus()
		status.PingFunc = func(ctx context.Context) error { return errors.New("disk I/O error") }
		status.JobRunsFunc = func(ctx context.Context) ([]domain.JobRun, error) { return nil, errors.New("disk I/O error") }
		srv := New(Params{Status: status})

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp["status"])
		assert.Equal(t, "disk I/O error", resp["database"])
		assert.NotContains(t, resp, "jobs")
	})
}

func TestServer_unknownRoute(t *testing.T) {
	srv := New(Params{Status: okStatus()})
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
