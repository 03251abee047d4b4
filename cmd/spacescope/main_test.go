package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/spacescope/pkg/collector"
	"github.com/umputun/spacescope/pkg/config"
)

// testEnv points testdata/config.yml at a free port and a temp database directory
func testEnv(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	t.Setenv("SPACESCOPE_TEST_PORT", strconv.Itoa(port))
	t.Setenv("SPACESCOPE_TEST_DIR", t.TempDir())
	return port
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml", NoColor: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path, NoColor: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	port := testEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: "testdata/config.yml", NoColor: true}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(base + "/api/v1/status")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)

	resp, err = http.Get(base + "/api/v1/chat/suggestions")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestRun_RunOnce(t *testing.T) {
	testEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, run(ctx, Opts{Config: "testdata/config.yml", RunOnce: "collect", NoColor: true}))
	// no llm key, analysis reports the degraded mode instead of failing
	require.NoError(t, run(ctx, Opts{Config: "testdata/config.yml", RunOnce: "analyze", NoColor: true}))
}

func TestProviders(t *testing.T) {
	cfg := config.SourcesConfig{Webb: true, APOD: true, NASAAPIKey: "key", PageSize: 10, Timeout: time.Second}
	res := providers(cfg)
	require.Len(t, res, 2)
	assert.Equal(t, collector.SourceWebb, res[0].Name())
	assert.Equal(t, collector.SourceAPOD, res[1].Name())

	cfg = config.SourcesConfig{Images: true, DONKI: true, ExtractContent: true, Timeout: time.Second,
		Feeds: []config.FeedConfig{{Name: "spacenews", URL: "https://spacenews.com/feed/"}, {Name: "esa", URL: "https://www.esa.int/rssfeed/Our_Activities/Space_Science"}}}
	res = providers(cfg)
	require.Len(t, res, 4)
	assert.Equal(t, collector.SourceImages, res[0].Name())
	assert.Equal(t, collector.SourceDONKI, res[1].Name())
	assert.Equal(t, "spacenews", res[2].Name())
	assert.Equal(t, "esa", res[3].Name())

	assert.Empty(t, providers(config.SourcesConfig{}))
}

func TestSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.APIKey = "sk-ant-123"
	cfg.Sources.NASAAPIKey = "DEMO_KEY"
	assert.Equal(t, []string{"sk-ant-123"}, secrets(cfg))

	cfg.Embedding.APIKey = "sk-emb"
	cfg.Sources.NASAAPIKey = "nasa-key"
	assert.Equal(t, []string{"sk-ant-123", "sk-emb", "nasa-key"}, secrets(cfg))
}

func TestSetupLog(t *testing.T) {
	assert.NotPanics(t, func() { setupLog(true, false) })
	assert.NotPanics(t, func() { setupLog(false, true) })
	assert.NotPanics(t, func() { setupLog(true, true, "secret1", "secret2") })
}
