// Package llm provides text completion clients for OpenAI-compatible and Anthropic APIs,
// a lazily constructed process-wide client handle and JSON extraction from free-form replies.
package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

//go:generate moq -out mocks/completer.go -pkg mocks -skip-ensure -fmt goimports . Completer

// ErrNotConfigured is returned when no LLM credential is configured
var ErrNotConfigured = errors.New("llm is not configured")

// message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call
type Request struct {
	System    string
	Messages  []Message
	MaxTokens int // 0 uses the client default
}

// UserRequest makes a request with a system prompt and a single user turn
func UserRequest(system, prompt string) Request {
	return Request{System: system, Messages: []Message{{Role: RoleUser, Content: prompt}}}
}

// Completer sends a completion request and returns the reply text
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Config holds client settings
type Config struct {
	Provider          string // openai or anthropic
	Endpoint          string
	APIKey            string
	Model             string
	Temperature       float64
	MaxTokens         int
	Timeout           time.Duration
	RequestsPerMinute int
}

// Lazy constructs the configured client on first use and keeps it for the process lifetime.
// No teardown is needed.
type Lazy struct {
	cfg     Config
	once    sync.Once
	client  Completer
	err     error
	factory func(Config) (Completer, error)
}

// NewLazy makes a handle for cfg, nothing is constructed until Get is called
func NewLazy(cfg Config) *Lazy {
	return &Lazy{cfg: cfg, factory: newCompleter}
}

// Fixed makes a handle that always returns c, nil c means not configured
func Fixed(c Completer) *Lazy {
	l := &Lazy{client: c}
	if c == nil {
		l.err = ErrNotConfigured
	}
	l.once.Do(func() {})
	return l
}

// Get returns the shared client or ErrNotConfigured when the api key is empty
func (l *Lazy) Get() (Completer, error) {
	l.once.Do(func() {
		if l.cfg.APIKey == "" {
			l.err = ErrNotConfigured
			return
		}
		l.client, l.err = l.factory(l.cfg)
	})
	return l.client, l.err
}

// Available reports whether Get would return a client
func (l *Lazy) Available() bool {
	_, err := l.Get()
	return err == nil
}

func newCompleter(cfg Config) (Completer, error) {
	var c Completer
	switch cfg.Provider {
	case "openai":
		c = NewOpenAIClient(cfg)
	case "anthropic", "":
		c = NewAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	if cfg.RequestsPerMinute > 0 {
		c = NewPaced(c, cfg.RequestsPerMinute)
	}
	return c, nil
}

// Paced limits the rate of completion calls made through it
type Paced struct {
	next    Completer
	limiter *rate.Limiter
}

// NewPaced wraps c allowing at most perMinute calls per minute
func NewPaced(c Completer, perMinute int) *Paced {
	return &Paced{next: c, limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)}
}

// Complete waits for the limiter and delegates
func (p *Paced) Complete(ctx context.Context, req Request) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return p.next.Complete(ctx, req)
}
