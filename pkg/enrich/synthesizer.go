package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/spacescope/pkg/domain"
	"github.com/umputun/spacescope/pkg/llm"
)

//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher

// Searcher runs a web search, failures yield an empty list
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []domain.SearchResult
}

// resultsPerQuery is the number of hits requested for every research query
const resultsPerQuery = 3

// SynthesisResult is the outcome of one synthesis. Sources is empty when the model answered
// from its own knowledge because research found nothing.
type SynthesisResult struct {
	Content map[string]any
	Sources []string
	Err     error
}

// Synthesizer researches a mission on the web and asks the llm to summarize it as structured content
type Synthesizer struct {
	llm             *llm.Lazy
	search          Searcher
	interQueryDelay time.Duration
	maxTokens       int
}

// NewSynthesizer makes a synthesizer. interQueryDelay is slept between consecutive research queries.
func NewSynthesizer(client *llm.Lazy, search Searcher, interQueryDelay time.Duration) *Synthesizer {
	return &Synthesizer{llm: client, search: search, interQueryDelay: interQueryDelay, maxTokens: 2048}
}

// Synthesize produces content of type ct for the named entity
func (s *Synthesizer) Synthesize(ctx context.Context, entityName string, ct domain.ContentType) SynthesisResult {
	client, err := s.llm.Get()
	if err != nil {
		return SynthesisResult{Err: err}
	}
	prompt, ok := contentPrompts[ct]
	if !ok {
		return SynthesisResult{Err: fmt.Errorf("unknown content type: %s", ct)}
	}

	term := searchTerm(entityName)
	var results []domain.SearchResult
	for i, tmpl := range searchQueries[ct] {
		if i > 0 {
			if err := waitOrDone(ctx, s.interQueryDelay); err != nil {
				return SynthesisResult{Err: err}
			}
		}
		results = append(results, s.search.Search(ctx, fmt.Sprintf(tmpl, term), resultsPerQuery)...)
	}

	sources := []string{}
	var text string
	if len(results) == 0 {
		log.Printf("[INFO] no research results for %q %s, using model knowledge", term, ct)
		text = prompt.knowledgePrompt(entityName)
	} else {
		if len(results) > maxPromptResults {
			results = results[:maxPromptResults]
		}
		for _, r := range results {
			sources = append(sources, r.URL)
		}
		text = prompt.groundedPrompt(entityName, results)
	}

	req := llm.UserRequest(synthesisSystemPrompt, text)
	req.MaxTokens = s.maxTokens
	reply, err := client.Complete(ctx, req)
	if err != nil {
		return SynthesisResult{Err: fmt.Errorf("synthesize %s: %w", ct, err)}
	}

	parsed := llm.ExtractObject[map[string]any](reply)
	if !parsed.OK() {
		if !errors.Is(parsed.Err, llm.ErrNoJSON) {
			log.Printf("[WARN] can't parse synthesis for %q %s: %v", entityName, ct, parsed.Err)
		}
		return SynthesisResult{Content: map[string]any{}, Sources: sources}
	}
	content := parsed.OrZero()
	if content == nil {
		content = map[string]any{}
	}
	return SynthesisResult{Content: content, Sources: sources}
}

// searchTerm strips trailing qualifiers like "Falcon 9 Block 5 | Starlink Group 6-3"
func searchTerm(name string) string {
	term := name
	if i := strings.Index(term, "|"); i >= 0 {
		term = term[:i]
	}
	if i := strings.Index(term, "/"); i >= 0 {
		term = term[:i]
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return strings.TrimSpace(name)
	}
	return term
}
