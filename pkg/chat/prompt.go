package chat

import (
	"fmt"
	"strings"

	"github.com/umputun/spacescope/pkg/content"
	"github.com/umputun/spacescope/pkg/domain"
)

const systemPrompt = `You are an expert space science assistant with access to recent NASA news, discoveries, ` +
	`and AI-detected patterns. Your role is to help users understand space science developments and find ` +
	`connections between discoveries.

You have access to:
1. Recent news and discoveries from NASA, Webb Telescope, and other space agencies
2. AI-detected patterns including connections between findings, emerging trends, research gaps, and anomalies

When answering questions:
- Be accurate and cite specific sources when possible
- Explain complex concepts in accessible terms
- Point out relevant patterns or connections when applicable
- Acknowledge uncertainty when appropriate

If the user asks about something not covered in the provided context, you can use your general knowledge ` +
	`but make it clear you're going beyond the provided sources.`

// maxDocExcerpt is the length of each retrieved document in the context, in runes
const maxDocExcerpt = 500

// contextBlock renders retrieved documents as numbered sources followed by the detected patterns
func contextBlock(docs []domain.ScoredDocument, insights []domain.Insight) string {
	parts := make([]string, 0, len(docs)+len(insights)+1)
	for i, d := range docs {
		parts = append(parts, fmt.Sprintf("\nSource %d: [%s] %s\nDate: %s\nCategory: %s\nContent: %s...\n",
			i+1, meta(d.Metadata, "source", "unknown"), meta(d.Metadata, "title", "Untitled"),
			meta(d.Metadata, "date", "Unknown"), meta(d.Metadata, "category", "Unknown"),
			content.Truncate(d.Text, maxDocExcerpt)))
	}
	if len(insights) > 0 {
		parts = append(parts, "\n--- AI-Detected Patterns ---\n")
		for _, in := range insights {
			parts = append(parts, fmt.Sprintf("\nPattern (%s): %s\n%s\nConfidence: %.0f%%\n",
				in.Type, in.Title, in.Description, in.ConfidenceScore*100))
		}
	}
	return strings.Join(parts, "\n")
}

func userMessage(contextText, query string) string {
	return fmt.Sprintf("Based on the following recent space science information:\n\n%s\n\nUser Question: %s\n\n"+
		"Please provide a helpful, accurate response based on this context. "+
		"If citing specific sources, reference them by number.", contextText, query)
}

func meta(m map[string]string, key, fallback string) string {
	if v := m[key]; v != "" {
		return v
	}
	return fallback
}
