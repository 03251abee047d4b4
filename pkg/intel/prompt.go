package intel

import (
	"fmt"
	"strings"

	"github.com/umputun/spacescope/pkg/content"
	"github.com/umputun/spacescope/pkg/domain"
)

// maxExcerpt is the length of the item text shown to the model, in runes
const maxExcerpt = 300

const analysisSystemPrompt = `You are an expert space science analyst. Your task is to analyze recent ` +
	`space news and discoveries to identify meaningful patterns that could contribute to scientific understanding.`

const analysisInstructions = `Analyze this data and identify:

1. CONNECTIONS: findings from different areas that relate to each other in non-obvious ways, such as
   cross-domain links, complementary observations from different telescopes, or theoretical
   predictions confirmed by observations.

2. TRENDS: topics getting increased attention, such as multiple teams studying similar phenomena
   or new techniques applied across different fields.

3. GAPS: observations lacking analysis or questions raised but not answered, such as observations
   that warrant follow-up or opportunities for further research.

4. ANOMALIES: unusual findings that don't fit existing patterns, such as unexpected results or
   contradictions to existing theories.

For EACH pattern provide a JSON object with:
- type: "connection" | "trend" | "gap" | "anomaly"
- title: short descriptive title
- description: 2-3 sentence explanation
- confidence_score: 0.0 to 1.0 based on evidence strength
- evidence: your reasoning
- category: the primary scientific category
- related_news_ids: list of the numeric IDs of the news items supporting this pattern

Return your analysis as a JSON array of pattern objects. Only include patterns you have reasonable
confidence in (>0.5).

JSON Response:`

// analysisPrompt lists items under their 1-based position, which is the id the model refers back to
func analysisPrompt(items []domain.NewsItem) string {
	var b strings.Builder
	b.WriteString("Given the following news items from the past week:\n")
	for i, item := range items {
		date := "Unknown"
		if !item.PublishedAt.IsZero() {
			date = item.PublishedAt.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "\n---\nID: %d\nSource: %s\nCategory: %s\nTitle: %s\nDate: %s\nSummary: %s\n---\n",
			i+1, item.Source, item.Category, item.Title, date, excerpt(item))
	}
	b.WriteString("\n")
	b.WriteString(analysisInstructions)
	return b.String()
}

func excerpt(item domain.NewsItem) string {
	text := item.Summary
	if text == "" {
		text = item.Content
	}
	if text == "" {
		return "No summary"
	}
	return content.Truncate(text, maxExcerpt)
}
