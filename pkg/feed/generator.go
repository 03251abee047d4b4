package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/spacescope/pkg/domain"
)

// Generator renders insights as an RSS feed
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a generator, item links point to baseURL
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// InsightsRSS creates an RSS 2.0 feed of insights, in the given order
func (g *Generator) InsightsRSS(insights []domain.Insight, minConfidence float64) (string, error) {
	items := make([]*RSSItem, 0, len(insights))
	for _, ins := range insights {
		items = append(items, g.insightItem(ins))
	}

	doc := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         fmt.Sprintf("Spacescope insights (confidence ≥ %.0f%%)", minConfidence*100),
			Link:          g.baseURL + "/",
			Description:   "Patterns detected across recent space science news",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/insights", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) insightItem(ins domain.Insight) *RSSItem {
	desc := fmt.Sprintf("%s - confidence %.0f%%\n\n%s", ins.Type, ins.ConfidenceScore*100, ins.Description)
	if ins.Evidence != "" {
		desc += "\n\nEvidence: " + ins.Evidence
	}
	return &RSSItem{
		Title:       fmt.Sprintf("[%s] %s", ins.Type, ins.Title),
		Link:        g.baseURL + "/api/v1/insights/" + ins.ID,
		GUID:        ins.ID,
		Description: desc,
		PubDate:     ins.GeneratedAt.Format(time.RFC1123Z),
		Categories:  []string{ins.Category, string(ins.Type)},
	}
}
