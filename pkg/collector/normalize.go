package collector

import (
	"crypto/md5" //nolint:gosec // content hash, not security
	"encoding/hex"
	"strings"
	"time"

	"github.com/umputun/spacescope/pkg/content"
)

// maxSummary is the summary length in runes
const maxSummary = 500

var dateLayouts = []string{
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z",
	"2006-01-02",
}

// parseDate understands the date formats of the providers, zero time for anything else.
// Input is cut to 26 characters, fractional seconds beyond microseconds are ignored.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if len(s) > 26 {
		s = s[:26]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	// microsecond layout without the trailing Z after the cut
	if t, err := time.Parse("2006-01-02T15:04:05.000000", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// summarize strips markup and caps the text
func summarize(s string) string {
	return content.Truncate(content.PlainText(s), maxSummary)
}

// contentHash is the fallback external id of items without one
func contentHash(source, title string) string {
	sum := md5.Sum([]byte(strings.ToLower(source + ":" + title))) //nolint:gosec // content hash, not security
	return hex.EncodeToString(sum[:])
}
