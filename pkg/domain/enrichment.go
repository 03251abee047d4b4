package domain

import (
	"strings"
	"time"
)

// ContentType is a kind of synthesized knowledge stored for an entity
type ContentType string

// content types
const (
	ContentCrewProfiles      ContentType = "crew_profiles"
	ContentMissionObjectives ContentType = "mission_objectives"
	ContentHistoricalContext ContentType = "historical_context"
	ContentTechnicalDetails  ContentType = "technical_details"
)

// EntityLaunch is the only entity type enrichment supports
const EntityLaunch = "launch"

// DefaultEnrichmentTTL is applied when a record has no explicit expiry
const DefaultEnrichmentTTL = 7 * 24 * time.Hour

// EnrichedContent is one synthesized record for (EntityType, EntityID, ContentType)
type EnrichedContent struct {
	ID          string         `json:"id"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	ContentType ContentType    `json:"content_type"`
	Content     map[string]any `json:"content"`
	Sources     []string       `json:"sources"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpiresAt   time.Time      `json:"expires_at"`
}

// Fresh reports whether the record is still readable at the given time
func (e EnrichedContent) Fresh(now time.Time) bool {
	return e.ExpiresAt.After(now)
}

// DocumentID returns the semantic document id shared with the structured record key
func DocumentID(entityType, entityID string, ct ContentType) string {
	return entityType + ":" + entityID + ":" + string(ct)
}

// Launch is an upcoming launch, the candidate entity for enrichment
type Launch struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	WindowStart        time.Time `json:"window_start"`
	MissionName        string    `json:"mission_name"`
	MissionDescription string    `json:"mission_description"`
	Orbit              string    `json:"orbit"`
	Provider           string    `json:"provider"`
	Pad                string    `json:"pad"`
	Location           string    `json:"location"`
	ImageURL           string    `json:"image_url,omitempty"`
}

// Text returns the free-text fields used for notability scoring
func (l Launch) Text() string {
	return strings.Join([]string{l.Name, l.MissionName, l.MissionDescription, l.Orbit}, " ")
}

// SearchResult is one web search hit
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
