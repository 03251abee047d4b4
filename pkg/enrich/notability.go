package enrich

import "strings"

type notability struct {
	name     string
	weight   int
	keywords []string
}

// notable categories, a category adds its weight once if any keyword is found
var notableCategories = []notability{
	{name: "crewed", weight: 100, keywords: []string{"crew", "crewed", "astronaut", "cosmonaut", "taikonaut"}},
	{name: "lunar", weight: 80, keywords: []string{"moon", "lunar", "artemis", "gateway"}},
	{name: "mars", weight: 70, keywords: []string{"mars", "martian"}},
	{name: "deep_space", weight: 60, keywords: []string{"jupiter", "saturn", "asteroid", "comet", "europa", "titan", "psyche"}},
	{name: "historic", weight: 40, keywords: []string{"first", "maiden", "inaugural"}},
	{name: "programs", weight: 30, keywords: []string{"artemis", "apollo", "iss", "tiangong", "starship"}},
}

// tag vocabulary deciding which content types get synthesized
const (
	TagCrewed = "crewed"
	TagLunar  = "lunar"
	TagMars   = "mars"
)

var tagVocabulary = map[string]bool{TagCrewed: true, TagLunar: true, TagMars: true}

// Score returns the notability of free text, the sum of weights of matched categories
func Score(text string) int {
	text = strings.ToLower(text)
	score := 0
	for _, c := range notableCategories {
		if containsAny(text, c.keywords) {
			score += c.weight
		}
	}
	return score
}

// Tags returns matched categories restricted to crewed, lunar and mars
func Tags(text string) []string {
	text = strings.ToLower(text)
	var tags []string
	for _, c := range notableCategories {
		if tagVocabulary[c.name] && containsAny(text, c.keywords) {
			tags = append(tags, c.name)
		}
	}
	return tags
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
