package enrich

import (
	"fmt"
	"strings"

	"github.com/umputun/spacescope/pkg/domain"
)

const synthesisSystemPrompt = "You are a space mission research assistant. You answer with a single JSON object and nothing else."

// searchQueries are formatted with the mission search term
var searchQueries = map[domain.ContentType][]string{
	domain.ContentCrewProfiles: {
		`"%s" crew members astronauts`,
		`"%s" crew background biography`,
	},
	domain.ContentMissionObjectives: {
		`"%s" mission objectives goals`,
		`"%s" scientific experiments payload`,
	},
	domain.ContentHistoricalContext: {
		`"%s" historical significance importance`,
		`"%s" program history milestones`,
	},
	domain.ContentTechnicalDetails: {
		`"%s" technical specifications rocket`,
		`"%s" spacecraft details parameters`,
	},
}

type contentPrompt struct {
	subject  string // what the model researches, formatted with the mission name
	request  string // fields to cover
	schema   string // json layout of the answer
	empty    string // answer when nothing is known
	trailing string // optional extra instruction
}

var contentPrompts = map[domain.ContentType]contentPrompt{
	domain.ContentCrewProfiles: {
		subject: "the crew members for the space mission: %s",
		request: `Create detailed crew profiles. For each crew member, provide:
- Full name
- Role on mission (Commander, Pilot, Mission Specialist, etc.)
- Background (nationality, agency, previous missions)
- A brief bio highlighting their experience`,
		schema: `{
  "crew": [
    {
      "name": "Full Name",
      "role": "Role",
      "agency": "NASA/ESA/etc",
      "nationality": "Country",
      "previous_missions": ["Mission 1", "Mission 2"],
      "bio": "2-3 sentence biography"
    }
  ]
}`,
		empty:    `{"crew": []}`,
		trailing: "Only include crew members you can verify.",
	},
	domain.ContentMissionObjectives: {
		subject: "the mission: %s",
		request: `Summarize the mission objectives. Include:
- Primary mission goal
- Scientific experiments or payloads
- Key milestones during the mission
- Expected duration and trajectory`,
		schema: `{
  "primary_goal": "Main objective in 1-2 sentences",
  "experiments": ["Experiment 1", "Experiment 2"],
  "milestones": ["Milestone 1", "Milestone 2"],
  "duration": "Expected duration",
  "trajectory": "Mission path description"
}`,
		empty: `{}`,
	},
	domain.ContentHistoricalContext: {
		subject: "the historical significance of: %s",
		request: `Provide historical context for this mission. Include:
- Why this mission is significant
- Previous related missions or programs
- What makes this a milestone (if applicable)
- Connection to broader space exploration goals`,
		schema: `{
  "significance": "2-3 sentences on why this matters",
  "program_history": "Brief history of the program",
  "milestones": ["Key historical milestone 1", "Milestone 2"],
  "future_implications": "What this enables for future exploration"
}`,
		empty: `{}`,
	},
	domain.ContentTechnicalDetails: {
		subject: "technical specifications for: %s",
		request: `Provide technical details about this mission. Include:
- Launch vehicle specifications
- Spacecraft details
- Mission parameters (orbit, distance, duration)
- Notable technical achievements`,
		schema: `{
  "vehicle": {"name": "Vehicle name", "height": "Height in meters", "thrust": "Thrust specification", "stages": "Number of stages"},
  "spacecraft": {"name": "Spacecraft name", "capacity": "Crew or cargo capacity"},
  "mission_parameters": {"destination": "Target destination", "distance": "Distance traveled", "duration": "Mission duration", "orbit_type": "Type of orbit"}
}`,
		empty: `{}`,
	},
}

// maxPromptResults limits search results embedded in a grounded prompt
const maxPromptResults = 8

// groundedPrompt embeds numbered search results as context
func (p contentPrompt) groundedPrompt(missionName string, results []domain.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are researching "+p.subject+"\n\n", missionName)
	b.WriteString("Based on the following search results:\n")
	for i, r := range results {
		if i >= maxPromptResults {
			break
		}
		fmt.Fprintf(&b, "\n[%d] %s\nURL: %s\n", i+1, r.Title, r.URL)
	}
	b.WriteString("\n")
	b.WriteString(p.request)
	b.WriteString("\n\nReturn your response as a JSON object with this structure:\n")
	b.WriteString(p.schema)
	b.WriteString("\n\n")
	if p.trailing != "" {
		b.WriteString(p.trailing + " ")
	}
	fmt.Fprintf(&b, "If the sources contain no relevant information, return %s.\n\nJSON Response:", p.empty)
	return b.String()
}

// knowledgePrompt asks for an answer from training knowledge only
func (p contentPrompt) knowledgePrompt(missionName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are researching "+p.subject+"\n\n", missionName)
	b.WriteString("No web sources are available. Answer only from your own training knowledge.\n\n")
	b.WriteString(p.request)
	b.WriteString("\n\nReturn your response as a JSON object with this structure:\n")
	b.WriteString(p.schema)
	b.WriteString("\n\n")
	if p.trailing != "" {
		b.WriteString(p.trailing + " ")
	}
	fmt.Fprintf(&b, "If you have no reliable knowledge of this mission, return %s. Do not guess.\n\nJSON Response:", p.empty)
	return b.String()
}
