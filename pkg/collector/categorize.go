package collector

import (
	"strings"

	"github.com/umputun/spacescope/pkg/domain"
)

type taxon struct {
	category string
	keywords []string
}

// taxonomy is checked in order, the first category with a matching keyword wins
var taxonomy = []taxon{
	{category: "exoplanets", keywords: []string{"exoplanet", "planet", "habitable", "biosignature", "transit", "atmosphere"}},
	{category: "galaxies", keywords: []string{"galaxy", "galaxies", "quasar", "agn", "merger", "cosmic"}},
	{category: "stars", keywords: []string{"star", "stellar", "supernova", "neutron", "pulsar", "dwarf"}},
	{category: "nebulae", keywords: []string{"nebula", "nebulae", "cloud", "gas", "dust", "formation"}},
	{category: "black_holes", keywords: []string{"black hole", "event horizon", "singularity", "gravitational"}},
	{category: "solar_system", keywords: []string{"mars", "jupiter", "saturn", "asteroid", "comet", "moon"}},
	{category: "cosmology", keywords: []string{"universe", "big bang", "dark matter", "dark energy", "expansion"}},
	{category: CategorySpaceWeather, keywords: []string{"solar", "flare", "cme", "geomagnetic", "radiation"}},
}

// CategorySpaceWeather is assigned to space weather notifications
const CategorySpaceWeather = "space_weather"

// Categorize assigns a taxonomy category by keyword match over title, description and keywords
func Categorize(title, description string, keywords ...string) string {
	text := strings.ToLower(title + " " + description + " " + strings.Join(keywords, " "))
	for _, t := range taxonomy {
		for _, k := range t.keywords {
			if strings.Contains(text, k) {
				return t.category
			}
		}
	}
	return domain.CategoryOther
}
