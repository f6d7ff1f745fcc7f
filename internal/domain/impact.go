package domain

import "sort"

// ImpactScenario describes one preset impact the part is assessed against.
type ImpactScenario struct {
	Name        string  `json:"name"`
	EnergyJ     float64 `json:"energy_j"`
	Character   string  `json:"character"`
	Description string  `json:"description"`
}

const (
	CharacterBluntDrop = "blunt drop"
	CharacterStrike    = "strike"
	CharacterCut       = "cut"
	CharacterCrush     = "crush"
)

// impacts is the fixed preset table, keyed by the documented preset strings.
// Energies are rough estimates in joules, tuned for comparison not physics.
var impacts = map[string]ImpactScenario{
	"LOW (DROP)": {
		Name: "LOW (DROP)", EnergyJ: 10, Character: CharacterBluntDrop,
		Description: "Dropping from a table",
	},
	"MEDIUM (STRIKE)": {
		Name: "MEDIUM (STRIKE)", EnergyJ: 50, Character: CharacterStrike,
		Description: "A solid, deliberate strike",
	},
	"FEDER (LIGHT_TAP)": {
		Name: "FEDER (LIGHT_TAP)", EnergyJ: 30, Character: CharacterStrike,
		Description: "A light, controlled tap",
	},
	"FEDER (FULL_STRIKE)": {
		Name: "FEDER (FULL_STRIKE)", EnergyJ: 150, Character: CharacterStrike,
		Description: "A powerful, committed feder strike",
	},
	"SABER (LIGHT_CUT)": {
		Name: "SABER (LIGHT_CUT)", EnergyJ: 40, Character: CharacterCut,
		Description: "A quick, precise cut",
	},
	"SABER (HEAVY_CUT)": {
		Name: "SABER (HEAVY_CUT)", EnergyJ: 120, Character: CharacterCut,
		Description: "A strong, forceful cut",
	},
	"CRUSH (MODERATE)": {
		Name: "CRUSH (MODERATE)", EnergyJ: 200, Character: CharacterCrush,
		Description: "Significant, steady pressure",
	},
}

// DefaultImpactLevel is the preset assumed when the caller does not pick one.
const DefaultImpactLevel = "MEDIUM (STRIKE)"

// LookupImpact resolves an impact-level identifier against the static table.
func LookupImpact(name string) (ImpactScenario, error) {
	s, ok := impacts[name]
	if !ok {
		return ImpactScenario{}, &UnknownImpactLevelError{Name: name}
	}
	return s, nil
}

// ImpactNames returns the supported impact presets sorted by energy,
// weakest first, so listings read as an escalation.
func ImpactNames() []string {
	names := make([]string, 0, len(impacts))
	for n := range impacts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := impacts[names[i]], impacts[names[j]]
		if a.EnergyJ != b.EnergyJ {
			return a.EnergyJ < b.EnergyJ
		}
		return a.Name < b.Name
	})
	return names
}
