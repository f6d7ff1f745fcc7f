package domain

import "sort"

// MaterialProfile describes the mechanical properties of a print material.
// Values are a simplified database; real filaments vary by brand and batch.
type MaterialProfile struct {
	Name            string  `json:"name"`
	TensileStrength float64 `json:"tensile_strength_mpa"`
	ImpactStrength  float64 `json:"impact_strength_kj_m2"`
	Flexibility     string  `json:"flexibility"`
}

// materials is fixed at build time; there is no runtime registration.
var materials = map[string]MaterialProfile{
	"PLA":  {Name: "PLA", TensileStrength: 50, ImpactStrength: 5, Flexibility: "rigid"},
	"PETG": {Name: "PETG", TensileStrength: 45, ImpactStrength: 8, Flexibility: "semi-flexible"},
	"ABS":  {Name: "ABS", TensileStrength: 40, ImpactStrength: 10, Flexibility: "moderate"},
	"TPU":  {Name: "TPU", TensileStrength: 35, ImpactStrength: 30, Flexibility: "flexible"},
}

// ReferenceMaterial is the profile material factors are normalized against.
const ReferenceMaterial = "PLA"

// LookupMaterial resolves a material identifier against the static table.
func LookupMaterial(name string) (MaterialProfile, error) {
	m, ok := materials[name]
	if !ok {
		return MaterialProfile{}, &UnknownMaterialError{Name: name}
	}
	return m, nil
}

// MaterialNames returns the supported material identifiers, sorted.
func MaterialNames() []string {
	names := make([]string, 0, len(materials))
	for n := range materials {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
