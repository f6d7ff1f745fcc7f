package tui

import (
	"fmt"
	"strings"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

// RenderMaterials formats the static material table.
func RenderMaterials() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Materials") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, name := range domain.MaterialNames() {
		m, _ := domain.LookupMaterial(name)
		fmt.Fprintf(&b, "    %s %s\n",
			titleStyle.Render(padRight(m.Name, 6)),
			dimStyle.Render(fmt.Sprintf("tensile %2.0f MPa   impact %2.0f kJ/m²   %s",
				m.TensileStrength, m.ImpactStrength, m.Flexibility)))
	}
	return b.String()
}

// RenderImpacts formats the impact presets, weakest first.
func RenderImpacts() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Impact Presets") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, name := range domain.ImpactNames() {
		s, _ := domain.LookupImpact(name)
		fmt.Fprintf(&b, "    %s %s\n",
			titleStyle.Render(padRight(s.Name, 22)),
			dimStyle.Render(fmt.Sprintf("%3.0f J  %-10s %s", s.EnergyJ, s.Character, s.Description)))
	}
	return b.String()
}
