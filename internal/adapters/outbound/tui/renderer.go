package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

// ── Brass-and-bronze palette, after the original cogitator UI ──
var (
	accent  = lipgloss.Color("#D4AF37") // brass
	fg      = lipgloss.Color("#F5F5DC") // off-white
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	verdictColors = map[domain.Verdict]lipgloss.Color{
		domain.VerdictSurvives: success,
		domain.VerdictDamaged:  warning,
		domain.VerdictShatters: danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderResult formats a full analysis for terminal output.
func RenderResult(fileName string, r *domain.AnalysisResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("impact prognosticator")
	subtitle := dimStyle.Render(fileName)
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(r.Verdict)).
		Render(r.Verdict.Label())

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled))
	b.WriteString("\n\n")

	// ── Extracted parameters ──
	b.WriteString("  " + titleStyle.Render("Print Parameters") + "\n")
	renderRow(&b, "infill density", fmt.Sprintf("%.0f%%", r.Parameters.InfillPercent))
	renderRow(&b, "wall perimeters", fmt.Sprintf("%d", r.Parameters.WallLineCount))
	renderRow(&b, "layer height", fmt.Sprintf("%gmm", r.Parameters.LayerHeightMM))
	renderRow(&b, "infill pattern", string(r.Parameters.InfillPattern))
	b.WriteString("\n")

	// ── Scenario ──
	b.WriteString("  " + titleStyle.Render("Scenario") + "\n")
	renderRow(&b, "material", fmt.Sprintf("%s (%s, %.0f MPa, %.0f kJ/m²)",
		r.Material.Name, r.Material.Flexibility, r.Material.TensileStrength, r.Material.ImpactStrength))
	renderRow(&b, "impact", fmt.Sprintf("%s — %.0f J %s", r.Impact.Name, r.Impact.EnergyJ, r.Impact.Character))
	b.WriteString("\n")

	// ── Prognosis ──
	b.WriteString("  " + titleStyle.Render("Prognosis") + "\n")
	renderRow(&b, "resistance score", fmt.Sprintf("%.2f", r.ResistanceScore))
	renderRow(&b, "impact energy", fmt.Sprintf("%.0f J", r.Impact.EnergyJ))
	renderRow(&b, "ratio", fmt.Sprintf("%.2f", r.Ratio))
	renderFactors(&b, r.Factors)

	b.WriteString("\n  " + separatorLine + "\n")
	b.WriteString("  " + dimStyle.Render(r.Rationale) + "\n")

	return b.String()
}

func renderRow(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(name, 20)), value)
}

func renderFactors(b *strings.Builder, f domain.FactorBreakdown) {
	dominant := f.Dominant()
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{domain.FactorStructural, f.Structural},
		{domain.FactorInfill, f.Infill},
		{domain.FactorMaterial, f.Material},
	} {
		bar := factorBar(entry.value, 16)
		line := fmt.Sprintf("    %s %s %.2f", dimStyle.Render(padRight(entry.name+" factor", 20)), bar, entry.value)
		if entry.name == dominant {
			line += "  " + faintStyle.Render("dominant")
		}
		b.WriteString(line + "\n")
	}
}

// factorBar scales a factor onto a fixed-width bar; 2.0 fills it completely,
// which keeps typical prints around half-way.
func factorBar(v float64, width int) string {
	filled := int(v / 2.0 * float64(width))
	filled = max(0, min(filled, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func verdictColor(v domain.Verdict) lipgloss.Color {
	if c, ok := verdictColors[v]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
