package domain

// Pattern identifies the infill lattice geometry a slicer generates.
type Pattern string

const (
	PatternGrid       Pattern = "GRID"
	PatternLines      Pattern = "LINES"
	PatternTriangles  Pattern = "TRIANGLES"
	PatternCubic      Pattern = "CUBIC"
	PatternGyroid     Pattern = "GYROID"
	PatternConcentric Pattern = "CONCENTRIC"
)

// Extraction defaults, matching what most slicers assume for a quick print.
const (
	DefaultInfillPercent = 20.0
	DefaultWallLineCount = 2
	DefaultLayerHeightMM = 0.2
	DefaultPattern       = PatternGrid
)

// PrintParameters holds the slicer settings extracted from a G-code file.
// Every field is always resolved: absence in the source text yields the
// documented default, never an error.
type PrintParameters struct {
	InfillPercent float64 `json:"infill_percent"`
	WallLineCount int     `json:"wall_line_count"`
	LayerHeightMM float64 `json:"layer_height_mm"`
	InfillPattern Pattern `json:"infill_pattern"`
}

// DefaultParameters returns the all-defaults parameter set.
func DefaultParameters() PrintParameters {
	return PrintParameters{
		InfillPercent: DefaultInfillPercent,
		WallLineCount: DefaultWallLineCount,
		LayerHeightMM: DefaultLayerHeightMM,
		InfillPattern: DefaultPattern,
	}
}

var knownPatterns = map[Pattern]bool{
	PatternGrid:       true,
	PatternLines:      true,
	PatternTriangles:  true,
	PatternCubic:      true,
	PatternGyroid:     true,
	PatternConcentric: true,
}

// NormalizePattern maps a raw slicer pattern name onto the supported set.
// Unrecognized names fall back to GRID.
func NormalizePattern(name string) Pattern {
	p := Pattern(name)
	if knownPatterns[p] {
		return p
	}
	return DefaultPattern
}

// ClampInfill bounds an infill percentage to [0, 100].
func ClampInfill(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
