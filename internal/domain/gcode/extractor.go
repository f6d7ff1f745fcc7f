// Package gcode extracts print parameters from slicer-annotated G-code.
//
// Cura and PrusaSlicer both emit their settings as `; key = value` comments.
// The extractor scans for a small fixed vocabulary of those keys and never
// fails: anything missing or malformed resolves to a default.
package gcode

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

var (
	infillRe  = regexp.MustCompile(`(?i)^;\s*infill_percentage\s*=\s*(\S+)`)
	wallRe    = regexp.MustCompile(`(?i)^;\s*wall_line_count\s*=\s*(\S+)`)
	layerRe   = regexp.MustCompile(`(?i)^;\s*layer_height\s*=\s*(\S+)`)
	patternRe = regexp.MustCompile(`(?i)^;\s*infill_pattern\s*=\s*(\w+)`)
)

// Extractor implements domain.ParameterExtractor with a single linear pass.
type Extractor struct {
	base domain.PrintParameters
}

// New creates an Extractor that falls back to the built-in defaults.
func New() *Extractor {
	return &Extractor{base: domain.DefaultParameters()}
}

// NewWithBase creates an Extractor whose fallback values come from base,
// typically the configured defaults for a directory.
func NewWithBase(base domain.PrintParameters) *Extractor {
	return &Extractor{base: base}
}

// Extract scans content line by line for recognized annotations. Annotation
// order does not matter; when a key repeats, the last occurrence wins. An
// unparsable value for a recognized key keeps that field's default rather
// than aborting the scan. Out-of-range values clamp to the nearest bound.
func (e *Extractor) Extract(content string) domain.PrintParameters {
	params := e.base

	scanner := bufio.NewScanner(strings.NewReader(content))
	// Slicer preambles can carry long thumbnail comment lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, ";") {
			continue
		}

		if m := infillRe.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				params.InfillPercent = domain.ClampInfill(v)
			}
			continue
		}
		if m := wallRe.FindStringSubmatch(line); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				params.WallLineCount = max(v, 0)
			}
			continue
		}
		if m := layerRe.FindStringSubmatch(line); m != nil {
			// A zero or negative layer height is physically meaningless;
			// treat it like an unparsable value.
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
				params.LayerHeightMM = v
			}
			continue
		}
		if m := patternRe.FindStringSubmatch(line); m != nil {
			params.InfillPattern = domain.NormalizePattern(strings.ToUpper(m[1]))
		}
	}

	return params
}
