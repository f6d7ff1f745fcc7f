package gcode_test

import (
	"os"
	"testing"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain/gcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyInputYieldsDefaults(t *testing.T) {
	params := gcode.New().Extract("")
	assert.Equal(t, domain.DefaultParameters(), params)
}

func TestExtract_PureCommandsYieldDefaults(t *testing.T) {
	content, err := os.ReadFile("../../../testdata/plain.gcode")
	require.NoError(t, err)

	params := gcode.New().Extract(string(content))
	assert.Equal(t, domain.DefaultParameters(), params)
}

func TestExtract_SampleFile(t *testing.T) {
	content, err := os.ReadFile("../../../testdata/feder_mask.gcode")
	require.NoError(t, err)

	params := gcode.New().Extract(string(content))

	assert.Equal(t, 40.0, params.InfillPercent)
	assert.Equal(t, 4, params.WallLineCount)
	assert.Equal(t, 0.2, params.LayerHeightMM)
	assert.Equal(t, domain.PatternGyroid, params.InfillPattern)
}

func TestExtract_CaseAndWhitespaceInsensitive(t *testing.T) {
	content := ";  INFILL_PERCENTAGE =  55\n;Wall_Line_Count=3\n;   layer_height   =0.28\n;infill_pattern = Cubic\n"

	params := gcode.New().Extract(content)

	assert.Equal(t, 55.0, params.InfillPercent)
	assert.Equal(t, 3, params.WallLineCount)
	assert.Equal(t, 0.28, params.LayerHeightMM)
	assert.Equal(t, domain.PatternCubic, params.InfillPattern)
}

func TestExtract_LastOccurrenceWins(t *testing.T) {
	content := "; infill_percentage = 10\nG1 X1 Y1\n; infill_percentage = 60\n"

	params := gcode.New().Extract(content)
	assert.Equal(t, 60.0, params.InfillPercent)
}

func TestExtract_OutOfRangeValuesClamp(t *testing.T) {
	content := "; infill_percentage = 150\n; wall_line_count = -2\n"

	params := gcode.New().Extract(content)

	assert.Equal(t, 100.0, params.InfillPercent)
	assert.Equal(t, 0, params.WallLineCount)
}

func TestExtract_UnparsableValuesKeepDefaults(t *testing.T) {
	content := "; infill_percentage = lots\n; wall_line_count = 3.5\n; layer_height = 0\n; infill_pattern = 42crazy\n"

	params := gcode.New().Extract(content)

	assert.Equal(t, domain.DefaultInfillPercent, params.InfillPercent)
	assert.Equal(t, domain.DefaultWallLineCount, params.WallLineCount)
	assert.Equal(t, domain.DefaultLayerHeightMM, params.LayerHeightMM)
	assert.Equal(t, domain.DefaultPattern, params.InfillPattern)
}

func TestExtract_UnrecognizedPatternFallsBackToGrid(t *testing.T) {
	params := gcode.New().Extract("; infill_pattern = zigzag\n")
	assert.Equal(t, domain.PatternGrid, params.InfillPattern)
}

func TestExtract_AnnotationsOnlyInComments(t *testing.T) {
	// The key appearing outside a comment must not match.
	params := gcode.New().Extract("M117 infill_percentage = 99\n")
	assert.Equal(t, domain.DefaultInfillPercent, params.InfillPercent)
}

func TestExtract_WithBaseOverrides(t *testing.T) {
	base := domain.PrintParameters{
		InfillPercent: 35,
		WallLineCount: 5,
		LayerHeightMM: 0.12,
		InfillPattern: domain.PatternTriangles,
	}

	params := gcode.NewWithBase(base).Extract("; wall_line_count = 2\n")

	assert.Equal(t, 35.0, params.InfillPercent)
	assert.Equal(t, 2, params.WallLineCount)
	assert.Equal(t, 0.12, params.LayerHeightMM)
	assert.Equal(t, domain.PatternTriangles, params.InfillPattern)
}
