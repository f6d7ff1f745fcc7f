package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/FeMonky/Impact-Prognasticator/internal/adapters/inbound/cli"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureFile = "../../../../testdata/feder_mask.gcode"

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := runCmd(t, "analyze", fixtureFile,
		"--material", "PLA", "--impact", "FEDER (FULL_STRIKE)", "--json", "--no-log")
	require.NoError(t, err)

	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, 40.0, result.Parameters.InfillPercent)
	assert.Equal(t, domain.PatternGyroid, result.Parameters.InfillPattern)
	assert.InDelta(t, 201.5, result.ResistanceScore, 1e-9)
	assert.Equal(t, domain.VerdictDamaged, result.Verdict)
}

func TestAnalyzeCommand_DefaultTUI(t *testing.T) {
	out, err := runCmd(t, "analyze", fixtureFile,
		"--material", "PLA", "--impact", "FEDER (FULL_STRIKE)", "--no-log")
	require.NoError(t, err)

	assert.Contains(t, out, "impact prognosticator")
	assert.Contains(t, out, "LIKELY TO BE COMPROMISED")
}

func TestAnalyzeCommand_UnknownMaterial(t *testing.T) {
	_, err := runCmd(t, "analyze", fixtureFile,
		"--material", "UNKNOWTANIUM", "--no-log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWTANIUM")
}

func TestAnalyzeCommand_UnknownImpact(t *testing.T) {
	_, err := runCmd(t, "analyze", fixtureFile,
		"--material", "PLA", "--impact", "ASTEROID_IMPACT", "--no-log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ASTEROID_IMPACT")
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	_, err := runCmd(t, "analyze", "nope.gcode", "--material", "PLA", "--no-log")
	assert.Error(t, err)
}

func TestMaterialsCommand(t *testing.T) {
	out, err := runCmd(t, "materials")
	require.NoError(t, err)
	assert.Contains(t, out, "PLA")
	assert.Contains(t, out, "TPU")
}

func TestImpactsCommand(t *testing.T) {
	out, err := runCmd(t, "impacts")
	require.NoError(t, err)
	assert.Contains(t, out, "FEDER (FULL_STRIKE)")
	assert.Contains(t, out, "CRUSH (MODERATE)")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "prognosticator")
}
