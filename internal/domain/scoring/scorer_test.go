package scoring_test

import (
	"testing"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func federMaskParams() domain.PrintParameters {
	return domain.PrintParameters{
		InfillPercent: 40,
		WallLineCount: 4,
		LayerHeightMM: 0.2,
		InfillPattern: domain.PatternGyroid,
	}
}

// The canonical fixture: 40% gyroid, 4 walls, 0.2mm layers, PLA, against a
// full feder strike. Weighted sum 0.62, resistance 201.5, ratio ~1.343.
func TestScore_FederMaskFixture(t *testing.T) {
	result, err := scoring.Score(federMaskParams(), "PLA", "FEDER (FULL_STRIKE)")
	require.NoError(t, err)

	assert.InDelta(t, 201.5, result.ResistanceScore, 1e-9)
	assert.InDelta(t, 201.5/150, result.Ratio, 1e-9)
	assert.Equal(t, domain.VerdictDamaged, result.Verdict)
	assert.Equal(t, "PLA", result.Material.Name)
	assert.Equal(t, 150.0, result.Impact.EnergyJ)
	assert.NotEmpty(t, result.Rationale)
}

func TestScore_DefaultsSurviveMediumStrike(t *testing.T) {
	result, err := scoring.Score(domain.DefaultParameters(), "PLA", "MEDIUM (STRIKE)")
	require.NoError(t, err)

	// 0.2*0.4 + (2/5)*0.5 + 0.6*0.1 = 0.34; 0.34 * 250 = 85; 85/50 = 1.7
	assert.InDelta(t, 85.0, result.ResistanceScore, 1e-9)
	assert.Equal(t, domain.VerdictSurvives, result.Verdict)
}

func TestScore_Deterministic(t *testing.T) {
	a, err := scoring.Score(federMaskParams(), "PETG", "SABER (HEAVY_CUT)")
	require.NoError(t, err)
	b, err := scoring.Score(federMaskParams(), "PETG", "SABER (HEAVY_CUT)")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestScore_UnknownMaterial(t *testing.T) {
	_, err := scoring.Score(domain.DefaultParameters(), "UNKNOWTANIUM", "LOW (DROP)")
	require.Error(t, err)

	var unknownErr *domain.UnknownMaterialError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestScore_UnknownImpactLevel(t *testing.T) {
	_, err := scoring.Score(domain.DefaultParameters(), "PLA", "ASTEROID_IMPACT")
	require.Error(t, err)

	var unknownErr *domain.UnknownImpactLevelError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestScore_MonotonicInWallCount(t *testing.T) {
	params := domain.DefaultParameters()
	var last float64 = -1
	for walls := 0; walls <= 8; walls++ {
		params.WallLineCount = walls
		result, err := scoring.Score(params, "ABS", "MEDIUM (STRIKE)")
		require.NoError(t, err)
		assert.Greater(t, result.ResistanceScore, last, "walls=%d", walls)
		last = result.ResistanceScore
	}
}

func TestScore_MonotonicInInfill(t *testing.T) {
	params := domain.DefaultParameters()
	var last float64 = -1
	for pct := 0.0; pct <= 100; pct += 10 {
		params.InfillPercent = pct
		result, err := scoring.Score(params, "ABS", "MEDIUM (STRIKE)")
		require.NoError(t, err)
		assert.Greater(t, result.ResistanceScore, last, "infill=%v", pct)
		last = result.ResistanceScore
	}
}

func TestScore_ThinnerLayersScoreHigher(t *testing.T) {
	params := domain.DefaultParameters()

	params.LayerHeightMM = 0.1
	thin, err := scoring.Score(params, "PLA", "LOW (DROP)")
	require.NoError(t, err)

	params.LayerHeightMM = 0.3
	thick, err := scoring.Score(params, "PLA", "LOW (DROP)")
	require.NoError(t, err)

	assert.Greater(t, thin.ResistanceScore, thick.ResistanceScore)
}

func TestScore_PatternOrdering(t *testing.T) {
	// Gyroid > cubic > grid > concentric > lines for the same print.
	params := domain.DefaultParameters()
	scores := map[domain.Pattern]float64{}
	for _, p := range []domain.Pattern{
		domain.PatternGyroid, domain.PatternCubic, domain.PatternGrid,
		domain.PatternConcentric, domain.PatternLines,
	} {
		params.InfillPattern = p
		result, err := scoring.Score(params, "PLA", "LOW (DROP)")
		require.NoError(t, err)
		scores[p] = result.ResistanceScore
	}

	assert.Greater(t, scores[domain.PatternGyroid], scores[domain.PatternCubic])
	assert.Greater(t, scores[domain.PatternCubic], scores[domain.PatternGrid])
	assert.Greater(t, scores[domain.PatternGrid], scores[domain.PatternConcentric])
	assert.Greater(t, scores[domain.PatternConcentric], scores[domain.PatternLines])
}

func TestScore_TPUMaterialFactorDominates(t *testing.T) {
	result, err := scoring.Score(domain.DefaultParameters(), "TPU", "LOW (DROP)")
	require.NoError(t, err)

	// TPU: 35 * 30 / 250 = 4.2 against the PLA reference.
	assert.InDelta(t, 4.2, result.Factors.Material, 1e-9)
	assert.Equal(t, domain.FactorMaterial, result.Factors.Dominant())
	assert.Contains(t, result.Rationale, "material")
}

func TestScore_RationaleNamesScenario(t *testing.T) {
	result, err := scoring.Score(domain.DefaultParameters(), "PLA", "CRUSH (MODERATE)")
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictShatters, result.Verdict)
	assert.Contains(t, result.Rationale, "crush")
	assert.Contains(t, result.Rationale, "200")
}
