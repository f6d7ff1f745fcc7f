package scoring

import (
	"testing"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/stretchr/testify/assert"
)

// Ties at a threshold resolve to the lower-severity band.
func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  domain.Verdict
	}{
		{2.0, domain.VerdictSurvives},
		{1.5, domain.VerdictSurvives},
		{1.49, domain.VerdictDamaged},
		{1.0, domain.VerdictDamaged},
		{0.8, domain.VerdictDamaged},
		{0.79, domain.VerdictShatters},
		{0.0, domain.VerdictShatters},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestPatternMultiplier_UnknownRatesAsGrid(t *testing.T) {
	assert.Equal(t, 1.0, PatternMultiplier(domain.Pattern("ZIGZAG")))
	assert.Equal(t, 1.3, PatternMultiplier(domain.PatternGyroid))
}
