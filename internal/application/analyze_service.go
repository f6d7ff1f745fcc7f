package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain/scoring"
)

// AnalyzeService orchestrates one analysis:
// read file → extract parameters → score → append log entry.
type AnalyzeService struct {
	extractor domain.ParameterExtractor
	logger    domain.AnalysisLogger
	now       func() time.Time
}

// NewAnalyzeService wires an extractor and a logger. logger may be nil when
// logging is disabled.
func NewAnalyzeService(extractor domain.ParameterExtractor, logger domain.AnalysisLogger) *AnalyzeService {
	return &AnalyzeService{
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
	}
}

// AnalyzeFile reads a G-code file from disk and analyzes it.
func (s *AnalyzeService) AnalyzeFile(path, material, impactLevel string) (*domain.AnalysisResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading G-code file: %w", err)
	}
	return s.AnalyzeContent(filepath.Base(path), string(content), material, impactLevel)
}

// AnalyzeContent analyzes raw G-code text. fileName is only recorded in the
// log. The log append is best-effort: a failed write never fails the
// analysis, matching the tool's append-only, advisory log.
func (s *AnalyzeService) AnalyzeContent(fileName, content, material, impactLevel string) (*domain.AnalysisResult, error) {
	params := s.extractor.Extract(content)

	result, err := scoring.Score(params, material, impactLevel)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		_ = s.logger.Append(domain.LogRecord{
			Timestamp: s.now(),
			FileName:  fileName,
			Result:    *result,
		})
	}

	return result, nil
}
