package domain

import "time"

// ParameterExtractor derives print parameters from raw G-code text.
type ParameterExtractor interface {
	Extract(content string) PrintParameters
}

// LogRecord is one row of the append-only analysis log. FileName is the base
// name of the analyzed G-code file; Timestamp is supplied by the caller, not
// the scoring core.
type LogRecord struct {
	Timestamp time.Time
	FileName  string
	Result    AnalysisResult
}

// AnalysisLogger appends analysis results to persistent tabular storage.
type AnalysisLogger interface {
	Append(rec LogRecord) error
}

// ConfigLoader reads the optional project configuration.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
