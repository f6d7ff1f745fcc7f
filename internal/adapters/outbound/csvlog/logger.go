// Package csvlog appends analysis results to a tabular CSV log.
package csvlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

// DefaultFileName is the log written next to wherever the tool runs.
const DefaultFileName = "impact_log.csv"

var header = []string{
	"Timestamp", "File", "Material", "Impact Level", "Infill Density",
	"Wall Count", "Layer Height", "Infill Pattern", "Resistance Score",
	"Impact Force", "Verdict",
}

// Logger implements domain.AnalysisLogger with an append-only CSV file. The
// header row is written once, when the file is first created.
type Logger struct {
	path string
}

// New creates a Logger writing to path; an empty path means DefaultFileName
// in the current directory.
func New(path string) *Logger {
	if path == "" {
		path = DefaultFileName
	}
	return &Logger{path: path}
}

// Path returns the log file location.
func (l *Logger) Path() string { return l.path }

// Append writes one record, creating the file and header as needed.
func (l *Logger) Append(rec domain.LogRecord) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csvlog: mkdir: %w", err)
		}
	}

	_, statErr := os.Stat(l.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csvlog: open: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("csvlog: header: %w", err)
		}
	}

	r := rec.Result
	row := []string{
		rec.Timestamp.Format("2006-01-02 15:04:05"),
		rec.FileName,
		r.Material.Name,
		r.Impact.Name,
		fmt.Sprintf("%.0f%%", r.Parameters.InfillPercent),
		fmt.Sprintf("%d", r.Parameters.WallLineCount),
		fmt.Sprintf("%g", r.Parameters.LayerHeightMM),
		string(r.Parameters.InfillPattern),
		fmt.Sprintf("%.2f", r.ResistanceScore),
		fmt.Sprintf("%g", r.Impact.EnergyJ),
		string(r.Verdict),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("csvlog: write: %w", err)
	}

	w.Flush()
	return w.Error()
}
