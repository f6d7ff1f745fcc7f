package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configloader "github.com/FeMonky/Impact-Prognasticator/internal/adapters/outbound/config"
	"github.com/FeMonky/Impact-Prognasticator/internal/adapters/outbound/csvlog"
	"github.com/FeMonky/Impact-Prognasticator/internal/adapters/outbound/tui"
	"github.com/FeMonky/Impact-Prognasticator/internal/application"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain/gcode"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		material    string
		impactLevel string
		jsonOutput  bool
		noLog       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <gcode-file>",
		Short: "Analyze a G-code file's impact resistance",
		Long: "Extract infill, wall and layer settings from a G-code file and score the " +
			"print's resistance against an impact preset.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configloader.New().Load(filepath.Dir(absPath))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			var logger domain.AnalysisLogger
			if !noLog && !cfg.DisableLog {
				logger = csvlog.New(cfg.LogPath)
			}

			svc := application.NewAnalyzeService(
				gcode.NewWithBase(cfg.BaseParameters()),
				logger,
			)

			result, err := svc.AnalyzeFile(absPath, material, impactLevel)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(filepath.Base(absPath), result))
			return nil
		},
	}

	cmd.Flags().StringVar(&material, "material", "PLA", "Print material (see `prognosticator materials`)")
	cmd.Flags().StringVar(&impactLevel, "impact", domain.DefaultImpactLevel, "Impact preset (see `prognosticator impacts`)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Skip appending to the CSV log")

	return cmd
}
