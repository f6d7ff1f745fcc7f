package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/FeMonky/Impact-Prognasticator/internal/adapters/inbound/web"
	configloader "github.com/FeMonky/Impact-Prognasticator/internal/adapters/outbound/config"
	"github.com/FeMonky/Impact-Prognasticator/internal/adapters/outbound/csvlog"
	"github.com/FeMonky/Impact-Prognasticator/internal/application"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
	"github.com/FeMonky/Impact-Prognasticator/internal/domain/gcode"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Long: "Serve the browser form and JSON API. The listen address comes from --addr, " +
			"or PROGNOSTICATOR_ADDR in the environment (a .env file is honored).",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional; absence of a .env file is not an error.
			_ = godotenv.Load()

			if addr == "" {
				addr = os.Getenv("PROGNOSTICATOR_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}

			log := logrus.New()
			if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
				log.SetLevel(lvl)
			}

			cfg, err := configloader.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			var logger domain.AnalysisLogger
			if !cfg.DisableLog {
				logger = csvlog.New(cfg.LogPath)
			}

			svc := application.NewAnalyzeService(
				gcode.NewWithBase(cfg.BaseParameters()),
				logger,
			)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return web.NewServer(svc, log).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default :8080)")

	return cmd
}
