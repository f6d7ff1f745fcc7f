package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FeMonky/Impact-Prognasticator/internal/adapters/outbound/tui"
)

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List supported print materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMaterials())
			return nil
		},
	}
}

func newImpactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impacts",
		Short: "List impact presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderImpacts())
			return nil
		},
	}
}
