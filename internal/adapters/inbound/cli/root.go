package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prognosticator",
		Short: "Estimate whether a 3D print survives an impact",
		Long: "The Impact Prognosticator reads slicer settings out of a G-code file and " +
			"estimates, heuristically, whether the printed part survives, is damaged by, " +
			"or shatters under a chosen impact. It is a comparative model, not a substitute " +
			"for real-world testing or FEA.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newMaterialsCmd())
	cmd.AddCommand(newImpactsCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
