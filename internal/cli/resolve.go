package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/omnicopy/internal/engine"
)

var resolveProfile string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the build output directory",
	Long: `Print the artifact directory copies would land in for the current build.

With --json the compile kind, profile, target triple, and base directory
are included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		res, err := eng.Resolve(cmd.Context(), &engine.ResolveRequest{Profile: profileFlag(cmd)})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), res)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Root)
		return err
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveProfile, "profile", "p", "", "Build profile to resolve for (defaults to $PROFILE)")
}
