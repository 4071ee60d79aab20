package cli

import (
	"github.com/spf13/cobra"
)

var rerunIfChangedCmd = &cobra.Command{
	Use:   "rerun-if-changed <path>...",
	Short: "Emit a rerun-if-changed directive for each path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := nativeArgs(args)
		if err != nil {
			return err
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		for _, p := range paths {
			eng.EmitRerunIfChanged(p)
		}
		return nil
	},
}

var rerunIfProjectChangedCmd = &cobra.Command{
	Use:   "rerun-if-project-changed",
	Short: "Emit a rerun-if-changed directive for the project root",
	Long: `Emit a rerun-if-changed directive for the project root, so the build
script reruns when anything in the project changes.

The project root is the directory holding Cargo.lock or a workspace
manifest, or else the nearest directory holding Cargo.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		return eng.EmitRerunIfProjectChanged(cmd.Context())
	},
}
