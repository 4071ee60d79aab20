package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionShells maps each supported shell to its script generator.
var completionShells = []struct {
	name string
	gen  func(w io.Writer) error
}{
	{"bash", func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) }},
	{"zsh", rootCmd.GenZshCompletion},
	{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
	{"powershell", rootCmd.GenPowerShellCompletionWithDesc},
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate a shell completion script",
	Long: `Generate a completion script for omnicopy.

Source the output from your shell profile, for example:

  omnicopy completion bash > /etc/bash_completion.d/omnicopy`,
}

func init() {
	for _, shell := range completionShells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 "Generate the completion script for " + shell.name,
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
}
