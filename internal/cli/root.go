// Package cli defines the cobra command tree for omnicopy.
//
// Commands only parse flags and format output; resolution, copying, and
// directive emission are delegated to the engine. Standard output is the
// build tool's directive channel, so human-readable status goes to stderr.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/omnicopy/internal/config"
)

var (
	// Global flags
	jsonOutput bool
	verbose    bool
	matchMode  string

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for omnicopy.
var rootCmd = &cobra.Command{
	Use:     "omnicopy",
	Version: "dev",
	Short:   "Copy build resources next to compiled artifacts",
	Long: `omnicopy copies files and directories into the artifact directory of the
current cargo build, from inside a build script.

It infers the output directory from PROFILE, TARGET, OUT_DIR and
CARGO_TARGET_DIR, covering host builds, --target builds, and workspaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// commandGroups lists the help sections in display order.
var commandGroups = []*cobra.Group{
	{ID: "copy-operations", Title: "Copy Operations:"},
	{ID: "build-directives", Title: "Build Directives:"},
	{ID: "cli-tooling", Title: "CLI & Tooling:"},
}

// buildEnvironment is shown in the root help. Cargo sets all but the last.
var buildEnvironment = [][2]string{
	{config.VarProfile, "profile directory name, unless --profile is given"},
	{config.VarTarget, "target triple looked for in OUT_DIR"},
	{config.VarOutDir, "build script output directory, decides host or target layout"},
	{config.VarTargetDir, "artifact root override, used verbatim"},
	{"OMNICOPY_MATCH", "default for --match"},
}

// helpFunc prints grouped commands with colored titles. The root command
// also lists the environment it reads.
func helpFunc(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()

	if cmd.Long != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", cmd.Long)
	}
	_, _ = fmt.Fprintf(w, "%s\n  %s\n\n", sectionTitleColor.Sprint("Usage:"), cmd.UseLine())

	for _, group := range cmd.Groups() {
		_, _ = fmt.Fprintln(w, groupTitleColor.Sprint(group.Title))
		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && c.IsAvailableCommand() {
				_, _ = fmt.Fprintf(w, "  %-26s %s\n", c.Name(), c.Short)
			}
		}
		_, _ = fmt.Fprintln(w)
	}

	var ungrouped []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && c.IsAvailableCommand() {
			ungrouped = append(ungrouped, c)
		}
	}
	if len(ungrouped) > 0 {
		_, _ = fmt.Fprintln(w, sectionTitleColor.Sprint("Commands:"))
		for _, c := range ungrouped {
			_, _ = fmt.Fprintf(w, "  %-26s %s\n", c.Name(), c.Short)
		}
		_, _ = fmt.Fprintln(w)
	}

	if !cmd.HasParent() {
		_, _ = fmt.Fprintln(w, sectionTitleColor.Sprint("Environment:"))
		for _, v := range buildEnvironment {
			_, _ = fmt.Fprintf(w, "  %-26s %s\n", v[0], v[1])
		}
		_, _ = fmt.Fprintln(w)
	}

	if flags := cmd.LocalFlags().FlagUsages() + cmd.InheritedFlags().FlagUsages(); flags != "" {
		_, _ = fmt.Fprintf(w, "%s\n%s\n", sectionTitleColor.Sprint("Flags:"), flags)
	}

	if cmd.HasAvailableSubCommands() {
		_, _ = fmt.Fprintf(w, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}
}

// addGrouped registers commands under a help group.
func addGrouped(groupID string, cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.GroupID = groupID
		rootCmd.AddCommand(c)
	}
}

func init() {
	rootCmd.SetHelpFunc(helpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log resolution details to stderr")
	rootCmd.PersistentFlags().StringVar(&matchMode, "match", string(config.MatchSegment),
		"Compile-kind matching against OUT_DIR (segment or substring)")

	rootCmd.AddGroup(commandGroups...)
	rootCmd.SetHelpCommandGroupID("cli-tooling")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the omnicopy CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}

	addGrouped("copy-operations", copyCmd, resolveCmd)
	addGrouped("build-directives", rerunIfChangedCmd, rerunIfProjectChangedCmd)
	addGrouped("cli-tooling", versionCmd, completionCmd)
}

// Execute executes the root command. SIGINT and SIGTERM cancel the context
// between copied sources.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}
