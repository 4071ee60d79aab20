package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/omnicopy/internal/engine"
	"github.com/danieljhkim/omnicopy/internal/planner"
)

var (
	copyProfile string
	copyWatch   bool
	copyDryRun  bool
)

var copyCmd = &cobra.Command{
	Use:   "copy <path>...",
	Short: "Copy files or directories into the build output directory",
	Long: `Copy files or directories into the artifact directory of the current build.

A directory is copied by its contents. A file is placed inside the output
directory. Existing files are overwritten; an entry whose type differs from
the source is replaced.

The output directory is derived from PROFILE, TARGET, OUT_DIR and
CARGO_TARGET_DIR. Use --watch to emit a rerun-if-changed directive for
every copied source.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := nativeArgs(args)
		if err != nil {
			return err
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		req := &engine.CopyRequest{
			Sources: sources,
			Profile: profileFlag(cmd),
			Watch:   copyWatch,
			DryRun:  copyDryRun,
		}

		result, err := eng.Copy(cmd.Context(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.ErrOrStderr(), newCopySummary(result, copyDryRun))
		}

		w := cmd.ErrOrStderr()
		if copyDryRun {
			PrintSection(w, "Dry run")
			PrintLabelValue(w, "Output", result.Resolution.Root)
			for _, plan := range result.Plans {
				PrintLabelValue(w, "Source", plan.Source)
				for _, op := range plan.Operations {
					PrintOperation(w, op.Type, op.RelPath)
				}
			}
			return nil
		}

		files := 0
		for _, op := range result.Applied {
			if op.Type == planner.OpCopy {
				files++
			}
		}
		PrintSuccess(w, fmt.Sprintf("Copied %d file(s) into %s", files, result.Resolution.Root))
		return nil
	},
}

// copySummary is the --json shape of a copy.
type copySummary struct {
	Root    string              `json:"root"`
	Kind    string              `json:"kind"`
	Profile string              `json:"profile"`
	DryRun  bool                `json:"dryRun"`
	Sources []copySourceSummary `json:"sources"`
}

type copySourceSummary struct {
	Source  string `json:"source"`
	Dirs    int    `json:"dirs"`
	Files   int    `json:"files"`
	Removed int    `json:"removed"`
}

func newCopySummary(result *engine.CopyResult, dryRun bool) copySummary {
	s := copySummary{
		Root:    result.Resolution.Root,
		Kind:    string(result.Resolution.Kind),
		Profile: result.Resolution.Profile,
		DryRun:  dryRun,
		Sources: make([]copySourceSummary, 0, len(result.Plans)),
	}
	for _, plan := range result.Plans {
		s.Sources = append(s.Sources, copySourceSummary{
			Source:  plan.Source,
			Dirs:    plan.Count(planner.OpMkdir),
			Files:   plan.Count(planner.OpCopy),
			Removed: plan.Count(planner.OpRemove),
		})
	}
	return s
}

func init() {
	copyCmd.Flags().StringVarP(&copyProfile, "profile", "p", "", "Build profile to copy for (defaults to $PROFILE)")
	copyCmd.Flags().BoolVarP(&copyWatch, "watch", "w", false, "Emit rerun-if-changed for each source")
	copyCmd.Flags().BoolVar(&copyDryRun, "dry-run", false, "Show what would be copied without making changes")
}
