package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtool/internal/subtitle"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [subtitle_file]",
	Short: "Split an SRT file into two reindexed parts",
	Long: `Split an SRT file after the given block and write both parts, each
numbered from 1. If --after is not less than the number of blocks the second
part is empty.

With --output the parts are written to that directory.

Examples:
  srtool split movie.srt --after 450
  srtool split movie.srt --after 450 -o parts/`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().
		Int("after", 0, "Split after this block number (1-based, required)")
	_ = splitCmd.MarkFlagRequired("after")
}

func partPath(input string, part int) string {
	path := subtitle.PartPolicy(part).Apply(input)
	if cfg.Output != "" {
		return filepath.Join(cfg.Output, filepath.Base(path))
	}
	return path
}

func runSplit(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	after, _ := cmd.Flags().GetInt("after")

	if after < 1 {
		return fmt.Errorf("--after must be at least 1, got %d", after)
	}

	text, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	total, err := subtitle.CountBlocks(text)
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	part1, part2, err := subtitle.SplitDocument(text, after)
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	if after >= total {
		logger.Warnw("Split index is past the last block, second part is empty",
			"after", after,
			"blocks", total,
		)
	}

	path1 := partPath(inputPath, 1)
	path2 := partPath(inputPath, 2)

	logger.Infow("Splitting subtitle file",
		"input", inputPath,
		"blocks", total,
		"after", after,
		"part1", path1,
		"part2", path2,
	)

	if err := subtitle.WriteFile(path1, part1); err != nil {
		return err
	}
	if err := subtitle.WriteFile(path2, part2); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printWritten(out, path1)
	printWritten(out, path2)
	return nil
}
