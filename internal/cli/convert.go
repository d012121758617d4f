package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtool/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert WebVTT or SSA/ASS subtitles to SRT",
	Long: `Convert a subtitle file to SRT. The input format is taken from the file
extension: .vtt, .ass, or .ssa. An .srt input is renumbered from 1.

Cue settings, identifiers, and SSA override tags such as {\an8} are dropped.

Examples:
  srtool convert movie.vtt
  srtool convert episode.ass -o episode.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format := subtitle.GetFormatFromExtension(inputPath)
	if format == "" {
		return fmt.Errorf(
			"unsupported subtitle format %q: use .vtt, .ass, .ssa, or .srt",
			filepath.Ext(inputPath),
		)
	}

	outputPath := outputPathFor(inputPath, subtitle.ConvertPolicy(format))

	logger.Infow("Converting to SRT",
		"input", inputPath,
		"output", outputPath,
		"format", format,
	)

	text, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	srt, err := subtitle.ToSRT(format, text)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := subtitle.WriteFile(outputPath, srt); err != nil {
		return err
	}

	printWritten(cmd.OutOrStdout(), outputPath)
	return nil
}
