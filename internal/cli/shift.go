package cli

import (
	"fmt"

	"github.com/mgpai22/srtool/internal/subtitle"
	"github.com/mgpai22/srtool/internal/timecode"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Shift all timestamps of an SRT file",
	Long: `Move every timing line of an SRT file by a fixed delta. Timestamps that
would go below 00:00:00,000 stop at zero.

The delta is given either directly with --sign and --delta, or computed from
an original timestamp (--from) and the time it should appear at (--to).

Examples:
  srtool shift movie.srt --delta 00:00:02,500
  srtool shift movie.srt --sign - --delta 00:00:01,000
  srtool shift movie.srt --from 00:01:10,000 --to 00:01:07,250`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

var deltaCmd = &cobra.Command{
	Use:   "delta [original_time] [desired_time]",
	Short: "Compute the shift that moves one timestamp onto another",
	Long: `Print the sign and delta that move original_time onto desired_time.
Both are in HH:MM:SS,mmm form.

Example:
  srtool delta 00:00:01,000 00:00:03,500`,
	Args: cobra.ExactArgs(2),
	RunE: runDelta,
}

func init() {
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(deltaCmd)

	shiftCmd.Flags().
		String("sign", "+", "Shift direction (+ or -)")
	shiftCmd.Flags().
		String("delta", "00:00:01,000", "Time delta (HH:MM:SS,mmm)")
	shiftCmd.Flags().
		String("from", "", "Original timestamp to compute the delta from (HH:MM:SS,mmm)")
	shiftCmd.Flags().
		String("to", "", "Desired timestamp for --from (HH:MM:SS,mmm)")
	shiftCmd.MarkFlagsRequiredTogether("from", "to")
}

// shiftSetting reads the shift from flags; --from/--to take precedence
func shiftSetting(cmd *cobra.Command) (timecode.Setting, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from != "" || to != "" {
		return timecode.ComputeDelta(from, to)
	}

	sign, _ := cmd.Flags().GetString("sign")
	delta, _ := cmd.Flags().GetString("delta")
	return timecode.ParseSetting(sign, delta)
}

func runShift(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	setting, err := shiftSetting(cmd)
	if err != nil {
		return err
	}

	outputPath := outputPathFor(inputPath, subtitle.ShiftPolicy(setting))

	logger.Infow("Shifting timestamps",
		"input", inputPath,
		"output", outputPath,
		"shift", setting.String(),
	)

	text, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	shifted, err := subtitle.ShiftWith(text, setting)
	if err != nil {
		return fmt.Errorf("shift failed: %w", err)
	}

	if err := subtitle.WriteFile(outputPath, shifted); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printWritten(out, outputPath)
	fmt.Fprintf(out, "  Shift: %s\n", setting)
	return nil
}

func runDelta(cmd *cobra.Command, args []string) error {
	setting, err := timecode.ComputeDelta(args[0], args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sign: %s\n", setting.Sign)
	fmt.Fprintf(out, "Delta: %s\n", setting.DeltaText())
	return nil
}
