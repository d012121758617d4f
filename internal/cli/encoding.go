package cli

import (
	"fmt"

	"github.com/mgpai22/srtool/internal/charset"
	"github.com/mgpai22/srtool/internal/subtitle"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [subtitle_file]",
	Short: "Detect the text encoding of a subtitle file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

var utf8Cmd = &cobra.Command{
	Use:   "utf8 [subtitle_file]",
	Short: "Convert a subtitle file to UTF-8",
	Long: `Detect the encoding of a subtitle file and rewrite it as UTF-8 without a
byte order mark.

If the detected charset cannot decode the file, --decode-mode decides what
happens: "fallback" retries as ISO-8859-1, "permissive" substitutes U+FFFD
for undecodable bytes, and "strict" fails.

Examples:
  srtool utf8 movie.srt
  srtool utf8 movie.srt --from windows-1252
  srtool utf8 movie.srt --decode-mode permissive -o clean.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runUTF8,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(utf8Cmd)

	utf8Cmd.Flags().
		String("from", "", "Source charset, overriding detection (e.g. windows-1252, shift_jis)")
	utf8Cmd.Flags().
		Bool("force", false, "Rewrite even if the file is already UTF-8")
}

func runDetect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	guess := charset.Detect(data)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Detected encoding: %s (confidence: %.2f)\n", guess.Name, guess.Confidence)
	if guess.Language != "" {
		fmt.Fprintf(out, "  Language: %s\n", guess.Language)
	}
	if charset.NeedsConversion(guess.Name) {
		fmt.Fprintln(out, "  Not UTF-8: run 'srtool utf8' to convert")
	} else {
		fmt.Fprintln(out, "  Already UTF-8")
	}
	return nil
}

func runUTF8(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	from, _ := cmd.Flags().GetString("from")
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	guess := charset.Detect(data)
	fmt.Fprintf(out, "Detected encoding: %s (confidence: %.2f)\n", guess.Name, guess.Confidence)

	if from == "" && !force && !charset.NeedsConversion(guess.Name) {
		fmt.Fprintln(out, "Already UTF-8, nothing to do")
		return nil
	}

	declared := guess.Name
	if from != "" {
		declared = from
	}

	outputPath := outputPathFor(inputPath, subtitle.UTF8Policy())

	logger.Infow("Converting to UTF-8",
		"input", inputPath,
		"output", outputPath,
		"charset", declared,
		"mode", cfg.DecodeMode,
	)

	res, err := charset.Decode(data, declared, cfg.DecodeMode)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	switch res.Tier {
	case charset.TierLatin1:
		fmt.Fprintf(out, "Could not decode as %s, used ISO-8859-1 fallback\n", declared)
	case charset.TierReplacement:
		fmt.Fprintf(out, "Could not decode as %s, replaced undecodable bytes with U+FFFD\n", declared)
	}

	if err := subtitle.WriteFile(outputPath, string(charset.EncodeUTF8(res.Text))); err != nil {
		return err
	}

	printWritten(out, outputPath)
	return nil
}
