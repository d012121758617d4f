package cli

import (
	"github.com/mgpai22/srtool/internal/config"
	"github.com/mgpai22/srtool/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "srtool",
	Short: "Subtitle toolkit for encodings, timing, and format conversion",
	Long: `srtool detects and normalizes subtitle text encodings, shifts SRT
timestamps, converts WebVTT and SSA/ASS subtitles to SRT, and splits SRT
files into two parts.

Settings can also be given as SRTOOL_* environment variables or in a YAML
config file ($HOME/.srtool.yaml or --config).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.NewLogger(cfg.Verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolP(config.KeyVerbose, "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP(config.KeyOutput, "o", "", "Output file path (output directory for split)")
	rootCmd.PersistentFlags().
		String(config.KeyDecodeMode, "fallback", "Decoding when the detected charset fails (fallback, strict, permissive)")
	rootCmd.PersistentFlags().
		String(config.KeyConfig, "", "Config file (default $HOME/.srtool.yaml)")
}
