package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgpai22/srtool/internal/charset"
	"github.com/mgpai22/srtool/internal/subtitle"
)

func readInput(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("subtitle file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// reads a subtitle file and decodes it to text with the detected charset
func readDocument(path string) (string, error) {
	data, err := readInput(path)
	if err != nil {
		return "", err
	}

	guess := charset.Detect(data)
	logger.Debugw("Detected encoding",
		"input", path,
		"charset", guess.Name,
		"confidence", guess.Confidence,
	)

	res, err := charset.Decode(data, guess.Name, cfg.DecodeMode)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if res.Fallback() {
		logger.Warnw("Detected charset could not decode input",
			"input", path,
			"detected", guess.Name,
			"used", res.Charset,
			"tier", res.Tier.String(),
		)
	}

	return res.Text, nil
}

// output path for a single-output command
func outputPathFor(input string, policy subtitle.NamePolicy) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return policy.Apply(input)
}

func printWritten(out io.Writer, path string) {
	absOutput, err := filepath.Abs(path)
	if err != nil {
		absOutput = path
	}
	fmt.Fprintf(out, "Written: %s\n", absOutput)
}
