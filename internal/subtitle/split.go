package subtitle

import (
	"fmt"
	"strings"
)

// block of an SRT document as written, without its index line
type rawBlock struct {
	timing string
	lines  []string
}

// splitBlocks cuts an SRT document on blank-line separators.
func splitBlocks(text string) ([]rawBlock, error) {
	text = strings.Join(splitLines(text), "\n")

	var blocks []rawBlock
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.Split(chunk, "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf(
				"%w: block %d has no timing line: %q",
				ErrFormat,
				len(blocks)+1,
				chunk,
			)
		}
		blocks = append(blocks, rawBlock{timing: lines[1], lines: lines[2:]})
	}

	return blocks, nil
}

func renderBlocks(blocks []rawBlock) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeBlock(&sb, i+1, b.timing, b.lines)
	}
	return sb.String()
}

// CountBlocks returns the number of blocks SplitDocument would see.
func CountBlocks(text string) (int, error) {
	blocks, err := splitBlocks(text)
	if err != nil {
		return 0, err
	}
	return len(blocks), nil
}

// SplitDocument puts the first after blocks of an SRT document in part1 and
// the rest in part2, numbering each part from 1. If after is at least the
// block count part2 is empty.
func SplitDocument(text string, after int) (string, string, error) {
	if after < 1 {
		return "", "", fmt.Errorf(
			"%w: split index must be at least 1, got %d",
			ErrRange,
			after,
		)
	}

	blocks, err := splitBlocks(text)
	if err != nil {
		return "", "", err
	}

	if after > len(blocks) {
		after = len(blocks)
	}

	return renderBlocks(blocks[:after]), renderBlocks(blocks[after:]), nil
}
