package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtool/internal/timecode"
)

// RenderSRT writes the subtitle as SubRip text. Entries are numbered from 1
// in order; the stored Index is ignored.
func RenderSRT(sub *Subtitle) string {
	var sb strings.Builder
	for i, entry := range sub.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		// timestamps: 00:00:00,000 --> 00:00:00,000
		timing := timecode.Format(entry.StartTime, timecode.SRT) +
			" --> " +
			timecode.Format(entry.EndTime, timecode.SRT)
		writeBlock(&sb, i+1, timing, entry.Lines())
	}
	return sb.String()
}

// index line, timing line, then one line per text line
func writeBlock(sb *strings.Builder, index int, timing string, lines []string) {
	fmt.Fprintf(sb, "%d\n%s\n", index, timing)
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

// writes text to path as UTF-8, creating parent directories
func WriteFile(path, text string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension, empty when unsupported
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT
	case ".vtt":
		return FormatVTT
	case ".ass", ".ssa":
		return FormatASS
	default:
		return ""
	}
}
