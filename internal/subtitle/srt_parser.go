package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mgpai22/srtool/internal/timecode"
)

// two SRT timestamps at the start of a line; anything after is captured
var srtTimingRegex = regexp.MustCompile(
	`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})(.*)$`,
)

const (
	srtExpectIndex = iota
	srtExpectTiming
	srtExpectText
)

// ParseSRT reads a SubRip document. The index line of a block is optional;
// numbering from the source is not kept.
func ParseSRT(text string) (*Subtitle, error) {
	var entries []Entry
	var current *Entry
	var textLines []string
	stage := srtExpectIndex

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.Join(textLines, "\n")
		entries = append(entries, *current)
		current = nil
		textLines = nil
	}

	for i, line := range splitLines(text) {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		switch stage {
		case srtExpectIndex:
			if trimmed == "" {
				continue
			}
			if _, err := strconv.Atoi(trimmed); err == nil {
				stage = srtExpectTiming
				continue
			}
			if !srtTimingRegex.MatchString(trimmed) {
				return nil, fmt.Errorf(
					"%w: expected cue index at line %d, got %q",
					ErrFormat,
					lineNum,
					line,
				)
			}
			fallthrough
		case srtExpectTiming:
			entry, err := parseSRTTiming(trimmed, lineNum)
			if err != nil {
				return nil, err
			}
			current = &entry
			stage = srtExpectText
		case srtExpectText:
			if trimmed == "" {
				flush()
				stage = srtExpectIndex
				continue
			}
			textLines = append(textLines, line)
		}
	}

	if stage == srtExpectTiming {
		return nil, fmt.Errorf("%w: cue index without timing", ErrFormat)
	}
	flush()

	for i := range entries {
		entries[i].Index = i + 1
	}

	return &Subtitle{Entries: entries, Format: string(FormatSRT)}, nil
}

func parseSRTTiming(line string, lineNum int) (Entry, error) {
	m := srtTimingRegex.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf(
			"%w: invalid timing at line %d: %q",
			ErrFormat,
			lineNum,
			line,
		)
	}

	start, err := timecode.Parse(m[1], timecode.SRT)
	if err != nil {
		return Entry{}, fmt.Errorf(
			"invalid start timestamp at line %d: %w",
			lineNum,
			err,
		)
	}
	end, err := timecode.Parse(m[2], timecode.SRT)
	if err != nil {
		return Entry{}, fmt.Errorf(
			"invalid end timestamp at line %d: %w",
			lineNum,
			err,
		)
	}

	return Entry{StartTime: start, EndTime: end}, nil
}
