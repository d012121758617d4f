package subtitle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mgpai22/srtool/internal/timecode"
)

// cue timing line; cue settings after the end time are dropped
var vttTimingRegex = regexp.MustCompile(
	`^(\d{2}:\d{2}:\d{2}\.\d{3}) --> (\d{2}:\d{2}:\d{2}\.\d{3})`,
)

type vttState int

const (
	seekingCue vttState = iota
	inCue
)

// ParseVTT reads the cues of a WebVTT document.
//
// A timing line always starts a new cue and flushes the previous one, even
// if it had no text. A blank line ends the cue text; identifiers, NOTE and
// STYLE blocks and anything else seen outside a cue are discarded.
func ParseVTT(text string) (*Subtitle, error) {
	var entries []Entry
	var current *Entry
	var textLines []string
	state := seekingCue

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

		if trimmed == "WEBVTT" {
			continue
		}

		if m := vttTimingRegex.FindStringSubmatch(line); m != nil {
			flush()

			startTime, err := timecode.Parse(m[1], timecode.VTT)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid start timestamp at line %d: %w",
					lineNum,
					err,
				)
			}
			endTime, err := timecode.Parse(m[2], timecode.VTT)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid end timestamp at line %d: %w",
					lineNum,
					err,
				)
			}

			current = &Entry{
				Index:     len(entries) + 1,
				StartTime: startTime,
				EndTime:   endTime,
			}
			state = inCue
			continue
		}

		switch state {
		case inCue:
			if trimmed == "" {
				state = seekingCue
				continue
			}
			textLines = append(textLines, line)
		case seekingCue:
			// preamble, cue identifiers, NOTE and STYLE bodies
		}
	}

	flush()

	return &Subtitle{Entries: entries, Format: string(FormatVTT)}, nil
}

// VTTToSRT converts a WebVTT document to SubRip text.
func VTTToSRT(text string) (string, error) {
	sub, err := ParseVTT(text)
	if err != nil {
		return "", err
	}
	return RenderSRT(sub), nil
}
