package subtitle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mgpai22/srtool/internal/timecode"
)

var overrideTagRegex = regexp.MustCompile(`\{.*?\}`)

var assTextReplacer = strings.NewReplacer(
	`\N`, "\n",
	`\n`, "\n",
	`\h`, " ",
)

// positions of the columns needed from a Dialogue line
type assColumns struct {
	count int
	start int
	end   int
	text  int
}

// ParseSSA reads the Dialogue events of an SSA/ASS script. Only the
// [Events] section is read and its first Format line decides where Start,
// End and Text are.
func ParseSSA(text string) (*Subtitle, error) {
	var entries []Entry
	var cols *assColumns
	seenEvents := false
	inEventsSection := false

	for i, line := range splitLines(text) {
		lineNum := i + 1
		trimmedLine := strings.TrimSpace(line)

		if strings.HasPrefix(trimmedLine, "[") &&
			strings.HasSuffix(trimmedLine, "]") {
			sectionName := strings.ToLower(
				strings.TrimSuffix(strings.TrimPrefix(trimmedLine, "["), "]"),
			)
			inEventsSection = sectionName == "events"
			if inEventsSection {
				seenEvents = true
			}
			continue
		}

		if !inEventsSection {
			continue
		}

		if content, ok := cutPrefixFold(trimmedLine, "Format:"); ok {
			if cols != nil {
				continue
			}
			c, err := parseFormatLine(content)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			cols = c
			continue
		}

		if content, ok := cutPrefixFold(trimmedLine, "Dialogue:"); ok {
			if cols == nil {
				return nil, fmt.Errorf(
					"%w: Dialogue at line %d before Format line",
					ErrFormat,
					lineNum,
				)
			}
			entry, err := cols.parseDialogue(strings.TrimSpace(content))
			if err != nil {
				return nil, fmt.Errorf(
					"failed to parse Dialogue at line %d: %w",
					lineNum,
					err,
				)
			}
			entry.Index = len(entries) + 1
			entries = append(entries, entry)
		}
	}

	if !seenEvents {
		return nil, fmt.Errorf("%w: missing [Events] section", ErrFormat)
	}
	if cols == nil {
		return nil, fmt.Errorf(
			"%w: missing Format line in [Events] section",
			ErrFormat,
		)
	}

	return &Subtitle{Entries: entries, Format: string(FormatASS)}, nil
}

// SSAToSRT converts an SSA/ASS script to SubRip text.
func SSAToSRT(text string) (string, error) {
	sub, err := ParseSSA(text)
	if err != nil {
		return "", err
	}
	return RenderSRT(sub), nil
}

func parseFormatLine(content string) (*assColumns, error) {
	columns := strings.Split(content, ",")
	cols := &assColumns{count: len(columns), start: -1, end: -1, text: -1}

	for i, col := range columns {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "start":
			cols.start = i
		case "end":
			cols.end = i
		case "text":
			cols.text = i
		}
	}

	var missing []string
	if cols.start == -1 {
		missing = append(missing, "Start")
	}
	if cols.end == -1 {
		missing = append(missing, "End")
	}
	if cols.text == -1 {
		missing = append(missing, "Text")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(
			"%w: Format line missing %s column",
			ErrFormat,
			strings.Join(missing, ", "),
		)
	}

	return cols, nil
}

func (c *assColumns) parseDialogue(content string) (Entry, error) {
	parts := splitASSFields(content, c.count)
	if len(parts) < c.count {
		return Entry{}, fmt.Errorf(
			"%w: expected %d fields, got %d",
			ErrFormat,
			c.count,
			len(parts),
		)
	}

	start, err := timecode.Parse(strings.TrimSpace(parts[c.start]), timecode.SSA)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := timecode.Parse(strings.TrimSpace(parts[c.end]), timecode.SSA)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid end timestamp: %w", err)
	}

	return Entry{
		StartTime: start,
		EndTime:   end,
		Text:      cleanASSText(parts[c.text]),
	}, nil
}

// splits into at most numFields parts; the last part keeps its commas
func splitASSFields(content string, numFields int) []string {
	if numFields <= 0 {
		return nil
	}

	parts := make([]string, 0, numFields)
	remaining := content

	for i := 0; i < numFields-1; i++ {
		idx := strings.Index(remaining, ",")
		if idx == -1 {
			parts = append(parts, remaining)
			return parts
		}
		parts = append(parts, remaining[:idx])
		remaining = remaining[idx+1:]
	}

	parts = append(parts, remaining)

	return parts
}

// drops override tags and turns ASS escapes into plain text. Empty lines are
// removed since a blank line ends an SRT cue.
func cleanASSText(text string) string {
	text = overrideTagRegex.ReplaceAllString(text, "")
	text = assTextReplacer.Replace(text)

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
