package subtitle

import (
	"fmt"
	"strings"
	"time"

	"github.com/mgpai22/srtool/internal/timecode"
)

// ShiftDocument moves every SRT timing line in text by delta. All other
// lines, and anything after the two timestamps on a timing line, are kept
// as they are. Results saturate at 00:00:00,000 and timecode.Max.
func ShiftDocument(
	text string,
	sign timecode.Sign,
	delta time.Duration,
) (string, error) {
	if sign != timecode.Forward && sign != timecode.Backward {
		return "", fmt.Errorf("invalid shift sign %q: use + or -", sign)
	}

	lines := splitLines(text)
	out := make([]string, len(lines))

	for i, line := range lines {
		m := srtTimingRegex.FindStringSubmatch(line)
		if m == nil {
			out[i] = line
			continue
		}

		start, err := timecode.Parse(m[1], timecode.SRT)
		if err != nil {
			return "", fmt.Errorf(
				"invalid start timestamp at line %d: %w",
				i+1,
				err,
			)
		}
		end, err := timecode.Parse(m[2], timecode.SRT)
		if err != nil {
			return "", fmt.Errorf(
				"invalid end timestamp at line %d: %w",
				i+1,
				err,
			)
		}

		out[i] = timecode.Format(timecode.Shift(start, delta, sign), timecode.SRT) +
			" --> " +
			timecode.Format(timecode.Shift(end, delta, sign), timecode.SRT) +
			m[3]
	}

	return strings.Join(out, "\n"), nil
}

// ShiftWith applies a setting produced by timecode.ComputeDelta or
// timecode.ParseSetting.
func ShiftWith(text string, s timecode.Setting) (string, error) {
	return ShiftDocument(text, s.Sign, s.Delta)
}
