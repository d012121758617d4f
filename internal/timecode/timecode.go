package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalid reports a timestamp or delta that does not match its grammar.
var ErrInvalid = errors.New("invalid timestamp")

// textual form of a timestamp
type Form int

const (
	// HH:MM:SS,mmm
	SRT Form = iota
	// HH:MM:SS.mmm
	VTT
	// H:MM:SS.cc
	SSA
)

func (f Form) String() string {
	switch f {
	case SRT:
		return "SRT"
	case VTT:
		return "VTT"
	case SSA:
		return "SSA"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Max is the largest representable timestamp. Shifts saturate here so output
// always fits the two digit hour field.
const Max = 99*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond

var patterns = map[Form]*regexp.Regexp{
	SRT: regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`),
	VTT: regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})$`),
	SSA: regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})\.(\d{2})$`),
}

// Parse reads s in the given form. Minutes or seconds of 60 or more are
// rejected rather than clamped.
func Parse(s string, form Form) (time.Duration, error) {
	re, ok := patterns[form]
	if !ok {
		return 0, fmt.Errorf("unsupported timestamp form: %s", form)
	}

	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not %s form", ErrInvalid, s, form)
	}

	// the grammar guarantees digits, so Atoi cannot fail
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	secs, _ := strconv.Atoi(m[3])
	frac, _ := strconv.Atoi(m[4])

	if mins >= 60 || secs >= 60 {
		return 0, fmt.Errorf(
			"%w: %q has minutes or seconds out of range",
			ErrInvalid,
			s,
		)
	}

	// centiseconds
	if form == SSA {
		frac *= 10
	}

	return time.Duration(h)*time.Hour +
		time.Duration(mins)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(frac)*time.Millisecond, nil
}

// Format writes d in SRT or VTT form. Sub-millisecond precision is
// truncated and d is clamped to [0, Max].
func Format(d time.Duration, form Form) string {
	d = clamp(d)

	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000

	sep := ","
	if form == VTT {
		sep = "."
	}

	return fmt.Sprintf(
		"%02d:%02d:%02d%s%03d",
		hours, minutes, seconds, sep, millis,
	)
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > Max {
		return Max
	}
	return d
}
