package timecode

import (
	"fmt"
	"strings"
	"time"
)

// direction of a shift
type Sign string

const (
	Forward  Sign = "+"
	Backward Sign = "-"
)

func ParseSign(s string) (Sign, error) {
	switch Sign(strings.TrimSpace(s)) {
	case Forward:
		return Forward, nil
	case Backward:
		return Backward, nil
	default:
		return "", fmt.Errorf("invalid shift sign %q: use + or -", s)
	}
}

// Shift moves t by delta in the direction of sign. The result saturates at
// zero and at Max.
func Shift(t, delta time.Duration, sign Sign) time.Duration {
	if delta < 0 {
		delta = -delta
	}
	if sign == Backward {
		return clamp(t - delta)
	}
	return clamp(t + delta)
}

// Difference returns the shift that moves a onto b.
func Difference(a, b time.Duration) (Sign, time.Duration) {
	if b >= a {
		return Forward, b - a
	}
	return Backward, a - b
}

// Setting is a shift direction and magnitude, computed by the delta
// calculator and handed back to the shifter by the caller.
type Setting struct {
	Sign  Sign
	Delta time.Duration
}

// delta in SRT form
func (s Setting) DeltaText() string {
	return Format(s.Delta, SRT)
}

func (s Setting) String() string {
	return string(s.Sign) + s.DeltaText()
}

// ParseSetting reads a sign and an SRT form delta as typed by a user.
func ParseSetting(sign, delta string) (Setting, error) {
	sg, err := ParseSign(sign)
	if err != nil {
		return Setting{}, err
	}
	d, err := Parse(strings.TrimSpace(delta), SRT)
	if err != nil {
		return Setting{}, fmt.Errorf("invalid delta: %w", err)
	}
	return Setting{Sign: sg, Delta: d}, nil
}

// ComputeDelta returns the setting that shifts timestamp a (original) onto
// timestamp b (desired). Both are in SRT form.
func ComputeDelta(a, b string) (Setting, error) {
	ta, err := Parse(strings.TrimSpace(a), SRT)
	if err != nil {
		return Setting{}, fmt.Errorf("invalid original time: %w", err)
	}
	tb, err := Parse(strings.TrimSpace(b), SRT)
	if err != nil {
		return Setting{}, fmt.Errorf("invalid desired time: %w", err)
	}

	sign, delta := Difference(ta, tb)
	return Setting{Sign: sign, Delta: delta}, nil
}
