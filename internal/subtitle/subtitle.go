package subtitle

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrFormat reports a source document that does not follow its grammar.
	ErrFormat = errors.New("malformed subtitle document")
	// ErrRange reports a split index outside the document.
	ErrRange = errors.New("index out of range")
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// text lines of the entry, none when the text is empty
func (e Entry) Lines() []string {
	if e.Text == "" {
		return nil
	}
	return strings.Split(e.Text, "\n")
}

// represents complete subtitle track
type Subtitle struct {
	Entries []Entry
	Format  string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// splits text into lines with CRLF normalized and a leading BOM removed
func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
