package charset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
)

const (
	UTF8    = "utf-8"
	UTF8SIG = "utf-8-sig"
	Unknown = "unknown"
)

// best-guess charset of a byte buffer
type Guess struct {
	Name       string
	Confidence float64
	Language   string
}

var bomNames = map[utfbom.Encoding]string{
	utfbom.UTF8:              UTF8SIG,
	utfbom.UTF16LittleEndian: "utf-16le",
	utfbom.UTF16BigEndian:    "utf-16be",
	utfbom.UTF32LittleEndian: "utf-32le",
	utfbom.UTF32BigEndian:    "utf-32be",
}

// Detect guesses the charset of data. A byte order mark or valid UTF-8 is
// reported with full confidence; anything else is ranked by chardet.
func Detect(data []byte) Guess {
	_, enc := utfbom.Skip(bytes.NewReader(data))
	if name, ok := bomNames[enc]; ok {
		return Guess{Name: name, Confidence: 1}
	}

	if utf8.Valid(data) {
		return Guess{Name: UTF8, Confidence: 1}
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil {
		return Guess{Name: Unknown}
	}

	// data is known not to be UTF-8 at this point
	for _, r := range results {
		if strings.EqualFold(r.Charset, "UTF-8") {
			continue
		}
		return Guess{
			Name:       r.Charset,
			Confidence: float64(r.Confidence) / 100,
			Language:   r.Language,
		}
	}

	return Guess{Name: Unknown}
}

// NeedsConversion reports whether text in the named charset has to be
// converted before it is UTF-8.
func NeedsConversion(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case UTF8, UTF8SIG:
		return false
	default:
		return true
	}
}
