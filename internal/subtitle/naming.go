package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtool/internal/timecode"
)

// NamePolicy derives an output filename from an input filename by adding a
// suffix before the extension and optionally swapping the extension.
type NamePolicy struct {
	Suffix    string
	Extension string
}

func (p NamePolicy) Apply(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if p.Extension != "" {
		ext = p.Extension
	}
	return base + p.Suffix + ext
}

func UTF8Policy() NamePolicy {
	return NamePolicy{Suffix: "_utf8"}
}

// _shifted_ followed by the sign and the delta digits, e.g. _shifted_+000001000
func ShiftPolicy(s timecode.Setting) NamePolicy {
	digits := strings.NewReplacer(":", "", ",", "").Replace(s.DeltaText())
	return NamePolicy{Suffix: "_shifted_" + string(s.Sign) + digits}
}

func PartPolicy(part int) NamePolicy {
	return NamePolicy{Suffix: fmt.Sprintf("_part%d", part)}
}

// output name for converting a file of the given format to SRT
func ConvertPolicy(format Format) NamePolicy {
	if format == FormatSRT {
		return NamePolicy{Suffix: "_renumbered"}
	}
	return NamePolicy{Extension: ".srt"}
}
