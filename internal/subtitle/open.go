package subtitle

import (
	"fmt"
)

// ToSRT converts a document in the given format to SubRip text. SRT input is
// parsed and written back, which only renumbers it.
func ToSRT(format Format, text string) (string, error) {
	switch format {
	case FormatSRT:
		sub, err := ParseSRT(text)
		if err != nil {
			return "", err
		}
		return RenderSRT(sub), nil
	case FormatVTT:
		return VTTToSRT(text)
	case FormatASS:
		return SSAToSRT(text)
	default:
		return "", fmt.Errorf("unsupported subtitle format: %q", format)
	}
}
