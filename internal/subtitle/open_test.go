package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mgpai22/srtool/internal/timecode"
)

func TestParseSRT(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

7
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

00:00:10,000 --> 00:00:12,500
Missing index.
`
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("failed to parse SRT: %v", err)
	}

	if len(sub.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub.Entries))
	}

	for i, entry := range sub.Entries {
		if entry.Index != i+1 {
			t.Errorf("entry %d: expected index %d, got %d", i, i+1, entry.Index)
		}
	}

	if sub.Entries[0].StartTime != 1*time.Second {
		t.Errorf(
			"entry 0: expected start 1s, got %v",
			sub.Entries[0].StartTime,
		)
	}
	if sub.Entries[0].EndTime != 4*time.Second {
		t.Errorf("entry 0: expected end 4s, got %v", sub.Entries[0].EndTime)
	}

	expectedText := "This is a test.\nWith multiple lines."
	if sub.Entries[1].Text != expectedText {
		t.Errorf(
			"entry 1: expected %q, got %q",
			expectedText,
			sub.Entries[1].Text,
		)
	}

	if sub.Entries[2].Text != "Missing index." {
		t.Errorf("entry 2: expected 'Missing index.', got %q", sub.Entries[2].Text)
	}
}

func TestParseSRTRejectsGarbage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text before first cue", "hello\n00:00:01,000 --> 00:00:02,000\nHi\n"},
		{"index without timing", "1\nHi\n"},
		{"dangling index", "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSRT(tt.content)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("expected ErrFormat, got %v", err)
			}
		})
	}
}

func TestParseSRTInvalidTimestamp(t *testing.T) {
	_, err := ParseSRT("1\n00:61:00,000 --> 00:62:00,000\nHi\n")
	if !errors.Is(err, timecode.ErrInvalid) {
		t.Errorf("expected timecode.ErrInvalid, got %v", err)
	}
}

func TestRenderSRT(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Index: 9, StartTime: time.Second, EndTime: 2 * time.Second, Text: "One"},
		{Index: 4, StartTime: 3 * time.Second, EndTime: 4 * time.Second},
		{Index: 1, StartTime: 5 * time.Second, EndTime: 6 * time.Second, Text: "Two\nLines"},
	}}

	want := "1\n00:00:01,000 --> 00:00:02,000\nOne\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\n\n" +
		"3\n00:00:05,000 --> 00:00:06,000\nTwo\nLines\n"

	if got := RenderSRT(sub); got != want {
		t.Errorf("RenderSRT:\ngot  %q\nwant %q", got, want)
	}

	if got := RenderSRT(&Subtitle{}); got != "" {
		t.Errorf("empty subtitle should render empty, got %q", got)
	}
}

func TestToSRTIsIdempotent(t *testing.T) {
	vtt := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello\n\n" +
		"00:00:03.000 --> 00:00:04.000\nWorld\nAgain\n"

	first, err := ToSRT(FormatVTT, vtt)
	if err != nil {
		t.Fatalf("VTT conversion failed: %v", err)
	}

	second, err := ToSRT(FormatSRT, first)
	if err != nil {
		t.Fatalf("SRT pass failed: %v", err)
	}
	if second != first {
		t.Errorf("SRT pass changed content:\ngot  %q\nwant %q", second, first)
	}
}

func TestToSRTRenumbers(t *testing.T) {
	in := "4\n00:00:01,000 --> 00:00:02,000\nA\n\n\n\n9\n00:00:03,000 --> 00:00:04,000\nB\n"
	want := "1\n00:00:01,000 --> 00:00:02,000\nA\n\n2\n00:00:03,000 --> 00:00:04,000\nB\n"

	got, err := ToSRT(FormatSRT, in)
	if err != nil {
		t.Fatalf("ToSRT failed: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToSRTUnsupportedFormat(t *testing.T) {
	_, err := ToSRT(GetFormatFromExtension("test.txt"), "test")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected 'unsupported' in error, got: %v", err)
	}
}

func TestGetFormatFromExtension(t *testing.T) {
	tests := map[string]Format{
		"a.srt":     FormatSRT,
		"A.SRT":     FormatSRT,
		"b.vtt":     FormatVTT,
		"c.ass":     FormatASS,
		"d.ssa":     FormatASS,
		"e.txt":     "",
		"no_suffix": "",
	}
	for path, want := range tests {
		if got := GetFormatFromExtension(path); got != want {
			t.Errorf("GetFormatFromExtension(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.srt")
	if err := WriteFile(path, "1\n00:00:01,000 --> 00:00:02,000\nHi\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(got), "1\n00:00:01,000") {
		t.Errorf("unexpected content %q", got)
	}
}
