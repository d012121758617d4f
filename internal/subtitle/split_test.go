package subtitle

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const splitDoc = `5
00:00:01,000 --> 00:00:02,000
First

7
00:00:03,000 --> 00:00:04,000
Second
has two lines

9
00:00:05,000 --> 00:00:06,000
Third
`

func TestSplitDocument(t *testing.T) {
	part1, part2, err := SplitDocument(splitDoc, 1)
	if err != nil {
		t.Fatalf("SplitDocument failed: %v", err)
	}

	want1 := "1\n00:00:01,000 --> 00:00:02,000\nFirst\n"
	want2 := "1\n00:00:03,000 --> 00:00:04,000\nSecond\nhas two lines\n\n" +
		"2\n00:00:05,000 --> 00:00:06,000\nThird\n"

	if part1 != want1 {
		t.Errorf("part1:\ngot  %q\nwant %q", part1, want1)
	}
	if part2 != want2 {
		t.Errorf("part2:\ngot  %q\nwant %q", part2, want2)
	}
}

func TestSplitDocumentPastEnd(t *testing.T) {
	for _, after := range []int{3, 4, 100} {
		t.Run(fmt.Sprint(after), func(t *testing.T) {
			part1, part2, err := SplitDocument(splitDoc, after)
			if err != nil {
				t.Fatalf("SplitDocument failed: %v", err)
			}
			if part2 != "" {
				t.Errorf("expected empty second part, got %q", part2)
			}
			if n, _ := CountBlocks(part1); n != 3 {
				t.Errorf("expected 3 blocks in part1, got %d", n)
			}
		})
	}
}

func TestSplitDocumentBlockCounts(t *testing.T) {
	var sb strings.Builder
	const total = 6
	for i := 0; i < total; i++ {
		fmt.Fprintf(&sb, "%d\n00:00:%02d,000 --> 00:00:%02d,500\nLine %d\n\n", i*2, i, i, i)
	}
	doc := sb.String()

	for k := 1; k <= total; k++ {
		part1, part2, err := SplitDocument(doc, k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}

		sub1, err := ParseSRT(part1)
		if err != nil {
			t.Fatalf("k=%d: part1 not valid SRT: %v", k, err)
		}
		sub2, err := ParseSRT(part2)
		if err != nil {
			t.Fatalf("k=%d: part2 not valid SRT: %v", k, err)
		}

		if len(sub1.Entries) != k || len(sub2.Entries) != total-k {
			t.Errorf(
				"k=%d: got %d+%d blocks, want %d+%d",
				k, len(sub1.Entries), len(sub2.Entries), k, total-k,
			)
		}
		if k < total && !strings.HasPrefix(part2, "1\n") {
			t.Errorf("k=%d: part2 should start at index 1, got %q", k, part2)
		}
	}
}

func TestSplitDocumentCRLFAndBOM(t *testing.T) {
	in := "\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nA\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nB\r\n"
	part1, part2, err := SplitDocument(in, 1)
	if err != nil {
		t.Fatalf("SplitDocument failed: %v", err)
	}
	if part1 != "1\n00:00:01,000 --> 00:00:02,000\nA\n" {
		t.Errorf("part1: got %q", part1)
	}
	if part2 != "1\n00:00:03,000 --> 00:00:04,000\nB\n" {
		t.Errorf("part2: got %q", part2)
	}
}

func TestSplitDocumentInvalidIndex(t *testing.T) {
	for _, after := range []int{0, -1} {
		_, _, err := SplitDocument(splitDoc, after)
		if !errors.Is(err, ErrRange) {
			t.Errorf("after=%d: expected ErrRange, got %v", after, err)
		}
	}
}

func TestSplitDocumentMalformedBlock(t *testing.T) {
	_, _, err := SplitDocument("1\n00:00:01,000 --> 00:00:02,000\nA\n\norphan\n", 1)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}
