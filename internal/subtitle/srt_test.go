package subtitle

import (
	"strings"
	"testing"
	"time"
)

func TestParseSRT(t *testing.T) {
	content := "1\r\n" +
		"00:00:01,000 --> 00:00:02,500\r\n" +
		"你好\r\n" +
		"\r\n" +
		"2\r\n" +
		"00:00:03,000 --> 00:00:04,000\r\n" +
		"两行\r\n第二行\r\n"

	spans, skipped := ParseSRT([]byte(content))
	if skipped != 0 {
		t.Fatalf("skipped = %d", skipped)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Start != time.Second || spans[0].End != 2500*time.Millisecond {
		t.Errorf("span 0 timing = %v --> %v", spans[0].Start, spans[0].End)
	}
	if spans[0].Text != "你好" {
		t.Errorf("span 0 text = %q", spans[0].Text)
	}
	if spans[1].Text != "两行\n第二行" {
		t.Errorf("span 1 text = %q", spans[1].Text)
	}
}

func TestParseSRTStripsBOM(t *testing.T) {
	content := "\uFEFF1\n00:00:01,000 --> 00:00:02,000\nhello\n"

	spans, skipped := ParseSRT([]byte(content))
	if skipped != 0 {
		t.Fatalf("skipped = %d", skipped)
	}
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Index != 1 || spans[0].Text != "hello" {
		t.Errorf("span = %+v", spans[0])
	}
}

func TestParseSRTSortsByStart(t *testing.T) {
	content := `2
00:00:10,000 --> 00:00:11,000
later

1
00:00:01,000 --> 00:00:02,000
earlier
`
	spans, _ := ParseSRT([]byte(content))
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Text != "earlier" || spans[1].Text != "later" {
		t.Errorf("spans not sorted by start: %q, %q", spans[0].Text, spans[1].Text)
	}
}

func TestParseSRTSkipsDamagedBlocks(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
good

not an index
00:00:03,000 --> 00:00:04,000
skipped

2
garbled timing line
skipped

3
00:00:05,000 --> 00:00:06,000
also good
`
	spans, skipped := ParseSRT([]byte(content))
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if spans[0].Text != "good" || spans[1].Text != "also good" {
		t.Errorf("unexpected spans: %q, %q", spans[0].Text, spans[1].Text)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	spans, skipped := ParseSRT([]byte("  \n\n  "))
	if len(spans) != 0 || skipped != 0 {
		t.Fatalf("spans = %d skipped = %d", len(spans), skipped)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:01,000", time.Second, false},
		{"01:02:03,456", time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond, false},
		{"00:00:01.500", 1500 * time.Millisecond, false},
		{" 00:00:02,000 ", 2 * time.Second, false},
		{"", 0, true},
		{"1:2", 0, true},
		{"aa:bb:cc,dd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimestamp(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond
	if got := FormatTimestamp(d); got != "01:02:03,456" {
		t.Errorf("FormatTimestamp = %q", got)
	}
	if got := FormatTimestamp(-time.Second); got != "00:00:00,000" {
		t.Errorf("FormatTimestamp(negative) = %q", got)
	}
}

func TestFormatSRTRenumbers(t *testing.T) {
	spans := []Span{
		{Index: 7, Start: time.Second, End: 2 * time.Second, Text: "first"},
		{Index: 3, Start: 3 * time.Second, End: 4 * time.Second, Text: "second\nline"},
	}
	out := string(FormatSRT(spans))

	want := "1\n00:00:01,000 --> 00:00:02,000\nfirst\n\n2\n00:00:03,000 --> 00:00:04,000\nsecond\nline\n"
	if out != want {
		t.Errorf("FormatSRT output:\n%s\nwant:\n%s", out, want)
	}

	reparsed, skipped := ParseSRT([]byte(out))
	if skipped != 0 {
		t.Fatalf("reparse skipped = %d", skipped)
	}
	if len(reparsed) != 2 {
		t.Fatalf("expected 2 reparsed spans, got %d", len(reparsed))
	}
	if reparsed[0].Index != 1 || reparsed[1].Index != 2 {
		t.Errorf("indices not renumbered: %d, %d", reparsed[0].Index, reparsed[1].Index)
	}
}

func TestSpanOverlaps(t *testing.T) {
	a := Span{Start: time.Second, End: 2 * time.Second}
	tests := []struct {
		name string
		b    Span
		want bool
	}{
		{"overlapping", Span{Start: 1500 * time.Millisecond, End: 2500 * time.Millisecond}, true},
		{"nested", Span{Start: 1200 * time.Millisecond, End: 1800 * time.Millisecond}, true},
		{"touching", Span{Start: 2 * time.Second, End: 3 * time.Second}, false},
		{"disjoint", Span{Start: 5 * time.Second, End: 6 * time.Second}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Overlaps(a); got != tt.want {
			t.Errorf("%s (reversed): Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseSRTNormalizesNFC(t *testing.T) {
	// e + combining acute accent should come out as the precomposed form.
	decomposed := "café"
	content := "1\n00:00:01,000 --> 00:00:02,000\n" + decomposed + "\n"
	spans, _ := ParseSRT([]byte(content))
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if strings.Contains(spans[0].Text, "́") {
		t.Errorf("text not NFC normalized: %q", spans[0].Text)
	}
	if spans[0].Text != "café" {
		t.Errorf("text = %q, want café", spans[0].Text)
	}
}
