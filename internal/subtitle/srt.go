package subtitle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// ParseSRT parses SRT content into spans sorted by start time.
//
// Parsing is tolerant: blocks without a numeric index, a timing line, or any
// text are skipped rather than failing the whole track, matching how subtitle
// files found in the wild tend to be slightly damaged. The count of skipped
// blocks is returned so callers can surface how lossy the parse was. Text is
// normalized to NFC so downstream text handling sees one canonical form.
func ParseSRT(data []byte) ([]Span, int) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, 0
	}

	var spans []Span
	skipped := 0
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		span, ok := parseBlock(block)
		if !ok {
			skipped++
			continue
		}
		spans = append(spans, span)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans, skipped
}

func parseBlock(block string) (Span, bool) {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 {
		return Span{}, false
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Span{}, false
	}

	start, end, err := parseTimingLine(lines[1])
	if err != nil {
		return Span{}, false
	}

	text := strings.TrimSpace(strings.Join(lines[2:], "\n"))
	if text == "" {
		return Span{}, false
	}

	return Span{
		Index: index,
		Start: start,
		End:   end,
		Text:  norm.NFC.String(text),
	}, true
}

func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("end time: %w", err)
	}
	return start, end, nil
}

// ParseTimestamp converts an SRT timestamp (HH:MM:SS,mmm) to a duration.
// A period before the milliseconds is accepted as some tools emit it.
func ParseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")

	secParts := strings.Split(value, ",")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(secParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}

	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(secParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// FormatTimestamp renders a duration as an SRT timestamp (HH:MM:SS,mmm).
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// FormatSRT renders spans as SRT content, renumbering blocks from 1.
// Numbering and timing markup are derived purely from each span's fields.
func FormatSRT(spans []Span) []byte {
	var sb strings.Builder
	for i, span := range spans {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")
		sb.WriteString(FormatTimestamp(span.Start))
		sb.WriteString(" --> ")
		sb.WriteString(FormatTimestamp(span.End))
		sb.WriteString("\n")
		sb.WriteString(span.Text)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}
