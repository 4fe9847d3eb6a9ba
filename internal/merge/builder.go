package merge

import (
	"strings"

	"trisub/internal/subtitle"
)

// Transliterate maps source-language text to its phonetic rendering. It is a
// capability supplied by the caller so the builder can run against the real
// collaborator in production and a stub in tests.
type Transliterate func(text string) (string, error)

// TransliterationMarker replaces the transliteration line when the
// transliterator fails for a group. One bad character must never cost the
// rest of the track, so the failure degrades to this marker plus a warning.
const TransliterationMarker = "[transliteration unavailable]"

// Warning records a non-fatal transliteration failure for one group.
type Warning struct {
	Group int // 1-based output ordinal of the affected span
	Text  string
	Err   error
}

// Build renders one merged span per group: the group envelope as timing and
// up to three stacked text lines (joined source text, its transliteration,
// joined target text). Lines with no content are omitted entirely rather
// than left as empty placeholders. The transliterator runs exactly once per
// group, on the joined source text, so multi-span sentences keep their full
// context; when it fails the span carries TransliterationMarker instead and
// the failure is reported in the returned warnings.
//
// Every group yields exactly one span, in group order, renumbered from 1.
func Build(groups []Group, translit Transliterate) ([]subtitle.Span, []Warning) {
	spans := make([]subtitle.Span, 0, len(groups))
	var warnings []Warning

	for idx, group := range groups {
		sourceText := joinSource(group.Source)
		targetText := joinTarget(group.Target)

		lines := make([]string, 0, 3)
		if sourceText != "" {
			lines = append(lines, sourceText)
			phonetic, err := translit(sourceText)
			if err != nil {
				warnings = append(warnings, Warning{Group: idx + 1, Text: sourceText, Err: err})
				phonetic = TransliterationMarker
			}
			if phonetic != "" {
				lines = append(lines, phonetic)
			}
		}
		if targetText != "" {
			lines = append(lines, targetText)
		}

		spans = append(spans, subtitle.Span{
			Index: idx + 1,
			Start: group.Start,
			End:   group.End,
			Text:  strings.Join(lines, "\n"),
		})
	}
	return spans, warnings
}

// joinSource flattens the source spans to a single display line: span texts
// concatenate in order with no separator, as the source script carries no
// word spacing, while line breaks inside a span collapse to spaces.
func joinSource(spans []subtitle.Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(strings.Join(strings.Fields(span.Text), " "))
	}
	return sb.String()
}

// joinTarget concatenates target span texts in order with a single space,
// preserving line breaks inside each span.
func joinTarget(spans []subtitle.Span) string {
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		text := strings.TrimSpace(span.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
