package translit

// Disabled is a transliterator that produces no phonetic line. The merge
// builder omits empty transliterations, so wiring this in turns the feature
// off without special-casing callers.
func Disabled(string) (string, error) {
	return "", nil
}
