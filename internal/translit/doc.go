// Package translit supplies transliterators for the merge builder.
//
// The production implementation shells out to a configured external command
// (for example a pypinyin wrapper) that reads source-language text on stdin
// and writes the phonetic rendering to stdout. Keeping the collaborator
// behind an exec boundary means any transliteration tool with that contract
// plugs in without code changes, and tests run against plain function stubs.
package translit
