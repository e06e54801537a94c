package asm

import (
	"strings"
)

// DECLARE is the reserved word starting a variable declaration.
const DECLARE = "var"

// Source is a non-empty line of assembly text.
type Source struct {
	LineNo int    // Line number in the input.
	Text   string // Trimmed line text.
}

// Words splits the source text on whitespace.
func (src Source) Words() []string {
	return strings.Fields(src.Text)
}

// IsDeclaration returns true if the line declares a variable.
func (src Source) IsDeclaration() bool {
	words := src.Words()
	return len(words) > 0 && words[0] == DECLARE
}

// Sources numbers the input lines, trimming them and dropping empty ones.
func Sources(lines []string) (srcs []Source) {
	for n, line := range lines {
		text := strings.TrimSpace(line)
		if len(text) == 0 {
			continue
		}
		srcs = append(srcs, Source{LineNo: n + 1, Text: text})
	}
	return
}

// Split separates the leading variable declarations from the executable lines.
// A declaration following the first executable line is an ordering error.
func Split(srcs []Source) (decls, code []Source, err error) {
	for _, src := range srcs {
		if !src.IsDeclaration() {
			code = append(code, src)
			continue
		}

		if len(code) != 0 {
			name := strings.TrimSpace(strings.TrimPrefix(src.Text, DECLARE))
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Text, Err: ErrDeclarationLate(name)}
			return
		}

		decls = append(decls, src)
	}

	return
}
