package asm

import (
	"strings"
	"unicode"

	"github.com/ezrec/asm16/isa"
)

// MEMORY_SIZE is the number of addressable variables.
const MEMORY_SIZE = 512

// LABEL_MARKER separates a label from its instruction.
const LABEL_MARKER = ":"

// Symbols are the variable and label tables of one assembly run.
type Symbols struct {
	Variable map[string]int // Variable name to memory address.
	Label    map[string]int // Label name to instruction index.
}

// Statement is an executable line with its label split off.
type Statement struct {
	Source
	Index int      // 0-based instruction index.
	Label string   // Label, if any.
	Words []string // Mnemonic and operands.
}

// Mnemonic returns the operation name of the statement.
func (stmt *Statement) Mnemonic() string {
	if len(stmt.Words) == 0 {
		return ""
	}
	return stmt.Words[0]
}

// Operands returns the operand tokens of the statement.
func (stmt *Statement) Operands() []string {
	if len(stmt.Words) == 0 {
		return nil
	}
	return stmt.Words[1:]
}

// IsIdentifier returns true if name is alphanumeric, starts with a letter,
// and is not the flags register.
func IsIdentifier(name string) bool {
	if len(name) == 0 || name == isa.FLAGS {
		return false
	}
	for n, r := range name {
		if !unicode.IsLetter(r) && (n == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// Declare assigns memory addresses to the declared variables, in order,
// starting at address 0.
func (sym *Symbols) Declare(decls []Source) (err error) {
	var src Source

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Text, Err: err}
		}
	}()

	if sym.Variable == nil {
		sym.Variable = make(map[string]int, len(decls))
	}

	for _, src = range decls {
		words := src.Words()
		if len(words) != 2 {
			err = ErrOperandCount{Mnemonic: DECLARE, Want: 1, Got: len(words) - 1}
			return
		}
		name := words[1]
		if !IsIdentifier(name) {
			err = ErrIdentifierInvalid(name)
			return
		}
		if _, ok := sym.Variable[name]; ok {
			err = ErrSymbolDuplicate(name)
			return
		}
		if len(sym.Variable) >= MEMORY_SIZE {
			err = ErrMemoryFull(name)
			return
		}
		sym.Variable[name] = len(sym.Variable)
	}

	return
}

// Mark records the index of every labelled executable line, and splits each
// line into its label and words. Labels index the executable lines only.
func (sym *Symbols) Mark(code []Source) (stmts []Statement, err error) {
	var src Source

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Index: len(stmts) + 1, Line: src.Text, Err: err}
		}
	}()

	if sym.Label == nil {
		sym.Label = make(map[string]int, 16)
	}

	for _, src = range code {
		stmt := Statement{Source: src, Index: len(stmts)}

		text := src.Text
		label, rest, found := strings.Cut(text, LABEL_MARKER)
		if found {
			label = strings.TrimSpace(label)
			if !IsIdentifier(label) {
				err = ErrIdentifierInvalid(label)
				return
			}
			if _, ok := sym.Label[label]; ok {
				err = ErrSymbolDuplicate(label)
				return
			}
			text = strings.TrimSpace(rest)
			if len(text) == 0 {
				err = ErrLabelEmpty(label)
				return
			}
			sym.Label[label] = stmt.Index
			stmt.Label = label
		}

		stmt.Words = strings.Fields(text)
		stmts = append(stmts, stmt)
	}

	return
}

// Address resolves a symbol, variables first.
func (sym *Symbols) Address(name string) (value int, ok bool) {
	value, ok = sym.Variable[name]
	if !ok {
		value, ok = sym.Label[name]
	}
	return
}
