package asm

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/asm16/isa"
)

// Instruction is an executable line and its encoding.
type Instruction struct {
	LineNo    int           // Source line number.
	Index     int           // 0-based instruction index.
	Label     string        // Label of the line, if any.
	Words     []string      // Mnemonic and operands.
	Effective isa.Effective // Format and opcode used for the encoding.
	Code      Word          // Encoded instruction.
}

// Program is a fully assembled program.
type Program struct {
	Instructions []Instruction
	Symbols      Symbols
}

// Binary returns the program as 16 digit binary strings, one per instruction.
func (prog *Program) Binary() (bins []string) {
	for _, code := range prog.Codes() {
		bins = append(bins, code.String())
	}

	return
}

// Codes iterates over the instruction index and word of the program.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(index int, code Word) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Index, inst.Code) {
				return
			}
		}
	}
}

// Listing returns an annotated listing: the variable table, then one line
// per instruction with its index, word, format and source.
func (prog *Program) Listing() (lines []string) {
	vars := prog.Symbols.Variable
	for _, name := range slices.SortedFunc(maps.Keys(vars), func(a, b string) int { return vars[a] - vars[b] }) {
		lines = append(lines, fmt.Sprintf("; var %v = %08b", name, vars[name]))
	}

	for _, inst := range prog.Instructions {
		text := strings.Join(inst.Words, " ")
		if len(inst.Label) != 0 {
			text = inst.Label + ":" + text
		}
		lines = append(lines, fmt.Sprintf("%3d %v %v  ; %v", inst.Index, inst.Code, inst.Effective.Format, text))
	}

	return
}
