package asm

import (
	"github.com/ezrec/asm16/isa"
)

// validate checks a statement against the instruction set and symbol
// tables before it is encoded. count is the number of executable lines.
func (asm *Assembler) validate(stmt *Statement, count int, sym *Symbols) (spec isa.Spec, err error) {
	mnemonic := stmt.Mnemonic()
	spec, ok := asm.isa.Lookup(mnemonic)
	if !ok {
		err = ErrInstructionUnknown(mnemonic)
		return
	}

	last := stmt.Index == count-1
	switch {
	case mnemonic == asm.halt && !last:
		err = ErrHaltEarly(mnemonic)
		return
	case mnemonic != asm.halt && last:
		err = ErrHaltMissing(asm.halt)
		return
	}

	args := stmt.Operands()
	if len(args) == 0 {
		return
	}
	target := args[len(args)-1]

	switch spec.Class {
	case isa.CLASS_BRANCH:
		if _, ok := sym.Variable[target]; ok {
			err = ErrVariableAsLabel(target)
			return
		}
	case isa.CLASS_MEMORY:
		if _, ok := sym.Label[target]; ok {
			err = ErrLabelAsVariable(target)
			return
		}
	}

	return
}
