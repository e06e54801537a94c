// Package asm implements the two pass assembler for the 16-bit word machine.
//
// A program is a list of variable declarations ('var NAME') followed by
// executable lines ('[LABEL:]MNEMONIC OPERANDS...'). The first pass assigns
// variables consecutive memory addresses from 0 and records the instruction
// index of every label. The second pass validates and encodes each line into a
// single 16-bit Word, in the bit layout of its isa.Format.
//
// Errors stop the assembly at the first failing line. Every error matches one
// of the error kinds (ErrOrdering, ErrIdentifier, ...) with errors.Is(), and
// is located in the source by an ErrSyntax.
package asm
