// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/listing"
)

// Assembler is a two pass assembler for the 16-bit word machine.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	ISA     *isa.Table // Instruction set, or nil for isa.Default().
	Jobs    int        // Number of lines encoded in parallel; 0 or 1 is sequential.

	Symbols Symbols // Symbol tables of the last run.

	isa  *isa.Table
	halt string
}

// Parse reads assembly text from an input stream and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := listing.ReadLines(input)
	if err != nil {
		return
	}

	prog, err = asm.Assemble(lines)
	return
}

// Assemble translates lines of assembly into a program.
//
// All symbols are resolved before any line is encoded. The first failing line
// stops the assembly; no program is returned on error.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	asm.isa = asm.ISA
	if asm.isa == nil {
		asm.isa = isa.Default()
	}

	halt, ok := asm.isa.Halt()
	if !ok {
		err = isa.ErrNoHalt
		return
	}
	asm.halt = halt

	decls, code, err := Split(Sources(lines))
	if err != nil {
		return
	}

	asm.Symbols = Symbols{}

	err = asm.Symbols.Declare(decls)
	if err != nil {
		return
	}

	stmts, err := asm.Symbols.Mark(code)
	if err != nil {
		return
	}

	if len(stmts) == 0 {
		err = ErrHaltMissing(asm.halt)
		return
	}

	insts := make([]Instruction, len(stmts))

	if asm.Jobs <= 1 {
		for n := range stmts {
			insts[n], err = asm.encode(&stmts[n], len(stmts))
			if err != nil {
				return
			}
		}
	} else {
		errs := make([]error, len(stmts))

		var group errgroup.Group
		group.SetLimit(asm.Jobs)
		for n := range stmts {
			group.Go(func() error {
				insts[n], errs[n] = asm.encode(&stmts[n], len(stmts))
				return nil
			})
		}
		group.Wait()

		// Report the earliest failure, as a sequential run would.
		for _, err = range errs {
			if err != nil {
				return
			}
		}
	}

	prog = &Program{
		Instructions: insts,
		Symbols:      asm.Symbols,
	}

	return
}

// encode validates and encodes a single statement.
func (asm *Assembler) encode(stmt *Statement, count int) (inst Instruction, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: stmt.LineNo, Index: stmt.Index + 1, Line: stmt.Text, Err: err}
		}
	}()

	if asm.Verbose {
		log.Printf("%v: %v\n", stmt.LineNo, stmt.Text)
	}

	spec, err := asm.validate(stmt, count, &asm.Symbols)
	if err != nil {
		return
	}

	eff := isa.Resolve(spec, stmt.Operands())

	code, err := asm.Symbols.Encode(eff, stmt.Mnemonic(), stmt.Operands())
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%v: %v %v\n", stmt.Index, code, eff.Format)
	}

	inst = Instruction{
		LineNo:    stmt.LineNo,
		Index:     stmt.Index,
		Label:     stmt.Label,
		Words:     stmt.Words,
		Effective: eff,
		Code:      code,
	}

	return
}
