// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa describes the instruction set of the 8-register, 16-bit word machine.
//
// Every mnemonic maps to a Spec naming its Format, its primary Opcode and, for
// dual-form instructions such as mov, a secondary Opcode used when the second
// operand is an immediate. Tables are read-only once built, and may be shared
// between goroutines.
package isa

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/asm16/internal"
)

// IMMEDIATE_MARKER prefixes immediate literal tokens.
const IMMEDIATE_MARKER = '$'

// Spec is the definition of a single mnemonic.
type Spec struct {
	Format       Format // Format of the primary encoding.
	Opcode       Opcode // Primary opcode.
	Secondary    Opcode // Register + immediate opcode, if HasSecondary.
	HasSecondary bool   // Set for register/immediate dual-form instructions.
	Class        Class  // Namespace restriction on the address operand.
}

// Table maps mnemonics to their Spec.
type Table struct {
	spec map[string]Spec
}

var defaultTable = map[string]Spec{
	"add": {Format: FORMAT_A, Opcode: 0b10000},
	"sub": {Format: FORMAT_A, Opcode: 0b10001},
	"mov": {Format: FORMAT_C, Opcode: 0b10011, Secondary: 0b10010, HasSecondary: true},
	"ld":  {Format: FORMAT_D, Opcode: 0b10100, Class: CLASS_MEMORY},
	"st":  {Format: FORMAT_D, Opcode: 0b10101, Class: CLASS_MEMORY},
	"mul": {Format: FORMAT_A, Opcode: 0b10110},
	"div": {Format: FORMAT_C, Opcode: 0b10111},
	"rs":  {Format: FORMAT_B, Opcode: 0b11000},
	"ls":  {Format: FORMAT_B, Opcode: 0b11001},
	"xor": {Format: FORMAT_A, Opcode: 0b11010},
	"or":  {Format: FORMAT_A, Opcode: 0b11011},
	"and": {Format: FORMAT_A, Opcode: 0b11100},
	"not": {Format: FORMAT_C, Opcode: 0b11101},
	"cmp": {Format: FORMAT_C, Opcode: 0b11110},
	"jmp": {Format: FORMAT_E, Opcode: 0b11111, Class: CLASS_BRANCH},
	"jlt": {Format: FORMAT_E, Opcode: 0b01100, Class: CLASS_BRANCH},
	"jgt": {Format: FORMAT_E, Opcode: 0b01101, Class: CLASS_BRANCH},
	"je":  {Format: FORMAT_E, Opcode: 0b01111, Class: CLASS_BRANCH},
	"hlt": {Format: FORMAT_F, Opcode: 0b01010},
}

var defaultISA = NewTable(maps.All(defaultTable))

// Default returns the built-in instruction set.
func Default() *Table {
	return defaultISA
}

// NewTable builds a table from mnemonic and spec pairs.
func NewTable(specs iter.Seq2[string, Spec]) *Table {
	return &Table{spec: maps.Collect(specs)}
}

// Lookup returns the Spec of a mnemonic.
func (table *Table) Lookup(mnemonic string) (spec Spec, ok bool) {
	spec, ok = table.spec[mnemonic]
	return
}

// All iterates over the table in mnemonic order.
func (table *Table) All() iter.Seq2[string, Spec] {
	return func(yield func(string, Spec) bool) {
		for _, mnemonic := range slices.Sorted(maps.Keys(table.spec)) {
			if !yield(mnemonic, table.spec[mnemonic]) {
				return
			}
		}
	}
}

// Halt returns the mnemonic of the format F (halt) instruction.
// If several are defined, the first in mnemonic order is used.
func (table *Table) Halt() (mnemonic string, ok bool) {
	for name, spec := range table.All() {
		if spec.Format == FORMAT_F {
			return name, true
		}
	}
	return
}

// Overlay returns a new table holding the receiver's entries, replaced or
// extended by the entries of other.
func (table *Table) Overlay(other *Table) *Table {
	return NewTable(internal.IterSeq2Concat(maps.All(table.spec), maps.All(other.spec)))
}

// String returns the instruction set as one definition per line.
func (table *Table) String() string {
	var sb strings.Builder
	for mnemonic, spec := range table.All() {
		sb.WriteString(mnemonic)
		sb.WriteByte(' ')
		sb.WriteString(spec.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the definition in 'format opcode[/secondary] [class]' form.
func (spec Spec) String() string {
	str := spec.Format.String() + " " + spec.Opcode.String()
	if spec.HasSecondary {
		str += "/" + spec.Secondary.String()
	}
	if spec.Class != CLASS_NONE {
		str += " " + spec.Class.String()
	}
	return str
}
