package asm

import (
	"fmt"

	"github.com/ezrec/asm16/isa"
)

// Word is a 16-bit machine instruction.
type Word uint16

// WORD_BITS is the width of a machine instruction.
const WORD_BITS = 16

// String returns the word as 16 binary digits.
func (word Word) String() string {
	return fmt.Sprintf("%016b", uint16(word))
}

// Opcode returns the operation code in the top five bits.
func (word Word) Opcode() isa.Opcode {
	return isa.Opcode(word>>11) & isa.OPCODE_MASK
}

func makeOp(op isa.Opcode, fields uint16) Word {
	return Word((uint16(op&isa.OPCODE_MASK) << 11) | (fields & 0x7ff))
}

// MakeFormatA creates a three register instruction.
func MakeFormatA(op isa.Opcode, r0, r1, r2 isa.Register) Word {
	return makeOp(op, (uint16(r0&7)<<6)|(uint16(r1&7)<<3)|(uint16(r2&7)<<0))
}

// MakeFormatB creates a register and immediate instruction.
func MakeFormatB(op isa.Opcode, r0 isa.Register, imm uint8) Word {
	return makeOp(op, (uint16(r0&7)<<8)|uint16(imm))
}

// MakeFormatC creates a two register instruction.
func MakeFormatC(op isa.Opcode, r0, r1 isa.Register) Word {
	return makeOp(op, (uint16(r0&7)<<3)|(uint16(r1&7)<<0))
}

// MakeFormatD creates a register and address instruction.
func MakeFormatD(op isa.Opcode, r0 isa.Register, addr uint8) Word {
	return makeOp(op, (uint16(r0&7)<<8)|uint16(addr))
}

// MakeFormatE creates an address only instruction.
func MakeFormatE(op isa.Opcode, addr uint8) Word {
	return makeOp(op, uint16(addr))
}

// MakeFormatF creates an instruction without operands.
func MakeFormatF(op isa.Opcode) Word {
	return makeOp(op, 0)
}
