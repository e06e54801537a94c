package isa

import (
	"fmt"
	"strconv"
)

// Format is the bit layout class of an instruction.
type Format int

const (
	FORMAT_A = Format(iota) // Three registers.
	FORMAT_B                // Register and 8-bit immediate.
	FORMAT_C                // Two registers.
	FORMAT_D                // Register and 8-bit address.
	FORMAT_E                // 8-bit address.
	FORMAT_F                // No operands.
)

var formatNames = [...]string{"A", "B", "C", "D", "E", "F"}

func (form Format) String() string {
	if form < FORMAT_A || form > FORMAT_F {
		return "Format(" + strconv.Itoa(int(form)) + ")"
	}
	return formatNames[form]
}

// Operands returns the number of operand tokens the format takes.
func (form Format) Operands() int {
	switch form {
	case FORMAT_A:
		return 3
	case FORMAT_B, FORMAT_C, FORMAT_D:
		return 2
	case FORMAT_E:
		return 1
	}
	return 0
}

// ParseFormat converts a format letter into a Format.
func ParseFormat(name string) (format Format, err error) {
	for n, str := range formatNames {
		if str == name {
			format = Format(n)
			return
		}
	}

	err = ErrFormatInvalid(name)
	return
}

// Class groups mnemonics whose operands are restricted to one symbol namespace.
type Class int

const (
	CLASS_NONE   = Class(0) // no restriction
	CLASS_BRANCH = Class(1) // target must not be a variable
	CLASS_MEMORY = Class(2) // address must not be a label
)

func (cl Class) String() string {
	switch cl {
	case CLASS_NONE:
		return "none"
	case CLASS_BRANCH:
		return "branch"
	case CLASS_MEMORY:
		return "memory"
	}
	return "Class(" + strconv.Itoa(int(cl)) + ")"
}

// Opcode is a 5-bit operation code.
type Opcode uint8

// OPCODE_MASK masks the valid bits of an Opcode.
const OPCODE_MASK = Opcode(0x1f)

func (op Opcode) String() string {
	return fmt.Sprintf("%05b", uint8(op&OPCODE_MASK))
}

// ParseOpcode parses a five character binary string.
func ParseOpcode(str string) (op Opcode, err error) {
	if len(str) != 5 {
		err = ErrOpcodeInvalid(str)
		return
	}
	v, err := strconv.ParseUint(str, 2, 5)
	if err != nil {
		err = ErrOpcodeInvalid(str)
		return
	}
	op = Opcode(v)
	return
}

// Register is a 3-bit register field.
type Register uint8

const (
	REG_R0    = Register(0)
	REG_R7    = Register(7)
	REG_FLAGS = Register(7) // Reserved bit pattern of the flags register.
)

// FLAGS is the token naming the flags register.
const FLAGS = "FLAGS"
