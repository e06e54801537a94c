package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/asm16/isa"
)

// ADDRESS_BITS is the width of address and immediate fields.
const ADDRESS_BITS = 8

type encodeFunc func(sym *Symbols, op isa.Opcode, args []string) (Word, error)

// encoders has one encoder per format.
var encoders = [...]encodeFunc{
	isa.FORMAT_A: encodeA,
	isa.FORMAT_B: encodeB,
	isa.FORMAT_C: encodeC,
	isa.FORMAT_D: encodeD,
	isa.FORMAT_E: encodeE,
	isa.FORMAT_F: encodeF,
}

// Encode packs the operands of a statement into a word, using the effective
// format and opcode.
func (sym *Symbols) Encode(eff isa.Effective, mnemonic string, args []string) (word Word, err error) {
	want := eff.Format.Operands()
	if len(args) != want {
		err = ErrOperandCount{Mnemonic: mnemonic, Want: want, Got: len(args)}
		return
	}

	word, err = encoders[eff.Format](sym, eff.Opcode, args)
	return
}

func encodeA(sym *Symbols, op isa.Opcode, args []string) (word Word, err error) {
	var regs [3]isa.Register
	for n, arg := range args {
		regs[n], err = register(arg, false)
		if err != nil {
			return
		}
	}

	word = MakeFormatA(op, regs[0], regs[1], regs[2])
	return
}

func encodeB(sym *Symbols, op isa.Opcode, args []string) (word Word, err error) {
	r0, err := register(args[0], false)
	if err != nil {
		return
	}

	imm, err := immediate(args[1])
	if err != nil {
		return
	}

	word = MakeFormatB(op, r0, imm)
	return
}

func encodeC(sym *Symbols, op isa.Opcode, args []string) (word Word, err error) {
	r0, err := register(args[0], false)
	if err != nil {
		return
	}

	r1, err := register(args[1], true)
	if err != nil {
		return
	}

	word = MakeFormatC(op, r0, r1)
	return
}

func encodeD(sym *Symbols, op isa.Opcode, args []string) (word Word, err error) {
	r0, err := register(args[0], false)
	if err != nil {
		return
	}

	addr, err := sym.address(args[1])
	if err != nil {
		return
	}

	word = MakeFormatD(op, r0, addr)
	return
}

func encodeE(sym *Symbols, op isa.Opcode, args []string) (word Word, err error) {
	addr, err := sym.address(args[0])
	if err != nil {
		return
	}

	word = MakeFormatE(op, addr)
	return
}

func encodeF(sym *Symbols, op isa.Opcode, args []string) (word Word, err error) {
	word = MakeFormatF(op)
	return
}

// register decodes an 'rN' or FLAGS token.
func register(token string, flags_allowed bool) (reg isa.Register, err error) {
	if token == isa.FLAGS {
		if !flags_allowed {
			err = ErrRegisterIllegal(token)
			return
		}
		reg = isa.REG_FLAGS
		return
	}

	if len(token) < 2 || token[0] != 'r' || !isDigits(token[1:]) {
		err = ErrRegisterInvalid(token)
		return
	}

	value, perr := strconv.ParseUint(token[1:], 10, 8)
	if perr != nil || value > uint64(isa.REG_R7) {
		err = ErrRegisterInvalid(token)
		return
	}

	reg = isa.Register(value)
	return
}

// immediate decodes a '$N' token.
func immediate(token string) (value uint8, err error) {
	if token == isa.FLAGS {
		err = ErrRegisterIllegal(token)
		return
	}

	if !isa.IsImmediate(token) || !isDigits(token[1:]) {
		err = ErrImmediateSyntax(token)
		return
	}

	v64, perr := strconv.ParseUint(token[1:], 10, ADDRESS_BITS)
	if perr != nil {
		err = ErrImmediateRange(token)
		return
	}

	value = uint8(v64)
	return
}

// address decodes an 8 digit binary literal, variable, or label token.
// Literals are taken verbatim, so must be exactly ADDRESS_BITS wide.
func (sym *Symbols) address(token string) (addr uint8, err error) {
	if token == isa.FLAGS {
		err = ErrRegisterIllegal(token)
		return
	}

	if isDigits(token) {
		if len(strings.Trim(token, "01")) != 0 || len(token) != ADDRESS_BITS {
			err = ErrAddressLiteral(token)
			return
		}
		v64, _ := strconv.ParseUint(token, 2, ADDRESS_BITS)
		addr = uint8(v64)
		return
	}

	value, ok := sym.Address(token)
	if !ok {
		err = ErrSymbolMissing(token)
		return
	}

	if value < 0 || value >= 1<<ADDRESS_BITS {
		err = ErrAddressRange{Symbol: token, Value: value}
		return
	}

	addr = uint8(value)
	return
}

// isDigits returns true for a non-empty string of decimal digits.
func isDigits(str string) bool {
	if len(str) == 0 {
		return false
	}
	for _, c := range []byte(str) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
