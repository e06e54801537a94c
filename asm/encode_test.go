package asm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm16/isa"
)

func TestWord(t *testing.T) {
	assert := assert.New(t)

	word := MakeFormatB(0b10010, isa.REG_R0, 5)
	assert.Equal("1001000000000101", word.String())
	assert.Equal(isa.Opcode(0b10010), word.Opcode())

	assert.Equal("0101000000000000", MakeFormatF(0b01010).String())
	assert.Equal("1111100011111111", MakeFormatE(0b11111, 0xff).String())
	assert.Equal("1000000111111111", MakeFormatA(0b10000, 7, 7, 7).String())
	assert.Equal("1111000000111111", MakeFormatC(0b11110, 7, 7).String())
	assert.Equal("1010011110000001", MakeFormatD(0b10100, 7, 0x81).String())
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range 8 {
		reg, err := register(fmt.Sprintf("r%d", n), false)
		assert.NoError(err)
		assert.Equal(isa.Register(n), reg)
	}

	reg, err := register("FLAGS", true)
	assert.NoError(err)
	assert.Equal(isa.REG_FLAGS, reg)

	_, err = register("FLAGS", false)
	assert.ErrorIs(err, ErrRegister)
	assert.IsType(ErrRegisterIllegal(""), err)

	for _, bad := range []string{"", "r", "r8", "r-1", "r+1", "R1", "x1", "r1x", "flags"} {
		_, err = register(bad, true)
		assert.ErrorIs(err, ErrRegister, bad)
		assert.IsType(ErrRegisterInvalid(""), err, bad)
	}
}

func TestImmediate(t *testing.T) {
	assert := assert.New(t)

	value, err := immediate("$0")
	assert.NoError(err)
	assert.Equal(uint8(0), value)

	value, err = immediate("$255")
	assert.NoError(err)
	assert.Equal(uint8(255), value)

	value, err = immediate("$007")
	assert.NoError(err)
	assert.Equal(uint8(7), value)

	_, err = immediate("FLAGS")
	assert.IsType(ErrRegisterIllegal(""), err)

	_, err = immediate("$256")
	assert.IsType(ErrImmediateRange(""), err)

	for _, bad := range []string{"", "$", "5", "$0x10", "$1.5", "$ 1", "$-0"} {
		_, err = immediate(bad)
		assert.IsType(ErrImmediateSyntax(""), err, bad)
		assert.ErrorIs(err, ErrImmediate, bad)
	}
}

func TestAddress(t *testing.T) {
	assert := assert.New(t)

	sym := &Symbols{
		Variable: map[string]int{"x": 3, "both": 1, "far": 300},
		Label:    map[string]int{"loop": 9, "both": 2},
	}

	cases := map[string]uint8{
		"x":        3,
		"loop":     9,
		"both":     1, // variables first
		"00000000": 0,
		"00000001": 1,
		"00000101": 5,
		"11111111": 255,
	}
	for token, expected := range cases {
		addr, err := sym.address(token)
		assert.NoError(err, token)
		assert.Equal(expected, addr, token)
	}

	_, err := sym.address("far")
	assert.IsType(ErrAddressRange{}, err)
	_, err = sym.address("nowhere")
	assert.IsType(ErrSymbolMissing(""), err)
	_, err = sym.address("FLAGS")
	assert.IsType(ErrRegisterIllegal(""), err)
	for _, bad := range []string{"0", "1", "101", "0000101", "2", "012", "111111111", "99", "00000002"} {
		_, err = sym.address(bad)
		assert.IsType(ErrAddressLiteral(""), err, bad)
		assert.ErrorIs(err, ErrAddress, bad)
	}
}

func TestEncodeEffective(t *testing.T) {
	assert := assert.New(t)

	sym := &Symbols{}
	mov, _ := isa.Default().Lookup("mov")

	args := []string{"r2", "$3"}
	word, err := sym.Encode(isa.Resolve(mov, args), "mov", args)
	assert.NoError(err)
	assert.Equal("1001001000000011", word.String())

	args = []string{"r2", "r3"}
	word, err = sym.Encode(isa.Resolve(mov, args), "mov", args)
	assert.NoError(err)
	assert.Equal("1001100000010011", word.String())

	args = []string{"FLAGS", "r3"}
	_, err = sym.Encode(isa.Resolve(mov, args), "mov", args)
	assert.ErrorIs(err, ErrRegister)

	args = []string{"r1", "$2", "r3"}
	_, err = sym.Encode(isa.Resolve(mov, args), "mov", args)
	assert.Equal(ErrOperandCount{Mnemonic: "mov", Want: 2, Got: 3}, err)
}

func FuzzEncode(f *testing.F) {
	f.Add("mov", "r0", "$5", "r1")
	f.Add("add", "r0", "r1", "r2")
	f.Add("ld", "r3", "x", "")
	f.Add("jmp", "loop", "", "")
	f.Add("cmp", "r1", "FLAGS", "")
	f.Add("rs", "r7", "$255", "")
	f.Add("st", "r0", "01010101", "")

	sym := &Symbols{
		Variable: map[string]int{"x": 0, "y": 200},
		Label:    map[string]int{"loop": 1},
	}

	f.Fuzz(func(t *testing.T, mnemonic, a, b, c string) {
		spec, ok := isa.Default().Lookup(mnemonic)
		if !ok {
			return
		}

		var args []string
		for _, arg := range []string{a, b, c} {
			arg = strings.TrimSpace(arg)
			if len(arg) != 0 {
				args = append(args, arg)
			}
		}

		eff := isa.Resolve(spec, args)
		word, err := sym.Encode(eff, mnemonic, args)
		if err != nil {
			assert.NotNil(t, Kind(err), err)
			return
		}

		str := word.String()
		assert.Len(t, str, WORD_BITS)
		assert.Empty(t, strings.Trim(str, "01"))
		assert.Equal(t, eff.Opcode, word.Opcode())
	})
}
