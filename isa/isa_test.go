package isa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func count(table *Table) (n int) {
	for range table.All() {
		n++
	}
	return
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	table := Default()
	assert.Equal(19, count(table))

	mov, ok := table.Lookup("mov")
	assert.True(ok)
	assert.Equal(FORMAT_C, mov.Format)
	assert.Equal("10011", mov.Opcode.String())
	assert.True(mov.HasSecondary)
	assert.Equal("10010", mov.Secondary.String())

	hlt, ok := table.Lookup("hlt")
	assert.True(ok)
	assert.Equal(FORMAT_F, hlt.Format)
	assert.Equal("01010", hlt.Opcode.String())

	for name, spec := range table.All() {
		if name == "mov" {
			continue
		}
		assert.False(spec.HasSecondary, name)
	}

	for _, name := range []string{"jmp", "jlt", "jgt", "je"} {
		spec, ok := table.Lookup(name)
		assert.True(ok, name)
		assert.Equal(CLASS_BRANCH, spec.Class, name)
		assert.Equal(FORMAT_E, spec.Format, name)
	}

	for _, name := range []string{"ld", "st"} {
		spec, ok := table.Lookup(name)
		assert.True(ok, name)
		assert.Equal(CLASS_MEMORY, spec.Class, name)
	}

	_, ok = table.Lookup("nop")
	assert.False(ok)

	halt, ok := table.Halt()
	assert.True(ok)
	assert.Equal("hlt", halt)
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	mov, _ := Default().Lookup("mov")
	before := mov

	eff := Resolve(mov, []string{"r0", "$5"})
	assert.Equal(Effective{Format: FORMAT_B, Opcode: 0b10010}, eff)

	eff = Resolve(mov, []string{"r0", "r1"})
	assert.Equal(Effective{Format: FORMAT_C, Opcode: 0b10011}, eff)

	eff = Resolve(mov, []string{"r0"})
	assert.Equal(Effective{Format: FORMAT_C, Opcode: 0b10011}, eff)

	assert.Equal(before, mov)
	after, _ := Default().Lookup("mov")
	assert.Equal(before, after)

	// Single form instructions ignore the immediate marker.
	rs, _ := Default().Lookup("rs")
	eff = Resolve(rs, []string{"r0", "$5"})
	assert.Equal(Effective{Format: FORMAT_B, Opcode: 0b11000}, eff)

	add, _ := Default().Lookup("add")
	eff = Resolve(add, []string{"r0", "$1", "r2"})
	assert.Equal(Effective{Format: FORMAT_A, Opcode: 0b10000}, eff)
}

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	op, err := ParseOpcode("01010")
	assert.NoError(err)
	assert.Equal(Opcode(0b01010), op)
	assert.Equal("01010", op.String())

	for _, bad := range []string{"", "0101", "010101", "01210", "abcde"} {
		_, err = ParseOpcode(bad)
		assert.ErrorIs(err, ErrDefinition, bad)
	}
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	for n, name := range []string{"A", "B", "C", "D", "E", "F"} {
		form, err := ParseFormat(name)
		assert.NoError(err)
		assert.Equal(Format(n), form)
		assert.Equal(name, form.String())
	}

	_, err := ParseFormat("G")
	assert.ErrorIs(err, ErrDefinition)
	assert.Equal("Format(9)", Format(9).String())

	assert.Equal(3, FORMAT_A.Operands())
	assert.Equal(2, FORMAT_B.Operands())
	assert.Equal(2, FORMAT_C.Operands())
	assert.Equal(2, FORMAT_D.Operands())
	assert.Equal(1, FORMAT_E.Operands())
	assert.Equal(0, FORMAT_F.Operands())
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	script := strings.Join([]string{
		`instructions = {`,
		`    "inc": (B, "00001"),`,
		`    "jz":  ("E", "00010"),`,
		`    "mv":  ("C", "00011", "00100"),`,
		`    "add": ("A", "00101"),`,
		`}`,
		`branch = ["jz"]`,
		`memory = ("inc",)`,
	}, "\n")

	table, err := Load("test.star", script)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(4, count(table))

	jz, ok := table.Lookup("jz")
	assert.True(ok)
	assert.Equal(Spec{Format: FORMAT_E, Opcode: 0b00010, Class: CLASS_BRANCH}, jz)

	mv, ok := table.Lookup("mv")
	assert.True(ok)
	assert.Equal(Spec{Format: FORMAT_C, Opcode: 0b00011, Secondary: 0b00100, HasSecondary: true}, mv)

	inc, _ := table.Lookup("inc")
	assert.Equal(CLASS_MEMORY, inc.Class)

	_, ok = table.Halt()
	assert.False(ok)

	merged := Default().Overlay(table)
	assert.Equal(22, count(merged))
	add, _ := merged.Lookup("add")
	assert.Equal(Opcode(0b00101), add.Opcode)
	halt, ok := merged.Halt()
	assert.True(ok)
	assert.Equal("hlt", halt)

	// The default table is untouched by the overlay.
	add, _ = Default().Lookup("add")
	assert.Equal(Opcode(0b10000), add.Opcode)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	bad := map[string]string{
		"missing":   `x = 1`,
		"not dict":  `instructions = ["add"]`,
		"key":       `instructions = {1: ("A", "00001")}`,
		"tuple":     `instructions = {"add": "A"}`,
		"short":     `instructions = {"add": ("A",)}`,
		"format":    `instructions = {"add": ("G", "00001")}`,
		"opcode":    `instructions = {"add": ("A", "0001")}`,
		"secondary": `instructions = {"add": ("A", "00001", "00010")}`,
		"branch":    "instructions = {\"add\": (\"A\", \"00001\")}\nbranch = [\"jz\"]",
		"list":      "instructions = {\"add\": (\"A\", \"00001\")}\nbranch = \"add\"",
	}

	for name, script := range bad {
		_, err := Load(name+".star", script)
		assert.ErrorIs(err, ErrDefinition, name)
	}

	_, err := Load("syntax.star", `instructions = {`)
	assert.Error(err)
	assert.False(errors.Is(err, ErrDefinition))

	var entry *ErrEntry
	_, err = Load("entry.star", `instructions = {"add": ("A", "00001", "00010")}`)
	assert.True(errors.As(err, &entry))
	assert.Equal("add", entry.Mnemonic)
}

func TestTableString(t *testing.T) {
	assert := assert.New(t)

	str := Default().String()
	lines := strings.Split(strings.TrimSpace(str), "\n")
	assert.Equal(19, len(lines))
	assert.Equal("add A 10000", lines[0])
	assert.Contains(lines, "mov C 10011/10010")
	assert.Contains(lines, "jmp E 11111 branch")
	assert.Contains(lines, "ld D 10100 memory")
}
