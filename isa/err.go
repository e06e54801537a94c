package isa

import (
	"errors"
	"fmt"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrDefinition = errors.New(f("instruction set definition"))
	ErrSecondary  = fmt.Errorf("%w: %v", ErrDefinition, f("secondary opcode only allowed on format C"))
	ErrNoHalt     = fmt.Errorf("%w: %v", ErrDefinition, f("no format F instruction"))
)

type ErrFormatInvalid string

func (err ErrFormatInvalid) Error() string {
	return f("'%v' is not a format (A-F)", string(err))
}

func (err ErrFormatInvalid) Unwrap() error {
	return ErrDefinition
}

type ErrOpcodeInvalid string

func (err ErrOpcodeInvalid) Error() string {
	return f("'%v' is not a 5-bit opcode", string(err))
}

func (err ErrOpcodeInvalid) Unwrap() error {
	return ErrDefinition
}

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("mnemonic %v is not defined", string(err))
}

func (err ErrMnemonicUnknown) Unwrap() error {
	return ErrDefinition
}

// ErrEntry locates a definition error at an instruction set entry.
type ErrEntry struct {
	Mnemonic string
	Err      error
}

func (err *ErrEntry) Error() string {
	return f("%v: %v", err.Mnemonic, err.Err)
}

func (err *ErrEntry) Unwrap() error {
	return err.Err
}
