package asm

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	// Error kinds. Every assembly error matches exactly one with errors.Is().
	ErrOrdering           = errors.New(f("declaration order"))
	ErrIdentifier         = errors.New(f("identifier"))
	ErrCapacity           = errors.New(f("memory capacity"))
	ErrUnknownInstruction = errors.New(f("unknown instruction"))
	ErrPlacement          = errors.New(f("halt placement"))
	ErrNamespace          = errors.New(f("namespace misuse"))
	ErrMalformed          = errors.New(f("malformed line"))
	ErrImmediate          = errors.New(f("immediate"))
	ErrAddress            = errors.New(f("address"))
	ErrRegister           = errors.New(f("register"))
)

// errKinds lists the error kinds in exit code order.
var errKinds = []error{
	ErrOrdering,
	ErrIdentifier,
	ErrCapacity,
	ErrUnknownInstruction,
	ErrPlacement,
	ErrNamespace,
	ErrMalformed,
	ErrImmediate,
	ErrAddress,
	ErrRegister,
}

// Kind returns the error kind of an assembly error, or nil.
func Kind(err error) error {
	for _, kind := range errKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// ExitCode maps an error to a process exit status.
// Success is 0, each error kind has its own status starting at 2, and
// any other failure is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for n, kind := range errKinds {
		if errors.Is(err, kind) {
			return n + 2
		}
	}
	return 1
}

type ErrDeclarationLate string

func (err ErrDeclarationLate) Error() string {
	return f("variable %v declared after the program began", string(err))
}

func (err ErrDeclarationLate) Unwrap() error {
	return ErrOrdering
}

type ErrIdentifierInvalid string

func (err ErrIdentifierInvalid) Error() string {
	return f("'%v' is not a valid identifier", string(err))
}

func (err ErrIdentifierInvalid) Unwrap() error {
	return ErrIdentifier
}

type ErrLabelEmpty string

func (err ErrLabelEmpty) Error() string {
	return f("label %v has no instruction", string(err))
}

func (err ErrLabelEmpty) Unwrap() error {
	return ErrIdentifier
}

type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("%v duplicated", string(err))
}

func (err ErrSymbolDuplicate) Unwrap() error {
	return ErrIdentifier
}

type ErrMemoryFull string

func (err ErrMemoryFull) Error() string {
	return f("variable %v exceeds %v words of memory", string(err), MEMORY_SIZE)
}

func (err ErrMemoryFull) Unwrap() error {
	return ErrCapacity
}

type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("'%v' is not an instruction", string(err))
}

func (err ErrInstructionUnknown) Unwrap() error {
	return ErrUnknownInstruction
}

type ErrHaltEarly string

func (err ErrHaltEarly) Error() string {
	return f("%v is not the last instruction", string(err))
}

func (err ErrHaltEarly) Unwrap() error {
	return ErrPlacement
}

type ErrHaltMissing string

func (err ErrHaltMissing) Error() string {
	return f("missing %v as the last instruction", string(err))
}

func (err ErrHaltMissing) Unwrap() error {
	return ErrPlacement
}

type ErrVariableAsLabel string

func (err ErrVariableAsLabel) Error() string {
	return f("variable %v used as a label", string(err))
}

func (err ErrVariableAsLabel) Unwrap() error {
	return ErrNamespace
}

type ErrLabelAsVariable string

func (err ErrLabelAsVariable) Error() string {
	return f("label %v used as a variable", string(err))
}

func (err ErrLabelAsVariable) Unwrap() error {
	return ErrNamespace
}

type ErrOperandCount struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %v operands, not %v", err.Mnemonic, err.Want, err.Got)
}

func (err ErrOperandCount) Unwrap() error {
	return ErrMalformed
}

type ErrImmediateSyntax string

func (err ErrImmediateSyntax) Error() string {
	return f("'%v' is not an immediate integer", string(err))
}

func (err ErrImmediateSyntax) Unwrap() error {
	return ErrImmediate
}

type ErrImmediateRange string

func (err ErrImmediateRange) Error() string {
	return f("immediate '%v' does not fit in 8 bits", string(err))
}

func (err ErrImmediateRange) Unwrap() error {
	return ErrImmediate
}

type ErrAddressLiteral string

func (err ErrAddressLiteral) Error() string {
	return f("'%v' is not an 8-bit binary address", string(err))
}

func (err ErrAddressLiteral) Unwrap() error {
	return ErrAddress
}

type ErrAddressRange struct {
	Symbol string
	Value  int
}

func (err ErrAddressRange) Error() string {
	return f("%v resolves to %v, beyond 8 bits", err.Symbol, err.Value)
}

func (err ErrAddressRange) Unwrap() error {
	return ErrAddress
}

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("variable or label %v undeclared", string(err))
}

func (err ErrSymbolMissing) Unwrap() error {
	return ErrAddress
}

type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegisterInvalid) Unwrap() error {
	return ErrRegister
}

type ErrRegisterIllegal string

func (err ErrRegisterIllegal) Error() string {
	return f("illegal use of %v register", string(err))
}

func (err ErrRegisterIllegal) Unwrap() error {
	return ErrRegister
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int    // Source line number.
	Index  int    // 1-based instruction position, or 0 for declarations.
	Line   string // Source text.
	Err    error
}

func (err *ErrSyntax) Error() string {
	if err.Index > 0 {
		return f("line %d (instruction %d) '%v' %v", err.LineNo, err.Index, err.Line, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
