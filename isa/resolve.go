package isa

// Effective is the format and opcode that actually encode one line.
type Effective struct {
	Format Format
	Opcode Opcode
}

// Resolve selects the encoding of an instruction from the shape of its
// operands. Dual-form instructions use their secondary opcode in format B
// when the second operand is an immediate literal, and their primary opcode
// and format otherwise. The Spec is never modified.
func Resolve(spec Spec, operands []string) Effective {
	if spec.HasSecondary && len(operands) >= 2 && IsImmediate(operands[1]) {
		return Effective{Format: FORMAT_B, Opcode: spec.Secondary}
	}

	return Effective{Format: spec.Format, Opcode: spec.Opcode}
}

// IsImmediate returns true if the token carries the immediate marker.
func IsImmediate(token string) bool {
	return len(token) > 0 && token[0] == IMMEDIATE_MARKER
}
