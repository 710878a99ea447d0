package isa

// Stage is the pipeline stage an instruction is currently displayed in.
// It is mutated for display purposes only; it has no bearing on the
// core's internal scheduling, which is driven entirely by ROB/RS state.
type Stage uint8

const (
	StageIssue Stage = iota
	StageExecute
	StageWriteResult
	StageCommitted
)

// String renders the stage the way a presenter would display it.
func (s Stage) String() string {
	switch s {
	case StageIssue:
		return "Issue"
	case StageExecute:
		return "Execute"
	case StageWriteResult:
		return "Write Result"
	case StageCommitted:
		return "Committed"
	default:
		return "Unknown"
	}
}

// Instruction is immutable after parsing except for Stage, which the
// controller updates purely for display.
type Instruction struct {
	// ID is the 1-based, monotonically assigned instruction identifier.
	ID int

	Op Opcode

	// Dest is the architectural destination register name, or "" for
	// stores. For BEQ/BNE it holds the first compared register, which
	// the branch does not write.
	Dest string

	// Src1, Src2 are architectural register names, or "" when unused.
	// For BEQ/BNE, Src2 initially holds the raw immediate text (see
	// parser package); for ADDI, Src2 holds the immediate literal text.
	Src1, Src2 string

	// Immediate is the signed memory offset (loads/stores) or branch
	// displacement (BEQ/BNE).
	Immediate int64

	// PCAddr is this instruction's 0-based position in the parsed
	// program; branch targets are computed relative to it.
	PCAddr int

	// RawText is the original source line, kept verbatim for display.
	RawText string

	// Stage is mutated by the controller after each stage transition.
	Stage Stage
}
