// Package parser turns an assembly text block into an ordered list of
// decoded isa.Instruction values, following spec.md §4.1's grammar.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/archsim/tomasim/isa"
)

// memoryForm matches "OP reg, imm(base)" lines: LW, LD, SW, SD.
var memoryForm = regexp.MustCompile(`^(\w+)\s+(\w+)\s*,\s*(-?\d+)\s*\(\s*(\w+)\s*\)\s*$`)

// Parse decodes a multi-line assembly text block into an ordered
// instruction list. Each instruction records its 0-based position in
// the returned slice as PCAddr. Comments (anything after '#'), blank
// lines, and unknown opcodes are dropped silently; the parser never
// fails.
func Parse(text string) []isa.Instruction {
	var program []isa.Instruction
	nextID := 1

	for _, rawLine := range strings.Split(text, "\n") {
		line := stripComment(rawLine)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		instr, ok := parseLine(line, nextID, len(program))
		if !ok {
			continue
		}

		nextID++
		program = append(program, instr)
	}

	return program
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func parseLine(line string, id int, pcAddr int) (isa.Instruction, bool) {
	fields := strings.Fields(strings.SplitN(line, " ", 2)[0])
	if len(fields) == 0 {
		return isa.Instruction{}, false
	}
	opName := strings.ToUpper(fields[0])

	op, ok := isa.OpcodeFromString(opName)
	if !ok {
		return isa.Instruction{}, false
	}

	instr := isa.Instruction{
		ID:      id,
		Op:      op,
		PCAddr:  pcAddr,
		RawText: line,
		Stage:   isa.StageIssue,
	}

	if op.IsMemory() {
		return parseMemoryForm(line, instr)
	}
	return parseRegisterForm(line, instr)
}

func parseMemoryForm(line string, instr isa.Instruction) (isa.Instruction, bool) {
	m := memoryForm.FindStringSubmatch(line)
	if m == nil {
		return isa.Instruction{}, false
	}

	arg1 := m[2]
	offset := parseInt(m[3])
	base := m[4]

	if instr.Op.IsLoad() {
		instr.Dest = arg1
		instr.Src1 = ""
		instr.Src2 = base
	} else {
		instr.Dest = ""
		instr.Src1 = arg1
		instr.Src2 = base
	}
	instr.Immediate = offset

	return instr, true
}

func parseRegisterForm(line string, instr isa.Instruction) (isa.Instruction, bool) {
	// Drop the opcode token, split the remainder on whitespace/commas.
	rest := strings.TrimSpace(line[len(fields0(line)):])
	toks := splitOperands(rest)

	if instr.Op.IsBranch() {
		if len(toks) != 3 {
			return isa.Instruction{}, false
		}
		instr.Dest = toks[0]
		instr.Src1 = toks[1]
		instr.Src2 = toks[2]
		instr.Immediate = 0
		return instr, true
	}

	if len(toks) != 3 {
		return isa.Instruction{}, false
	}
	instr.Dest = toks[0]
	instr.Src1 = toks[1]
	instr.Src2 = toks[2]

	return instr, true
}

func fields0(line string) string {
	f := strings.Fields(line)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func splitOperands(rest string) []string {
	parts := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return parts
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
