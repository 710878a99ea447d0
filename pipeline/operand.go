package pipeline

import (
	"regexp"
	"strconv"

	"github.com/archsim/tomasim/rs"
)

var registerName = regexp.MustCompile(`^R[0-9]+$`)

// isRegister reports whether name looks like an architectural register
// name (R0, R1, ...) rather than an immediate literal.
func isRegister(name string) bool {
	return registerName.MatchString(name)
}

// operandState implements the operand-state rule of spec.md §4.2: given
// an operand name, resolve it to either a known value or a pending ROB
// producer tag.
func (p *Pipeline) operandState(name string) rs.Operand {
	if name == "" {
		return rs.Operand{}
	}

	if isRegister(name) {
		if robID, pending := p.rat.Lookup(name); pending {
			if entry := p.rob.ByID(robID); entry != nil {
				if entry.Ready {
					return rs.Operand{V: entry.Value}
				}
				return rs.Operand{Q: robID}
			}
			// RAT points at an entry that no longer exists (should not
			// happen outside a flush, which also resets the RAT), fall
			// through to the register file.
		}
		return rs.Operand{V: p.regFile.Read(name)}
	}

	n, err := strconv.ParseInt(name, 10, 64)
	if err != nil {
		return rs.Operand{V: 0}
	}
	return rs.Operand{V: n}
}

// literal parses name as an integer literal, 0 on failure. Used for
// ADDI's immediate source operand and for lifting a branch's textual
// displacement into Instruction.Immediate.
func literal(name string) (int64, bool) {
	n, err := strconv.ParseInt(name, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
