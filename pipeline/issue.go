package pipeline

import (
	"fmt"

	"github.com/archsim/tomasim/event"
	"github.com/archsim/tomasim/isa"
	"github.com/archsim/tomasim/rs"
)

// issue runs the Issue stage: at most one instruction per cycle,
// following the three preconditions of spec.md §4.5 in order.
func (p *Pipeline) issue() {
	if p.pc >= len(p.program) {
		return // end of program, no bubble counted
	}

	instr := &p.program[p.pc]

	if p.rob.Full() {
		p.stallsROB++
		p.log.Append(event.Event{
			Cycle:  p.clock,
			Kind:   event.KindBubbleROB,
			Detail: "no free ROB entry",
		})
		return
	}

	class := instr.Op.Class()
	station := p.pool.FirstFree(class)
	if station == nil {
		p.stallsRS++
		p.log.Append(event.Event{
			Cycle:  p.clock,
			Kind:   event.KindBubbleRS,
			Detail: fmt.Sprintf("RS %s full", class),
		})
		return
	}

	destReg := ""
	if instr.Op.HasDest() {
		destReg = instr.Dest
	}

	entry := p.rob.Alloc(instr, destReg)

	vj, vk := p.latchOperands(instr)

	station.Busy = true
	station.Op = instr.Op
	station.Vj = vj
	station.Vk = vk
	station.Dest = entry.RobID
	station.TimeLeft = p.cfg.Latency(instr.Op)

	if destReg != "" {
		p.rat.Bind(destReg, entry.RobID)
	}

	instr.Stage = isa.StageExecute
	p.pc++

	p.log.Append(event.Event{
		Cycle:  p.clock,
		Kind:   event.KindIssue,
		Detail: fmt.Sprintf("%s -> %s (ROB#%d)", instr.RawText, station.Name, entry.RobID),
	})
}

// latchOperands applies the per-opcode operand-mapping recipes of
// spec.md §4.5, built on the operand-state rule of §4.2.
func (p *Pipeline) latchOperands(instr *isa.Instruction) (vj, vk rs.Operand) {
	switch {
	case instr.Op.IsStore():
		return p.operandState(instr.Src1), p.operandState(instr.Src2)

	case instr.Op.IsLoad():
		return rs.Operand{V: instr.Immediate}, p.operandState(instr.Src2)

	case instr.Op == isa.OpADDI:
		imm, _ := literal(instr.Src2)
		return p.operandState(instr.Src1), rs.Operand{V: imm}

	case instr.Op.IsBranch():
		if instr.Immediate == 0 {
			if imm, ok := literal(instr.Src2); ok {
				instr.Immediate = imm
			}
		}
		return p.operandState(instr.Dest), p.operandState(instr.Src1)

	default: // ADD, SUB, MUL, DIV
		return p.operandState(instr.Src1), p.operandState(instr.Src2)
	}
}
