package pipeline

import (
	"fmt"

	"github.com/archsim/tomasim/event"
	"github.com/archsim/tomasim/isa"
	"github.com/archsim/tomasim/rob"
)

// commit runs the Commit stage. It returns true if a misprediction
// flush occurred, in which case the caller must skip Write-Result and
// Execute for the remainder of this cycle (spec.md §4.7 step 4).
func (p *Pipeline) commit() bool {
	head := p.rob.Head()
	if head == nil || !head.Ready {
		return false
	}

	if head.Instr.Op.IsBranch() {
		return p.commitBranch(head)
	}

	p.commitRetire(head)
	return false
}

// commitBranch resolves a committing BEQ/BNE. Per spec.md §4.7, the
// front end always predicts not-taken; a satisfied predicate (value==1)
// is therefore always a misprediction.
func (p *Pipeline) commitBranch(head *rob.Entry) bool {
	taken := head.Value == 1

	if !taken {
		p.log.Append(event.Event{
			Cycle:  p.clock,
			Kind:   event.KindNotTakenCorrect,
			Detail: head.Instr.RawText,
		})
		p.commitRetire(head)
		return false
	}

	p.branchMiss++
	p.commitRetire(head)

	target := head.Instr.PCAddr + 1 + int(head.Instr.Immediate)
	p.pc = target

	p.flush()

	p.log.Append(event.Event{
		Cycle:  p.clock,
		Kind:   event.KindFlush,
		Detail: fmt.Sprintf("mispredicted %s, redirecting to pc=%d", head.Instr.RawText, target),
	})

	return true
}

// commitRetire performs the common retirement bookkeeping: optional
// register write-back, marking Committed, and freeing the ROB slot.
func (p *Pipeline) commitRetire(head *rob.Entry) {
	if head.DestReg != "" {
		if robID, pending := p.rat.Lookup(head.DestReg); (pending && robID == head.RobID) || !pending {
			p.regFile.Write(head.DestReg, head.Value)
			p.rat.ClearIfOwner(head.DestReg, head.RobID)
		}
	}

	head.Instr.Stage = isa.StageCommitted

	p.log.Append(event.Event{
		Cycle:  p.clock,
		Kind:   event.KindCommit,
		Detail: head.Instr.RawText,
	})

	p.rob.CommitHead()
	p.retired++
}

// flush atomically discards all speculative state: the entire ROB,
// every reservation station, and every RAT binding. Committed
// register-file values are preserved (spec.md §4.7 step 3).
func (p *Pipeline) flush() {
	p.rob.Flush()
	p.pool.Flush()
	p.rat.Reset()
}
