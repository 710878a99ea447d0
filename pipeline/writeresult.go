package pipeline

import (
	"fmt"

	"github.com/archsim/tomasim/event"
	"github.com/archsim/tomasim/isa"
	"github.com/archsim/tomasim/regfile"
)

// writeResult runs the Write-Result (CDB) stage: every busy station
// with TimeLeft==0 computes its result and broadcasts it, per-station
// in declared order, with forwarding visible to later stations in the
// same pass (spec.md §4.4, §5).
func (p *Pipeline) writeResult() {
	for _, station := range p.pool.All() {
		if !station.Busy || station.TimeLeft != 0 {
			continue
		}

		result := computeResult(station.Op, station.Vj.V, station.Vk.V, p.memory)

		if entry := p.rob.ByID(station.Dest); entry != nil {
			entry.Value = result
			entry.Ready = true
			entry.Instr.Stage = isa.StageWriteResult
		}

		p.log.Append(event.Event{
			Cycle:  p.clock,
			Kind:   event.KindWrite,
			Detail: fmt.Sprintf("%s broadcasts %d (ROB#%d)", station.Name, result, station.Dest),
		})

		p.forward(station.Dest, result)

		station.Clear()
	}
}

// forward delivers producer's result to every busy station waiting on
// it, resolving whichever of Vj/Vk carries the matching tag.
func (p *Pipeline) forward(producer int, value int64) {
	for _, station := range p.pool.All() {
		if !station.Busy {
			continue
		}
		if !station.Vj.Resolved() && station.Vj.Q == producer {
			station.Vj.V = value
			station.Vj.Q = 0
		}
		if !station.Vk.Resolved() && station.Vk.Q == producer {
			station.Vk.V = value
			station.Vk.Q = 0
		}
	}
}

// computeResult applies the per-opcode result formula of spec.md §4.4.
func computeResult(op isa.Opcode, vj, vk int64, mem *regfile.Memory) int64 {
	switch op {
	case isa.OpADD, isa.OpADDI:
		return vj + vk
	case isa.OpSUB:
		return vj - vk
	case isa.OpMUL:
		return vj * vk
	case isa.OpDIV:
		if vk == 0 {
			return 0
		}
		return floorDiv(vj, vk)
	case isa.OpLW, isa.OpLD:
		return mem.Load(vk)
	case isa.OpSW, isa.OpSD:
		mem.Store(vk, vj)
		return vj
	case isa.OpBEQ:
		if vj == vk {
			return 1
		}
		return 0
	case isa.OpBNE:
		if vj != vk {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// floorDiv rounds toward negative infinity, matching the source
// language's floor-division convention (spec.md §4.4).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
