package core

import (
	"github.com/archsim/tomasim/pipeline"
	"github.com/archsim/tomasim/rob"
	"github.com/archsim/tomasim/rs"
)

// InstructionView is a presenter-facing view of a queued instruction,
// including its live pipeline stage and its 0-based position in the
// program (spec.md §6). The current program counter is Snapshot.PC.
type InstructionView struct {
	ID      int
	RawText string
	Stage   string
	PCAddr  int
}

// StationView is a presenter-facing view of a reservation-station slot.
type StationView struct {
	Name     string
	Class    string
	Busy     bool
	Op       string
	Vj, Vk   int64
	Qj, Qk   int
	Dest     int
	TimeLeft int
}

// ROBEntryView is a presenter-facing view of one occupied ROB slot, in
// commit order.
type ROBEntryView struct {
	RobID   int
	Instr   string
	DestReg string
	Value   int64
	Ready   bool
}

// Snapshot is the complete internal state spec.md §6 requires a
// presenter be able to read after every Step.
type Snapshot struct {
	Clock      uint64
	Retired    uint64
	StallsROB  uint64
	StallsRS   uint64
	BranchMiss uint64
	IPC        float64

	PC int

	Instructions []InstructionView
	Stations     []StationView
	ROBEntries   []ROBEntryView
	RAT          map[string]int
	Registers    map[string]int64

	Log []string
}

func buildSnapshot(p *pipeline.Pipeline) Snapshot {
	snap := Snapshot{
		Clock:      p.Clock(),
		Retired:    p.Retired(),
		StallsROB:  p.StallsROB(),
		StallsRS:   p.StallsRS(),
		BranchMiss: p.BranchMiss(),
		IPC:        p.IPC(),
		PC:         p.PC(),
		RAT:        p.RAT().Bindings(),
		Registers:  p.RegisterFile().Changed(),
		Log:        p.Log().Lines(),
	}

	for _, instr := range p.Program() {
		snap.Instructions = append(snap.Instructions, InstructionView{
			ID:      instr.ID,
			RawText: instr.RawText,
			Stage:   instr.Stage.String(),
			PCAddr:  instr.PCAddr,
		})
	}

	for _, s := range p.Pool().All() {
		snap.Stations = append(snap.Stations, stationView(s))
	}

	p.ROB().InOrder(func(e *rob.Entry) {
		snap.ROBEntries = append(snap.ROBEntries, ROBEntryView{
			RobID:   e.RobID,
			Instr:   e.Instr.RawText,
			DestReg: e.DestReg,
			Value:   e.Value,
			Ready:   e.Ready,
		})
	})

	return snap
}

func stationView(s *rs.Station) StationView {
	return StationView{
		Name:     s.Name,
		Class:    s.Class.String(),
		Busy:     s.Busy,
		Op:       s.Op.String(),
		Vj:       s.Vj.V,
		Vk:       s.Vk.V,
		Qj:       s.Vj.Q,
		Qk:       s.Vk.Q,
		Dest:     s.Dest,
		TimeLeft: s.TimeLeft,
	}
}
