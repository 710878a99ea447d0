// Package pipeline implements the Tomasulo pipeline controller: the
// per-cycle driver that runs Commit, Write-Result, Execute, and Issue
// in that fixed order (spec.md §4.6), updates metrics, and emits the
// typed event log.
package pipeline

import (
	"github.com/archsim/tomasim/event"
	"github.com/archsim/tomasim/isa"
	"github.com/archsim/tomasim/latency"
	"github.com/archsim/tomasim/rat"
	"github.com/archsim/tomasim/regfile"
	"github.com/archsim/tomasim/rob"
	"github.com/archsim/tomasim/rs"
)

// Pipeline holds every piece of microarchitectural state and drives it
// one cycle at a time via Step.
type Pipeline struct {
	cfg *latency.Config

	regFile *regfile.RegFile
	memory  *regfile.Memory

	rat  *rat.RAT
	rob  *rob.ROB
	pool *rs.Pool

	program []isa.Instruction
	pc      int

	log *event.Log

	clock      uint64
	retired    uint64
	stallsROB  uint64
	stallsRS   uint64
	branchMiss uint64
}

// New builds an empty Pipeline for the given architectural config.
func New(cfg *latency.Config) *Pipeline {
	p := &Pipeline{cfg: cfg, log: &event.Log{}}
	p.reset()
	return p
}

// reset (re)builds all microarchitectural state from cfg, independent
// of any loaded program.
func (p *Pipeline) reset() {
	p.regFile = regfile.New(p.cfg.RegisterCount)
	p.memory = regfile.NewMemory()
	p.rat = rat.New()
	p.rob = rob.New(p.cfg.ROBCapacity)
	p.pool = rs.NewPool(
		p.cfg.RSCount(isa.RSClassADD),
		p.cfg.RSCount(isa.RSClassMUL),
		p.cfg.RSCount(isa.RSClassLOAD),
	)
	p.pc = 0
	p.clock = 0
	p.retired = 0
	p.stallsROB = 0
	p.stallsRS = 0
	p.branchMiss = 0
}

// Load resets all microarchitectural state and installs program
// (spec.md §6: "load(program) — reset all microarchitectural state and
// install the program").
func (p *Pipeline) Load(program []isa.Instruction) {
	p.reset()
	p.log.Reset()
	p.program = program
}

// Done reports whether the pipeline has drained: PC has reached the
// end of the queue and the ROB is empty (spec.md §6: step() is a no-op
// in this state).
func (p *Pipeline) Done() bool {
	return p.pc >= len(p.program) && p.rob.Empty()
}

// Step advances the pipeline by exactly one cycle, running Commit,
// Write-Result, Execute, then Issue (spec.md §4.6). It is a no-op once
// Done reports true.
func (p *Pipeline) Step() {
	if p.Done() {
		return
	}

	p.clock++

	flushed := p.commit()
	if flushed {
		// A taken branch flushes at Commit; Write-Result and Execute do
		// not run after a flush this cycle (spec.md §4.7 step 4).
		return
	}

	p.writeResult()
	p.execute()
	p.issue()
}

// Clock, Retired, StallsROB, StallsRS, BranchMiss expose the metrics
// counters spec.md §6 requires the presenter to read.
func (p *Pipeline) Clock() uint64      { return p.clock }
func (p *Pipeline) Retired() uint64    { return p.retired }
func (p *Pipeline) StallsROB() uint64  { return p.stallsROB }
func (p *Pipeline) StallsRS() uint64   { return p.stallsRS }
func (p *Pipeline) BranchMiss() uint64 { return p.branchMiss }

// IPC returns instructions retired per cycle, 0 when clock is 0.
func (p *Pipeline) IPC() float64 {
	if p.clock == 0 {
		return 0
	}
	return float64(p.retired) / float64(p.clock)
}

// Log returns the append-only event log.
func (p *Pipeline) Log() *event.Log { return p.log }

// Program returns the currently loaded instruction queue, for
// presenter display of per-instruction stage.
func (p *Pipeline) Program() []isa.Instruction { return p.program }

// PC returns the next-to-issue program-counter index.
func (p *Pipeline) PC() int { return p.pc }

// RegisterFile exposes the architectural register file for presenter
// display.
func (p *Pipeline) RegisterFile() *regfile.RegFile { return p.regFile }

// RAT exposes the Register Alias Table for presenter display.
func (p *Pipeline) RAT() *rat.RAT { return p.rat }

// ROB exposes the Reorder Buffer for presenter display.
func (p *Pipeline) ROB() *rob.ROB { return p.rob }

// Pool exposes the reservation-station pools for presenter display.
func (p *Pipeline) Pool() *rs.Pool { return p.pool }
