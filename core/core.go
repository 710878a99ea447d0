// Package core provides the cycle-accurate Tomasulo core model. It
// wraps the pipeline controller to provide the high-level interface
// spec.md §6 names: load, step, and a full-state snapshot for a
// presenter to render.
package core

import (
	"github.com/archsim/tomasim/event"
	"github.com/archsim/tomasim/isa"
	"github.com/archsim/tomasim/latency"
	"github.com/archsim/tomasim/parser"
	"github.com/archsim/tomasim/pipeline"
)

// Stats holds the performance counters spec.md §6 requires.
type Stats struct {
	Clock      uint64
	Retired    uint64
	StallsROB  uint64
	StallsRS   uint64
	BranchMiss uint64
	IPC        float64
}

// Core wraps a Pipeline and exposes the control operations required by
// an external presenter.
type Core struct {
	pipeline *pipeline.Pipeline
}

// New creates a Core using cfg as its architectural configuration.
func New(cfg *latency.Config) *Core {
	return &Core{pipeline: pipeline.New(cfg)}
}

// Load parses source as assembly text and installs it, resetting all
// microarchitectural state (spec.md §6).
func (c *Core) Load(source string) {
	program := parser.Parse(source)
	c.pipeline.Load(program)
}

// LoadProgram installs an already-parsed instruction list.
func (c *Core) LoadProgram(program []isa.Instruction) {
	c.pipeline.Load(program)
}

// Step advances the core by one clock cycle.
func (c *Core) Step() {
	c.pipeline.Step()
}

// Done reports whether the core has drained: the instruction queue is
// exhausted and the ROB is empty.
func (c *Core) Done() bool {
	return c.pipeline.Done()
}

// Run steps the core until Done, or until maxCycles steps have run
// (maxCycles<=0 means no cap).
func (c *Core) Run(maxCycles int) {
	for i := 0; !c.Done() && (maxCycles <= 0 || i < maxCycles); i++ {
		c.pipeline.Step()
	}
}

// Stats returns the current performance counters.
func (c *Core) Stats() Stats {
	return Stats{
		Clock:      c.pipeline.Clock(),
		Retired:    c.pipeline.Retired(),
		StallsROB:  c.pipeline.StallsROB(),
		StallsRS:   c.pipeline.StallsRS(),
		BranchMiss: c.pipeline.BranchMiss(),
		IPC:        c.pipeline.IPC(),
	}
}

// Log returns the append-only event log.
func (c *Core) Log() *event.Log {
	return c.pipeline.Log()
}

// Snapshot returns the full internal state for a presenter to render
// (spec.md §6).
func (c *Core) Snapshot() Snapshot {
	return buildSnapshot(c.pipeline)
}
