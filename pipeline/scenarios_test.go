package pipeline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archsim/tomasim/examples"
	"github.com/archsim/tomasim/isa"
	"github.com/archsim/tomasim/latency"
	"github.com/archsim/tomasim/parser"
	"github.com/archsim/tomasim/pipeline"
)

// run steps p until Done() or maxCycles is reached, whichever comes
// first.
func run(p *pipeline.Pipeline, maxCycles int) {
	for i := 0; i < maxCycles && !p.Done(); i++ {
		p.Step()
	}
}

var _ = Describe("Scenario A: pure dependencies, no branches", func() {
	It("retires all six instructions with the expected register values", func() {
		p := pipeline.New(latency.Default())
		p.Load(parser.Parse(examples.DataDependency))

		run(p, 40)

		Expect(p.Done()).To(BeTrue())
		Expect(p.BranchMiss()).To(Equal(uint64(0)))
		Expect(p.Retired()).To(Equal(uint64(6)))
		Expect(p.RegisterFile().Read("R0")).To(Equal(int64(0)))
		Expect(p.RegisterFile().Read("R2")).To(Equal(int64(99)))
		Expect(p.RegisterFile().Read("R6")).To(Equal(int64(99)))
		Expect(p.RegisterFile().Read("R8")).To(Equal(int64(0)))
	})
})

var _ = Describe("Scenario B: branch misprediction", func() {
	It("flushes the speculative path exactly once and resumes at the target", func() {
		p := pipeline.New(latency.Default())
		p.Load(parser.Parse(examples.BranchMisprediction))

		run(p, 40)

		Expect(p.Done()).To(BeTrue())
		Expect(p.BranchMiss()).To(Equal(uint64(1)))
		Expect(p.Retired()).To(Equal(uint64(5)))
		Expect(p.RegisterFile().Read("R1")).To(Equal(int64(10)))
		Expect(p.RegisterFile().Read("R2")).To(Equal(int64(10)))
		Expect(p.RegisterFile().Read("R3")).To(Equal(int64(0)))
		Expect(p.RegisterFile().Read("R4")).To(Equal(int64(0)))
		Expect(p.RegisterFile().Read("R5")).To(Equal(int64(0)))
	})
})

var _ = Describe("Scenario C: ROB-full bubble", func() {
	It("stalls Issue and logs a ROB-full bubble once the buffer saturates", func() {
		cfg := latency.Default()
		cfg.ROBCapacity = 1
		cfg.RSCounts[isa.RSClassADD] = 1
		cfg.OpLatency[isa.OpADDI] = 5

		p := pipeline.New(cfg)
		p.Load(parser.Parse("ADDI R1, R0, 1\nADDI R2, R0, 2\n"))

		p.Step() // cycle 1: issues instr1, ROB now full (capacity 1)
		p.Step() // cycle 2: instr1 not yet ready; Issue of instr2 hits ROB full

		Expect(p.StallsROB()).To(Equal(uint64(1)))
		Expect(p.PC()).To(Equal(1))

		found := false
		for _, line := range p.Log().Lines() {
			if line == "[cycle 2] ROB full: no free ROB entry" {
				found = true
			}
		}
		Expect(found).To(BeTrue())
	})
})

var _ = Describe("Scenario D: RS-class-full bubble", func() {
	It("stalls Issue and logs an RS-full bubble once the MUL pool saturates", func() {
		cfg := latency.Default()
		cfg.RSCounts[isa.RSClassMUL] = 1
		cfg.OpLatency[isa.OpMUL] = 6

		p := pipeline.New(cfg)
		p.Load(parser.Parse("MUL R1, R2, R3\nMUL R4, R5, R6\n"))

		p.Step() // cycle 1: issues instr1 into the sole MUL slot
		p.Step() // cycle 2: instr2 finds the MUL pool saturated

		Expect(p.StallsRS()).To(Equal(uint64(1)))
		Expect(p.PC()).To(Equal(1))

		found := false
		for _, line := range p.Log().Lines() {
			if line == "[cycle 2] RS full: RS MUL full" {
				found = true
			}
		}
		Expect(found).To(BeTrue())
	})
})

var _ = Describe("Scenario E: RAT shadowing", func() {
	It("suppresses the earlier producer's write-back once its destination is renamed again", func() {
		p := pipeline.New(latency.Default())
		p.Load(parser.Parse("ADDI R1, R0, 1\nADDI R1, R0, 2\n"))

		run(p, 20)

		Expect(p.Done()).To(BeTrue())
		Expect(p.Retired()).To(Equal(uint64(2)))
		Expect(p.RegisterFile().Read("R1")).To(Equal(int64(2)))
	})
})

var _ = Describe("Scenario F: operand forwarding", func() {
	It("latches both operand slots of a doubly-dependent instruction in the same Write-Result pass", func() {
		p := pipeline.New(latency.Default())
		p.Load(parser.Parse("ADD R3, R1, R2\nADD R4, R3, R3\n"))

		p.Step() // cycle 1: issue ADD R3,R1,R2
		p.Step() // cycle 2: issue ADD R4,R3,R3 with Qj=Qk=ROB#1

		stations := p.Pool().All()

		foundDependent := false
		for _, s := range stations {
			if s.Busy && s.Op == isa.OpADD && s.Dest == 2 {
				Expect(s.Vj.Q).To(Equal(1))
				Expect(s.Vk.Q).To(Equal(1))
				foundDependent = true
			}
		}
		Expect(foundDependent).To(BeTrue())

		run(p, 20)

		Expect(p.Done()).To(BeTrue())
		// R1=R2=0 initially, so R3=0 and R4=R3+R3=0.
		Expect(p.RegisterFile().Read("R3")).To(Equal(int64(0)))
		Expect(p.RegisterFile().Read("R4")).To(Equal(int64(0)))
	})
})
