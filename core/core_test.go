package core_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archsim/tomasim/core"
	"github.com/archsim/tomasim/examples"
	"github.com/archsim/tomasim/latency"
)

var _ = Describe("Core", func() {
	var c *core.Core

	BeforeEach(func() {
		c = core.New(latency.Default())
	})

	Describe("Run on the data-dependency example", func() {
		BeforeEach(func() {
			c.Load(examples.DataDependency)
			c.Run(40)
		})

		It("drains the pipeline without a branch misprediction", func() {
			Expect(c.Done()).To(BeTrue())
			Expect(c.Stats().BranchMiss).To(Equal(uint64(0)))
			Expect(c.Stats().Retired).To(Equal(uint64(6)))
		})

		It("reports only the changed registers in its snapshot", func() {
			snap := c.Snapshot()
			Expect(snap.Registers).To(Equal(map[string]int64{
				"R2": 99,
				"R6": 99,
			}))
			Expect(snap.ROBEntries).To(BeEmpty())
		})
	})

	Describe("Run on the branch-misprediction example", func() {
		BeforeEach(func() {
			c.Load(examples.BranchMisprediction)
			c.Run(40)
		})

		It("flushes exactly once and still retires every committed instruction", func() {
			Expect(c.Done()).To(BeTrue())
			Expect(c.Stats().BranchMiss).To(Equal(uint64(1)))
			Expect(c.Stats().Retired).To(Equal(uint64(5)))
		})

		It("never commits the speculative instructions on the not-taken path", func() {
			snap := c.Snapshot()
			Expect(snap.Registers).To(Equal(map[string]int64{
				"R1": 10,
				"R2": 10,
			}))
		})

		It("logs a FLUSH event", func() {
			found := false
			for _, line := range c.Log().Lines() {
				if strings.Contains(line, "FLUSH") {
					found = true
				}
			}
			Expect(found).To(BeTrue())
		})
	})

	Describe("a freshly constructed core before Load", func() {
		It("reports zeroed stats", func() {
			Expect(c.Stats()).To(Equal(core.Stats{}))
		})
	})
})
