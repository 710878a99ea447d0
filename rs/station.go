// Package rs implements the reservation-station pools: fixed slots by
// functional-unit class (ADD, MUL, LOAD) that hold operands or
// producer-ROB tags and a countdown execute timer.
package rs

import (
	"strconv"

	"github.com/archsim/tomasim/isa"
)

// noProducer marks an operand tag slot as resolved (no pending producer).
const noProducer = 0

// Operand holds either a resolved value or a pending ROB producer tag.
// Invariant (spec.md §3): exactly one of (Q==0, V defined) or (Q!=0, V
// undefined) holds at any time; Q==0 means "resolved".
type Operand struct {
	V int64
	Q int // 0 means resolved; otherwise a ROB ID
}

// Resolved reports whether this operand's value is known.
func (o Operand) Resolved() bool { return o.Q == noProducer }

// Station is a single reservation-station slot.
type Station struct {
	Name  string
	Class isa.RSClass
	Busy  bool

	Op isa.Opcode
	Vj Operand
	Vk Operand

	// Dest is the ROB ID this station writes its result to.
	Dest int

	// TimeLeft is the remaining execute-stage countdown.
	TimeLeft int
}

// Clear resets every field to its neutral value, per the invariant
// "busy false implies all other fields neutral" (spec.md §3).
func (s *Station) Clear() {
	s.Busy = false
	s.Op = 0
	s.Vj = Operand{}
	s.Vk = Operand{}
	s.Dest = 0
	s.TimeLeft = 0
}

// Pool is the full set of reservation stations, partitioned by class.
type Pool struct {
	Add  []*Station
	Mul  []*Station
	Load []*Station
}

// NewPool builds a Pool with the given per-class slot counts, named in
// declared order ("ADD1", "ADD2", ... "MUL1", ... "LOAD1", ...).
func NewPool(addCount, mulCount, loadCount int) *Pool {
	p := &Pool{}
	for i := 0; i < addCount; i++ {
		p.Add = append(p.Add, &Station{Name: stationName("ADD", i+1), Class: isa.RSClassADD})
	}
	for i := 0; i < mulCount; i++ {
		p.Mul = append(p.Mul, &Station{Name: stationName("MUL", i+1), Class: isa.RSClassMUL})
	}
	for i := 0; i < loadCount; i++ {
		p.Load = append(p.Load, &Station{Name: stationName("LOAD", i+1), Class: isa.RSClassLOAD})
	}
	return p
}

func stationName(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// ClassSlots returns the slots belonging to class, in declared order.
func (p *Pool) ClassSlots(class isa.RSClass) []*Station {
	switch class {
	case isa.RSClassADD:
		return p.Add
	case isa.RSClassMUL:
		return p.Mul
	case isa.RSClassLOAD:
		return p.Load
	default:
		return nil
	}
}

// FirstFree returns the first non-busy slot in class's declared order,
// or nil if the pool is saturated (spec.md §4.2: "first non-busy slot
// ... in declared order. No tie-breaking beyond fixed order").
func (p *Pool) FirstFree(class isa.RSClass) *Station {
	for _, s := range p.ClassSlots(class) {
		if !s.Busy {
			return s
		}
	}
	return nil
}

// All returns every station across all three classes, in declared
// (ADD, MUL, LOAD) order — the stable tie order used for CDB write
// ordering within a Write-Result pass (spec.md §4.4, §5).
func (p *Pool) All() []*Station {
	all := make([]*Station, 0, len(p.Add)+len(p.Mul)+len(p.Load))
	all = append(all, p.Add...)
	all = append(all, p.Mul...)
	all = append(all, p.Load...)
	return all
}

// Flush clears every station in every class (spec.md §4.7).
func (p *Pool) Flush() {
	for _, s := range p.All() {
		s.Clear()
	}
}
