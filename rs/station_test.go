package rs

import (
	"testing"

	"github.com/archsim/tomasim/isa"
)

func TestNewPoolNamesSlotsInDeclaredOrder(t *testing.T) {
	p := NewPool(2, 1, 3)

	wantAdd := []string{"ADD1", "ADD2"}
	for i, s := range p.Add {
		if s.Name != wantAdd[i] {
			t.Errorf("p.Add[%d].Name = %q, want %q", i, s.Name, wantAdd[i])
		}
	}
	if len(p.Mul) != 1 || p.Mul[0].Name != "MUL1" {
		t.Errorf("p.Mul = %v, want a single MUL1 slot", p.Mul)
	}
	if len(p.Load) != 3 || p.Load[2].Name != "LOAD3" {
		t.Errorf("p.Load = %v, want 3 slots ending in LOAD3", p.Load)
	}
}

func TestFirstFreeReturnsNilWhenSaturated(t *testing.T) {
	p := NewPool(1, 0, 0)

	s := p.FirstFree(isa.RSClassADD)
	if s == nil {
		t.Fatalf("expected a free ADD station")
	}
	s.Busy = true

	if got := p.FirstFree(isa.RSClassADD); got != nil {
		t.Errorf("FirstFree after saturation = %v, want nil", got)
	}
}

func TestClearResetsEveryField(t *testing.T) {
	s := &Station{Name: "ADD1", Class: isa.RSClassADD}
	s.Busy = true
	s.Op = isa.OpADD
	s.Vj = Operand{V: 5}
	s.Vk = Operand{Q: 3}
	s.Dest = 9
	s.TimeLeft = 2

	s.Clear()

	if s.Busy || s.Vj != (Operand{}) || s.Vk != (Operand{}) || s.Dest != 0 || s.TimeLeft != 0 {
		t.Errorf("Clear left stale state: %+v", s)
	}
}

func TestOperandResolved(t *testing.T) {
	if !(Operand{V: 42}).Resolved() {
		t.Errorf("an operand with Q==0 should report Resolved()")
	}
	if (Operand{Q: 5}).Resolved() {
		t.Errorf("an operand with a pending producer tag should not report Resolved()")
	}
}

func TestFlushClearsAllClasses(t *testing.T) {
	p := NewPool(1, 1, 1)
	for _, s := range p.All() {
		s.Busy = true
	}

	p.Flush()

	for _, s := range p.All() {
		if s.Busy {
			t.Errorf("station %s still busy after Flush", s.Name)
		}
	}
}
