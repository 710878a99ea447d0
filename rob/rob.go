// Package rob implements the Reorder Buffer: a fixed-capacity circular
// buffer of in-flight instructions enforcing in-order commit.
package rob

import "github.com/archsim/tomasim/isa"

// Entry is one in-flight instruction's commit-time bookkeeping.
type Entry struct {
	// RobID is 1-based and stable for this entry's lifetime; it is
	// tail_index+1 at allocation time, NOT monotonic across flushes —
	// values are reused once the slot that produced them is freed
	// (spec.md §4.5).
	RobID int

	Instr *isa.Instruction

	// DestReg is the architectural register this entry writes on
	// commit; empty for stores and branches.
	DestReg string

	Value int64
	Ready bool
}

// ROB is the fixed-capacity circular reorder buffer.
type ROB struct {
	entries  []*Entry
	capacity int
	head     int
	tail     int
	count    int
}

// New creates an empty ROB with the given capacity.
func New(capacity int) *ROB {
	return &ROB{
		entries:  make([]*Entry, capacity),
		capacity: capacity,
	}
}

// Capacity returns the buffer's fixed capacity.
func (r *ROB) Capacity() int { return r.capacity }

// Count returns the number of occupied slots.
func (r *ROB) Count() int { return r.count }

// Full reports whether the buffer has no free slot.
func (r *ROB) Full() bool { return r.count == r.capacity }

// Empty reports whether the buffer holds no entries.
func (r *ROB) Empty() bool { return r.count == 0 }

// NextID returns the RobID the next allocated entry would receive,
// without allocating it: tail+1, 1-based (spec.md §4.5).
func (r *ROB) NextID() int {
	return r.tail + 1
}

// Alloc inserts a new entry at tail and advances tail. The caller must
// have already checked !Full(). Returns the allocated entry.
func (r *ROB) Alloc(instr *isa.Instruction, destReg string) *Entry {
	e := &Entry{
		RobID:   r.tail + 1,
		Instr:   instr,
		DestReg: destReg,
	}
	r.entries[r.tail] = e
	r.tail = (r.tail + 1) % r.capacity
	r.count++
	return e
}

// ByID scans for the entry currently holding rob ID id, mirroring the
// original Python implementation's get_rob_entry lookup (grounded on
// original_source/tomasulo_sim.py). Returns nil if not occupied.
func (r *ROB) ByID(id int) *Entry {
	for i := 0; i < r.count; i++ {
		idx := (r.head + i) % r.capacity
		if e := r.entries[idx]; e != nil && e.RobID == id {
			return e
		}
	}
	return nil
}

// Head returns the entry at the head of the buffer (the next to
// commit), or nil if empty.
func (r *ROB) Head() *Entry {
	if r.count == 0 {
		return nil
	}
	return r.entries[r.head]
}

// CommitHead removes the head entry, advancing head and decrementing
// count. The caller must have already checked it is ready.
func (r *ROB) CommitHead() {
	if r.count == 0 {
		return
	}
	r.entries[r.head] = nil
	r.head = (r.head + 1) % r.capacity
	r.count--
}

// Flush discards every in-flight entry (spec.md §4.7).
func (r *ROB) Flush() {
	r.entries = make([]*Entry, r.capacity)
	r.head = 0
	r.tail = 0
	r.count = 0
}

// InOrder iterates the live window in commit order (head .. head+count),
// calling fn for each occupied entry. Used for presenter snapshots
// (spec.md §6).
func (r *ROB) InOrder(fn func(e *Entry)) {
	for i := 0; i < r.count; i++ {
		idx := (r.head + i) % r.capacity
		if e := r.entries[idx]; e != nil {
			fn(e)
		}
	}
}
