// Package rat implements the Register Alias Table: a mapping from
// architectural register name to the ROB entry ID that will produce its
// next value. An absent entry means the register file is authoritative.
package rat

// RAT maps architectural register names to pending producer ROB IDs.
// Invariant: if RAT[r] = k, ROB entry k is occupied and its DestReg = r
// (spec.md §3). The converse need not hold — a later instruction with
// the same destination overwrites the mapping, leaving earlier in-flight
// entries with no RAT pointer; they still commit, but must not write
// back (spec.md §4.7).
type RAT struct {
	bindings map[string]int
}

// New creates an empty RAT: every register is authoritative in the
// register file.
func New() *RAT {
	return &RAT{bindings: make(map[string]int)}
}

// Lookup reports the pending producer ROB ID for reg, if any.
func (r *RAT) Lookup(reg string) (robID int, pending bool) {
	id, ok := r.bindings[reg]
	return id, ok
}

// Bind sets reg's pending producer to robID, unconditionally shadowing
// any previous mapping (spec.md §4.5).
func (r *RAT) Bind(reg string, robID int) {
	r.bindings[reg] = robID
}

// ClearIfOwner removes reg's mapping only if it currently points at
// robID; used at Commit so a later rename is not clobbered by an
// earlier instruction's retirement (spec.md §4.7).
func (r *RAT) ClearIfOwner(reg string, robID int) {
	if id, ok := r.bindings[reg]; ok && id == robID {
		delete(r.bindings, reg)
	}
}

// Reset clears every binding; used on flush (spec.md §4.7).
func (r *RAT) Reset() {
	r.bindings = make(map[string]int)
}

// Bindings returns a snapshot of the non-empty bindings, for presenter
// display (spec.md §6).
func (r *RAT) Bindings() map[string]int {
	out := make(map[string]int, len(r.bindings))
	for k, v := range r.bindings {
		out[k] = v
	}
	return out
}
