// Package regfile holds the architectural register file and the mocked
// memory model. Per spec.md §1, memory contents are not modelled: loads
// always resolve to a fixed value and stores broadcast the value they
// would have written without touching any backing array.
package regfile

import "fmt"

// Name returns the conventional name of architectural register i
// ("R0".."R31").
func Name(i int) string {
	return fmt.Sprintf("R%d", i)
}

// RegFile is the architectural register file: a map from register name
// to signed integer, all initially zero. R0 is not special — writes to it are
// permitted, matching the original source.
type RegFile struct {
	values map[string]int64
	count  int
}

// New creates a RegFile with count registers (R0..R{count-1}), all zero.
func New(count int) *RegFile {
	rf := &RegFile{
		values: make(map[string]int64, count),
		count:  count,
	}
	for i := 0; i < count; i++ {
		rf.values[Name(i)] = 0
	}
	return rf
}

// Read returns the current value of register name. Unknown names read
// as zero.
func (rf *RegFile) Read(name string) int64 {
	return rf.values[name]
}

// Write sets register name to value.
func (rf *RegFile) Write(name string, value int64) {
	rf.values[name] = value
}

// Changed returns the non-zero-valued registers, keyed by name (the map
// carries no order), for presenter display (spec.md §6: "register file (changed entries)").
func (rf *RegFile) Changed() map[string]int64 {
	out := make(map[string]int64)
	for i := 0; i < rf.count; i++ {
		name := Name(i)
		if v := rf.values[name]; v != 0 {
			out[name] = v
		}
	}
	return out
}

// MockLoadValue is the constant every LW/LD resolves to (spec.md §4.4).
const MockLoadValue = 99

// Memory is a mocked memory model: it holds no array, only answers
// load/store requests with the spec's fixed convention.
type Memory struct{}

// NewMemory constructs the mocked memory model.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the mocked constant value for any address.
func (m *Memory) Load(addr int64) int64 {
	return MockLoadValue
}

// Store records nothing; it exists so the Write-Result stage can route
// a store through the same "ask the backing store" shape as a load,
// even though no array is written.
func (m *Memory) Store(addr int64, value int64) {}
