// Package latency holds the architectural configuration of the simulated
// core: reservation-station pool sizes, reorder-buffer capacity, register
// count, and per-opcode execution latencies. It is the process-wide
// constant map the core reads from; nothing in the pipeline hardcodes
// these numbers.
package latency

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/archsim/tomasim/isa"
)

// Config holds every architectural constant the pipeline consults.
type Config struct {
	// ROBCapacity is the number of in-flight instructions the reorder
	// buffer can hold at once. Default: 8.
	ROBCapacity int `json:"rob_capacity"`

	// RSCounts gives the number of reservation-station slots per
	// functional-unit class. Default: ADD=3, MUL=2, LOAD=3.
	RSCounts map[isa.RSClass]int `json:"rs_counts"`

	// RegisterCount is the number of architectural registers (R0..Rn-1).
	// Default: 32.
	RegisterCount int `json:"register_count"`

	// OpLatency gives the execute-stage latency, in cycles, for each
	// opcode. Default values follow spec.md §4.3.
	OpLatency map[isa.Opcode]int `json:"op_latency"`
}

// Default returns the standard architectural configuration.
func Default() *Config {
	return &Config{
		ROBCapacity: 8,
		RSCounts: map[isa.RSClass]int{
			isa.RSClassADD:  3,
			isa.RSClassMUL:  2,
			isa.RSClassLOAD: 3,
		},
		RegisterCount: 32,
		OpLatency: map[isa.Opcode]int{
			isa.OpADD:  2,
			isa.OpSUB:  2,
			isa.OpADDI: 2,
			isa.OpMUL:  6,
			isa.OpDIV:  10,
			isa.OpLW:   3,
			isa.OpSW:   3,
			isa.OpLD:   3,
			isa.OpSD:   3,
			isa.OpBEQ:  1,
			isa.OpBNE:  1,
		},
	}
}

// Load reads a Config from a JSON file, starting from Default and
// overriding only the fields present in the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read latency config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse latency config file: %w", err)
	}

	return cfg, nil
}

// Latency returns the configured execute-stage latency for op.
func (c *Config) Latency(op isa.Opcode) int {
	if l, ok := c.OpLatency[op]; ok {
		return l
	}
	return 1
}

// RSCount returns the configured pool size for class.
func (c *Config) RSCount(class isa.RSClass) int {
	if n, ok := c.RSCounts[class]; ok {
		return n
	}
	return 0
}
