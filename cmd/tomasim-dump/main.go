// Package main provides tomasim-dump, a machine-readable state-dump
// utility. It loads a program, runs it for at most -cycles cycles
// (stopping early once the core drains; 0 runs to completion), and writes the full internal snapshot as JSON — meant to drive an
// external visualizer, the out-of-scope "graphical shell" collaborator
// named in spec.md §1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/archsim/tomasim/core"
	"github.com/archsim/tomasim/examples"
	"github.com/archsim/tomasim/latency"
)

var (
	programPath = flag.String("program", "", "path to an assembly source file")
	example     = flag.String("example", "deps", "bundled example to run when -program is omitted: 'deps' or 'branch'")
	configPath  = flag.String("config", "", "path to an architecture configuration JSON file")
	cycles      = flag.Int("cycles", 20, "maximum number of cycles to step before dumping state (0 = run to completion)")
)

func main() {
	flag.Parse()

	cfg := latency.Default()
	if *configPath != "" {
		loaded, err := latency.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	source, err := loadSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	c := core.New(cfg)
	c.Load(source)
	c.Run(*cycles)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		os.Exit(1)
	}
}

func loadSource() (string, error) {
	if *programPath != "" {
		data, err := os.ReadFile(*programPath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", *programPath, err)
		}
		return string(data), nil
	}

	switch *example {
	case "deps":
		return examples.DataDependency, nil
	case "branch":
		return examples.BranchMisprediction, nil
	default:
		return "", fmt.Errorf("unknown -example %q (want 'deps' or 'branch')", *example)
	}
}
