// Package main provides the entry point for tomasim.
// tomasim is a cycle-accurate Tomasulo out-of-order core simulator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/archsim/tomasim/core"
	"github.com/archsim/tomasim/examples"
	"github.com/archsim/tomasim/latency"
)

var (
	programPath = flag.String("program", "", "path to an assembly source file (defaults to stdin)")
	example     = flag.String("example", "", "run a bundled example program instead of -program: 'deps' or 'branch'")
	configPath  = flag.String("config", "", "path to an architecture configuration JSON file")
	cycles      = flag.Int("cycles", 0, "maximum number of cycles to run (0 = run to completion)")
	verbose     = flag.Bool("v", false, "print the event log and final state")
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

	stats := c.Stats()
	fmt.Printf("cycles=%d retired=%d stalls_rob=%d stalls_rs=%d branch_miss=%d ipc=%.3f\n",
		stats.Clock, stats.Retired, stats.StallsROB, stats.StallsRS, stats.BranchMiss, stats.IPC)

	if *verbose {
		fmt.Println("\n-- event log --")
		for _, line := range c.Log().Lines() {
			fmt.Println(line)
		}

		snap := c.Snapshot()
		fmt.Println("\n-- registers --")
		for name, value := range snap.Registers {
			fmt.Printf("%s = %d\n", name, value)
		}
	}
}

func loadSource() (string, error) {
	switch *example {
	case "deps":
		return examples.DataDependency, nil
	case "branch":
		return examples.BranchMisprediction, nil
	case "":
	default:
		return "", fmt.Errorf("unknown -example %q (want 'deps' or 'branch')", *example)
	}

	if *programPath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(*programPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", *programPath, err)
	}
	return string(data), nil
}
