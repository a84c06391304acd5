package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Scenario describes one benchmark run. A TOML scenario file may override
// any subset of the fields; command-line flags fill in the rest.
type Scenario struct {
	Rows       int      `toml:",omitempty"`
	Cols       int      `toml:",omitempty"`
	Depth      int      `toml:",omitempty"`
	Trials     int      `toml:",omitempty"`
	Seed       int64    `toml:",omitempty"`
	Timeout    duration `toml:",omitempty"`
	Strategies []string `toml:",omitempty"`
}

// duration lets TOML carry human-readable timeouts like "30s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// allStrategies is the default roster, in reporting order.
var allStrategies = []string{"bfs", "dfs", "dls", "ids", "astar"}

// loadScenario reads a TOML scenario file and validates it.
func loadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sc Scenario
	if _, err = toml.NewDecoder(f).Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &sc, nil
}

// merge fills unset scenario fields from defaults and validates the result.
func (sc *Scenario) merge(def Scenario) error {
	if sc.Rows == 0 {
		sc.Rows = def.Rows
	}
	if sc.Cols == 0 {
		sc.Cols = def.Cols
	}
	if sc.Depth == 0 {
		sc.Depth = def.Depth
	}
	if sc.Trials == 0 {
		sc.Trials = def.Trials
	}
	if sc.Seed == 0 {
		sc.Seed = def.Seed
	}
	if sc.Timeout.Duration == 0 {
		sc.Timeout = def.Timeout
	}
	if len(sc.Strategies) == 0 {
		sc.Strategies = def.Strategies
	}

	if sc.Rows < 1 || sc.Cols < 1 || sc.Rows*sc.Cols < 2 {
		return fmt.Errorf("board %dx%d is too small", sc.Rows, sc.Cols)
	}
	if sc.Depth < 1 {
		return fmt.Errorf("scramble depth %d must be at least 1", sc.Depth)
	}
	if sc.Trials < 1 {
		return fmt.Errorf("trials %d must be at least 1", sc.Trials)
	}
	for _, name := range sc.Strategies {
		if _, ok := runners[name]; !ok {
			return fmt.Errorf("unknown strategy %q (have %v)", name, allStrategies)
		}
	}

	return nil
}
