// Package core defines the contract between simulations and their hosts.
package core

import gridcore "gol-editor/pkg/core"

// Size describes the dimensions of a simulation grid.
type Size = gridcore.Size

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Editor is implemented by sims that accept point edits and history control
// from the host.
type Editor interface {
	Toggle(x, y int) bool
	Rewind() bool
	Checkpoint()
	RestoreCheckpoint() bool
	ClearRuleBoxes()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
