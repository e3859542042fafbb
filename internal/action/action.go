// internal/action/action.go
package action

import (
	"go-tower-sim/internal/component"
)

// Kind is the command carried by an Action. The zero value means no input.
type Kind int

const (
	None Kind = iota
	TogglePause
	Spawn
	Build
	Remove
	View
	PrintState
	Quit
	ChangeMode
	ToggleDebug
)

var kindNames = [...]string{
	None:        "none",
	TogglePause: "pause",
	Spawn:       "spawn",
	Build:       "build",
	Remove:      "remove",
	View:        "view",
	PrintState:  "print",
	Quit:        "quit",
	ChangeMode:  "mode",
	ToggleDebug: "debug",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Mode decides what a click does.
type Mode int

const (
	ModeView Mode = iota
	ModeBuild
	ModeRemove
)

func (m Mode) String() string {
	switch m {
	case ModeBuild:
		return "build"
	case ModeRemove:
		return "remove"
	default:
		return "view"
	}
}

// Action is one command for one step. Position is set for Build, Remove and
// View; Mode for ChangeMode.
type Action struct {
	Kind     Kind
	Position component.Position
	Mode     Mode
}

// Click translates a click at pos into the command the current mode stands for.
func Click(mode Mode, pos component.Position) Action {
	switch mode {
	case ModeBuild:
		return Action{Kind: Build, Position: pos}
	case ModeRemove:
		return Action{Kind: Remove, Position: pos}
	default:
		return Action{Kind: View, Position: pos}
	}
}
