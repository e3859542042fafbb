package action

import (
	"strconv"
	"strings"

	"go-tower-sim/internal/component"
)

// Parse reads one input line. Commands are separated by ';' and only the
// first one that parses is kept, the rest are dropped. mode is used to
// resolve "click X Y". ok is false when nothing on the line was recognized.
func Parse(line string, mode Mode) (Action, bool) {
	for _, cmd := range strings.Split(line, ";") {
		if a, ok := parseCommand(strings.Fields(cmd), mode); ok {
			return a, true
		}
	}
	return Action{}, false
}

func parseCommand(fields []string, mode Mode) (Action, bool) {
	if len(fields) == 0 {
		return Action{}, false
	}
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "p", "pause":
		return Action{Kind: TogglePause}, true
	case "r", "spawn":
		return Action{Kind: Spawn}, true
	case "s", "print":
		return Action{Kind: PrintState}, true
	case "q", "quit", "exit":
		return Action{Kind: Quit}, true
	case "debug":
		return Action{Kind: ToggleDebug}, true
	case "b", "build":
		return positioned(Build, args)
	case "d", "remove":
		return positioned(Remove, args)
	case "v", "view", "select":
		return positioned(View, args)
	case "click":
		a, ok := positioned(View, args)
		if !ok {
			return Action{}, false
		}
		return Click(mode, a.Position), true
	case "m", "mode":
		if len(args) != 1 {
			return Action{}, false
		}
		m, ok := parseMode(args[0])
		if !ok {
			return Action{}, false
		}
		return Action{Kind: ChangeMode, Mode: m}, true
	}
	return Action{}, false
}

func positioned(kind Kind, args []string) (Action, bool) {
	if len(args) != 2 {
		return Action{}, false
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return Action{}, false
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return Action{}, false
	}
	return Action{Kind: kind, Position: component.Position{X: x, Y: y}}, true
}

func parseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "b", "build":
		return ModeBuild, true
	case "d", "remove":
		return ModeRemove, true
	case "v", "view":
		return ModeView, true
	}
	return ModeView, false
}
