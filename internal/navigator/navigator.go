// Package navigator is the menu state machine behind the transfer prompt:
// pick a direction, pick a file from the listing, confirm or cancel.
//
// It performs no I/O. Step consumes one submitted line and reports the new
// state plus the side effect the caller must carry out; the caller feeds a
// fetched listing back in through Loaded.
package navigator

import (
	"strconv"
	"strings"
)

// Direction is which way a file is copied.
type Direction int

const (
	// DeviceToHost pulls a file from the phone onto the PC.
	DeviceToHost Direction = iota
	// HostToDevice pushes a file from the PC onto the phone.
	HostToDevice
)

// Label names the destination side, as shown in the confirmation prompt.
func (d Direction) Label() string {
	if d == HostToDevice {
		return "Phone"
	}

	return "PC"
}

// String returns the menu text for the direction.
func (d Direction) String() string {
	if d == HostToDevice {
		return "PC -> Phone"
	}

	return "Phone -> PC"
}

// Level is the menu currently shown.
type Level int

const (
	// LevelDirection asks which way to copy.
	LevelDirection Level = iota
	// LevelFileSelect lists the files of the source side.
	LevelFileSelect
	// LevelConfirm asks whether to copy the selected file.
	LevelConfirm
)

// String returns the name of the level.
func (l Level) String() string {
	switch l {
	case LevelDirection:
		return "direction"
	case LevelFileSelect:
		return "file-select"
	case LevelConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Action is the side effect a transition asks the caller to perform.
type Action int

const (
	// ActionNone needs nothing beyond redrawing.
	ActionNone Action = iota
	// ActionExit ends the program.
	ActionExit
	// ActionFetchListing lists the source side of State.Direction.
	ActionFetchListing
	// ActionTransfer copies Outcome.File in Outcome.Direction.
	ActionTransfer
)

// State is the position in the menus. Listing is only meaningful together
// with the Direction that produced it.
type State struct {
	Level     Level
	Direction Direction
	Listing   []string
	Selected  string
}

// Outcome is the result of one Step.
type Outcome struct {
	State State
	// Action is the side effect to perform.
	Action Action
	// Invalid is set when the input did not select anything; State is then
	// the unchanged input state.
	Invalid bool
	// File and Direction describe the transfer for ActionTransfer.
	File      string
	Direction Direction
}

// Initial returns the starting state: the direction menu with no listing.
func Initial() State {
	return State{Level: LevelDirection}
}

// Loaded installs a freshly fetched listing for direction and moves to the
// file menu.
func Loaded(direction Direction, listing []string) State {
	return State{
		Level:     LevelFileSelect,
		Direction: direction,
		Listing:   listing,
	}
}

// Step applies one submitted line of input to state.
func Step(state State, input string) Outcome {
	input = strings.TrimSpace(input)

	switch state.Level {
	case LevelDirection:
		return stepDirection(state, input)
	case LevelFileSelect:
		return stepFileSelect(state, input)
	case LevelConfirm:
		return stepConfirm(state, input)
	default:
		return invalid(state)
	}
}

func stepDirection(state State, input string) Outcome {
	selector, ok := leadingDigit(input)
	if !ok {
		return invalid(state)
	}

	switch selector {
	case 0:
		return Outcome{State: Initial(), Action: ActionExit}
	case 1:
		return fetch(DeviceToHost)
	case 2: //nolint:mnd // Menu option
		return fetch(HostToDevice)
	default:
		return invalid(state)
	}
}

func stepFileSelect(state State, input string) Outcome {
	n, err := strconv.Atoi(input)
	if err != nil {
		return invalid(state)
	}

	switch {
	case n == 0:
		return Outcome{State: Initial()}
	case n >= 1 && n <= len(state.Listing):
		next := state
		next.Level = LevelConfirm
		next.Selected = state.Listing[n-1]

		return Outcome{State: next}
	default:
		return invalid(state)
	}
}

func stepConfirm(state State, input string) Outcome {
	selector, ok := leadingDigit(input)
	if !ok {
		return invalid(state)
	}

	switch selector {
	case 1:
		return Outcome{
			State:     Initial(),
			Action:    ActionTransfer,
			File:      state.Selected,
			Direction: state.Direction,
		}
	case 2: //nolint:mnd // Menu option
		back := state
		back.Level = LevelFileSelect
		back.Selected = ""

		return Outcome{State: back}
	default:
		return invalid(state)
	}
}

// fetch stays on the direction menu until the listing arrives.
func fetch(direction Direction) Outcome {
	return Outcome{
		State:     State{Level: LevelDirection, Direction: direction},
		Action:    ActionFetchListing,
		Direction: direction,
	}
}

func invalid(state State) Outcome {
	return Outcome{State: state, Invalid: true}
}

// leadingDigit reads the first character of input as a decimal selector.
func leadingDigit(input string) (int, bool) {
	if input == "" || input[0] < '0' || input[0] > '9' {
		return 0, false
	}

	return int(input[0] - '0'), true
}
