package core

import "time"

// Action represents what the player asks for in one input frame.
type Action int

const (
	ActionNone Action = iota
	ActionSwap        // Swap the cells A and B
	ActionAuto        // Let the game pick the best available swap
	ActionWait        // Only let time pass
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwap:
		return "Swap"
	case ActionAuto:
		return "Auto"
	case ActionWait:
		return "Wait"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one game step.
type InputFrame struct {
	Action  Action
	A, B    Point         // Swap endpoints for ActionSwap
	Elapsed time.Duration // Time passed since the previous frame
}

// SwapInput creates a frame that swaps a and b.
func SwapInput(a, b Point) InputFrame {
	return InputFrame{Action: ActionSwap, A: a, B: b}
}

// AutoInput creates a frame that plays the best available swap.
func AutoInput() InputFrame {
	return InputFrame{Action: ActionAuto}
}

// WaitInput creates a frame in which only d passes.
func WaitInput(d time.Duration) InputFrame {
	return InputFrame{Action: ActionWait, Elapsed: d}
}

// After returns a copy of the frame with Elapsed set to d.
func (f InputFrame) After(d time.Duration) InputFrame {
	f.Elapsed = d
	return f
}
