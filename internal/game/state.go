// Package game provides the main loop that ticks and displays an ability bar.
package game

// State represents what the HUD is showing.
type State int

const (
	// StateBar shows only the ability bar.
	StateBar State = iota
	// StateTooltip shows the bar and the description of the selected slot.
	StateTooltip
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateBar:
		return "bar"
	case StateTooltip:
		return "tooltip"
	default:
		return "unknown"
	}
}
