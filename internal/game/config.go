package game

import "time"

// Config holds game loop options.
type Config struct {
	// TickInterval is the time between simulation ticks. Each tick advances
	// every ability by the real time elapsed since the previous one.
	TickInterval time.Duration
}

// DefaultTickInterval is used when Config.TickInterval is not positive.
const DefaultTickInterval = time.Second / 30
