package util

// Monitor run states
const (
	Stopped = iota
	Running
)

// Board kinds
const (
	BoardSim    = "sim"
	BoardBridge = "bridge"
)
