package fsm

import (
	"fmt"
	"time"
)

// State is the active mode of the monitor.
type State int

const (
	Locked State = iota
	AmbientMonitoring
	EventMonitoring
	Alert
	Alarm
	InfraredWatch
	HallWatch
)

var stateNames = map[State]string{
	Locked:            "locked",
	AmbientMonitoring: "ambient_monitoring",
	EventMonitoring:   "event_monitoring",
	Alert:             "alert",
	Alarm:             "alarm",
	InfraredWatch:     "infrared_watch",
	HallWatch:         "hall_watch",
}

// States lists every state in declaration order.
var States = []State{Locked, AmbientMonitoring, EventMonitoring, Alert, Alarm, InfraredWatch, HallWatch}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Cooperative reports whether the state's handler returns within one tick
// and honours the keypad menu.
func (s State) Cooperative() bool {
	return s != Locked && s != Alarm
}

// Transition is a handler's verdict: the state to be in after the tick and
// its entry time. A handler that stays returns the current state and entry
// time unchanged.
type Transition struct {
	Next State
	At   time.Duration
}
