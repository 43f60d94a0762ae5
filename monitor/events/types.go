package events

import "time"

// Access event types
const (
	AccessGranted   = "granted"
	AccessDenied    = "denied"
	AccessLockedOut = "locked_out"
	AccessRelocked  = "relocked"
)

// Sensor event types
const (
	SensorClimate  = "climate"
	SensorLight    = "light"
	SensorInfrared = "infrared"
	SensorHall     = "hall"
	SensorFault    = "fault"
)

// System event types
const (
	SysEventStarted  = "started"
	SysEventStopped  = "stopped"
	SysEventSetup    = "setup"
	SysEventScenario = "scenario"
	SysEventError    = "error"
)

type StateEvent struct {
	ID    string        `json:"id"`
	Time  time.Time     `json:"time"`
	From  string        `json:"from"`
	To    string        `json:"to"`
	Dwell time.Duration `json:"dwell"`
}

type AccessEvent struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Type     string    `json:"type"`
	Failures int       `json:"failures"`
}

type SensorEvent struct {
	ID          string    `json:"id"`
	Time        time.Time `json:"time"`
	Type        string    `json:"type"`
	State       string    `json:"state"`
	Temperature *float64  `json:"temperature,omitempty"`
	Humidity    *float64  `json:"humidity,omitempty"`
	Lux         *float64  `json:"lux,omitempty"`
	Level       string    `json:"level,omitempty"`
	IsFault     bool      `json:"isFault"`
}

type DisplayEvent struct {
	ID    string    `json:"id"`
	Time  time.Time `json:"time"`
	Lines []string  `json:"lines"`
}

type SystemEvent struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	IsError bool      `json:"isError"`
}

const (
	StateTopic   = "state"
	AccessTopic  = "access"
	SensorTopic  = "sensor"
	DisplayTopic = "display"
	SystemTopic  = "system"
	ErrorsTopic  = "errors"
)

// Topics lists every topic a client may subscribe to.
var Topics = []string{StateTopic, AccessTopic, SensorTopic, DisplayTopic, SystemTopic, ErrorsTopic}

func ValidTopic(topic string) bool {
	for _, t := range Topics {
		if t == topic {
			return true
		}
	}
	return false
}
