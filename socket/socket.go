// Package socket names the socket.io events exchanged with the operator panel.
package socket

// Events received from the panel
const (
	EventKeyPress     = "key-press"
	EventStreamEvents = "stream-events"
	EventStopEvents   = "stop-events"
)

// Events sent to the panel
const (
	EventEvent   = "event"
	EventDisplay = "display"
)

// KeyPress carries one or more keypad keys, pressed in order.
type KeyPress struct {
	Keys string `json:"keys"`
}

// StreamRequest subscribes a connection to one event topic.
type StreamRequest struct {
	Topic string `json:"topic"`
}

// TopicEvent wraps a streamed event with its topic.
type TopicEvent struct {
	Topic string      `json:"topic"`
	Event interface{} `json:"event"`
}
