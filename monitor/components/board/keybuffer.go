package board

import "github.com/R3DPanda1/envmon/monitor/components/hal"

const DefaultKeyBufferSize = 16

// KeyBuffer queues key presses between the panel and the tick loop. When it
// is full the oldest press is dropped.
type KeyBuffer struct {
	ch chan hal.Key
}

func NewKeyBuffer(size int) *KeyBuffer {
	if size <= 0 {
		size = DefaultKeyBufferSize
	}
	return &KeyBuffer{ch: make(chan hal.Key, size)}
}

func (kb *KeyBuffer) Push(k hal.Key) {
	select {
	case kb.ch <- k:
	default:
		// buffer full -- drop oldest, push new
		select {
		case <-kb.ch:
		default:
		}
		select {
		case kb.ch <- k:
		default:
		}
	}
}

// TryPop never blocks.
func (kb *KeyBuffer) TryPop() (hal.Key, bool) {
	select {
	case k := <-kb.ch:
		return k, true
	default:
		return hal.NoKey, false
	}
}

func (kb *KeyBuffer) Len() int { return len(kb.ch) }

// Drain discards every pending press and returns how many were dropped.
func (kb *KeyBuffer) Drain() int {
	n := 0
	for {
		select {
		case <-kb.ch:
			n++
		default:
			return n
		}
	}
}
