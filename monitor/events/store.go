package events

import "sync"

// Store holds a bounded history per topic.
type Store struct {
	buffers    map[string]*RingBuffer
	maxHistory int
	mu         sync.RWMutex
}

func NewStore(maxHistory int) *Store {
	return &Store{
		buffers:    make(map[string]*RingBuffer),
		maxHistory: maxHistory,
	}
}

func (s *Store) Store(topic string, event interface{}) {
	s.mu.Lock()
	buf, ok := s.buffers[topic]
	if !ok {
		buf = NewRingBuffer(s.maxHistory)
		s.buffers[topic] = buf
	}
	s.mu.Unlock()
	buf.Push(event)
}

func (s *Store) History(topic string) []interface{} {
	s.mu.RLock()
	buf, ok := s.buffers[topic]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return buf.GetAll()
}

// Reset drops the history of every topic.
func (s *Store) Reset() {
	s.mu.Lock()
	s.buffers = make(map[string]*RingBuffer)
	s.mu.Unlock()
}
