package events

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/R3DPanda1/envmon/monitor/metrics"
)

var eventCounter uint64

func nextID() string {
	n := atomic.AddUint64(&eventCounter, 1)
	return time.Now().Format("20060102150405") + "-" + strconv.FormatUint(n, 10)
}

const subscriberBuffer = 256

type subscriber struct {
	ch chan interface{}
}

// Broker fans events out to topic subscribers and keeps a history per topic.
// A nil *Broker drops everything, so components can run without one.
type Broker struct {
	store       *Store
	subscribers map[string][]*subscriber
	mu          sync.RWMutex
}

func NewBroker(maxHistory int) *Broker {
	return &Broker{
		store:       NewStore(maxHistory),
		subscribers: make(map[string][]*subscriber),
	}
}

// Subscribe attaches to topic and returns its history so far. On a nil
// *Broker the channel is already closed.
func (b *Broker) Subscribe(topic string) (ch <-chan interface{}, history []interface{}, unsubscribe func()) {
	if b == nil {
		closed := make(chan interface{})
		close(closed)
		return closed, nil, func() {}
	}
	sub := &subscriber{ch: make(chan interface{}, subscriberBuffer)}

	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], sub)
	b.mu.Unlock()
	metrics.EventSubscriptions.Inc()

	history = b.store.History(topic)

	var once sync.Once
	unsubscribe = func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			subs := b.subscribers[topic]
			for i, s := range subs {
				if s == sub {
					b.subscribers[topic] = append(subs[:i:i], subs[i+1:]...)
					close(sub.ch)
					metrics.EventSubscriptions.Dec()
					break
				}
			}
		})
	}

	return sub.ch, history, unsubscribe
}

func (b *Broker) History(topic string) []interface{} {
	if b == nil {
		return nil
	}
	return b.store.History(topic)
}

func (b *Broker) publish(topic string, event interface{}) {
	b.store.Store(topic, event)
	metrics.EventsPublished.WithLabelValues(topic).Inc()

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subscribers[topic] {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("event subscriber buffer full, dropping event", "topic", topic)
		}
	}
}

func stamp(id *string, t *time.Time) {
	if *id == "" {
		*id = nextID()
	}
	if t.IsZero() {
		*t = time.Now()
	}
}

func (b *Broker) PublishStateEvent(event StateEvent) {
	if b == nil {
		return
	}
	stamp(&event.ID, &event.Time)
	b.publish(StateTopic, event)
}

func (b *Broker) PublishAccessEvent(event AccessEvent) {
	if b == nil {
		return
	}
	stamp(&event.ID, &event.Time)
	b.publish(AccessTopic, event)
}

func (b *Broker) PublishSensorEvent(event SensorEvent) {
	if b == nil {
		return
	}
	stamp(&event.ID, &event.Time)
	b.publish(SensorTopic, event)
	if event.IsFault {
		b.publish(ErrorsTopic, event)
	}
}

func (b *Broker) PublishDisplayEvent(event DisplayEvent) {
	if b == nil {
		return
	}
	stamp(&event.ID, &event.Time)
	b.publish(DisplayTopic, event)
}

func (b *Broker) PublishSystemEvent(event SystemEvent) {
	if b == nil {
		return
	}
	stamp(&event.ID, &event.Time)
	b.publish(SystemTopic, event)
	if event.IsError {
		b.publish(ErrorsTopic, event)
	}
}

// Reset forgets the history of every topic. Subscribers stay attached.
func (b *Broker) Reset() {
	if b == nil {
		return
	}
	b.store.Reset()
}
