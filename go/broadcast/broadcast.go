// Package broadcast provides a bounded multi-producer, multi-consumer
// in-process fan-out channel. Every subscriber owns an independent buffered
// cursor; a subscriber that falls a full buffer behind is closed and evicted
// so it can never slow the producer or its peers. Sending with no
// subscribers is a silent drop.
//
// The click pipeline runs two of these as process-wide singletons: one for
// locally originated clicks (the fast path into the ownership updater) and
// one for ownership-change notifications (the feed behind /ws/listen).
package broadcast

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultCapacity is the per-subscriber buffer size used by both pipeline
// broadcasters unless overridden.
const DefaultCapacity = 100_000

// ErrSlowSubscriber is reported by Subscription.Err after a subscriber was
// evicted for lagging behind the buffer capacity.
var ErrSlowSubscriber = errors.New("subscriber lagged behind broadcast capacity")

var (
	evictedSubscribers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broadcast_evicted_subscribers_total",
		Help: "Subscribers dropped for lagging behind the broadcast buffer.",
	}, []string{"channel"})
	droppedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broadcast_dropped_messages_total",
		Help: "Messages sent while no subscriber was connected.",
	}, []string{"channel"})
)

// Broadcaster fans values out to any number of Subscriptions.
type Broadcaster[T any] struct {
	name     string
	capacity int

	mutex  sync.Mutex
	subs   map[*Subscription[T]]struct{}
	closed bool
}

// Subscription is one subscriber's cursor into a Broadcaster.
type Subscription[T any] struct {
	b   *Broadcaster[T]
	ch  chan T
	err error
}

// New returns a Broadcaster whose subscribers each buffer up to capacity
// values. The name only labels metrics.
func New[T any](name string, capacity int) *Broadcaster[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Broadcaster[T]{
		name:     name,
		capacity: capacity,
		subs:     map[*Subscription[T]]struct{}{},
	}
}

// Subscribe registers a new subscriber with an empty cursor. Subscribing to
// a closed Broadcaster returns an already-closed Subscription.
func (b *Broadcaster[T]) Subscribe() *Subscription[T] {
	sub := &Subscription[T]{b: b, ch: make(chan T, b.capacity)}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.closed {
		close(sub.ch)
		return sub
	}
	b.subs[sub] = struct{}{}
	return sub
}

// Send delivers v to every live subscriber without ever blocking. A
// subscriber whose buffer is full is evicted and its channel closed.
func (b *Broadcaster[T]) Send(v T) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.closed {
		return
	}
	if len(b.subs) == 0 {
		droppedMessages.WithLabelValues(b.name).Inc()
		return
	}
	for sub := range b.subs {
		select {
		case sub.ch <- v:
		default:
			b.removeLocked(sub, ErrSlowSubscriber)
			evictedSubscribers.WithLabelValues(b.name).Inc()
		}
	}
}

// Close evicts all subscribers and makes further Sends no-ops.
func (b *Broadcaster[T]) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		b.removeLocked(sub, nil)
	}
}

// removeLocked must be called with b.mutex held.
func (b *Broadcaster[T]) removeLocked(sub *Subscription[T], err error) {
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	sub.err = err
	close(sub.ch)
}

// C is the receive channel. It is closed when the subscription ends for any
// reason; check Err afterwards to distinguish lag from a clean close.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Err reports why the subscription ended: ErrSlowSubscriber after a lag
// eviction, nil after Unsubscribe or Broadcaster Close. Only meaningful once
// C is closed.
func (s *Subscription[T]) Err() error {
	s.b.mutex.Lock()
	defer s.b.mutex.Unlock()
	return s.err
}

// Unsubscribe detaches the subscription and closes its channel. Safe to call
// on an already-ended subscription.
func (s *Subscription[T]) Unsubscribe() {
	s.b.mutex.Lock()
	defer s.b.mutex.Unlock()
	s.b.removeLocked(s, nil)
}
