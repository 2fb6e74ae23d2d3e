package event

import "log"

// maxPublishDepth bounds synchronous re-publishes. A handler that publishes
// an event it also handles would otherwise recurse without limit; past this
// depth the publish is logged and dropped.
const maxPublishDepth = 8

// Handler is invoked with every published event of its subscribed type.
type Handler func(Event)

// Condition gates a subscription: the handler runs only for event instances
// the condition accepts.
type Condition func(Event) bool

type subscriber struct {
	id        int
	handler   Handler
	condition Condition
}

// Subscription identifies a registered handler and allows its removal.
type Subscription struct {
	d  *Dispatcher
	t  Type
	id int
}

// Cancel removes the subscription from the dispatcher. Canceling an already
// canceled subscription is a no-op.
func (s Subscription) Cancel() {
	if s.d == nil {
		return
	}
	subs := s.d.subs[s.t]
	for i, sub := range subs {
		if sub.id == s.id {
			s.d.subs[s.t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscriber)

// When attaches a condition to a subscription. The handler is skipped for
// event instances the condition rejects.
func When(c Condition) SubscribeOption {
	return func(s *subscriber) { s.condition = c }
}

// Dispatcher is a synchronous publish-subscribe hub for domain events.
// Handlers for a type run in registration order. All access happens on the
// main-loop goroutine; the dispatcher is not safe for concurrent use.
type Dispatcher struct {
	subs   map[Type][]subscriber
	nextID int
	depth  int
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[Type][]subscriber)}
}

// Subscribe registers handler for every future event of type t and returns
// a Subscription usable for removal.
func (d *Dispatcher) Subscribe(t Type, handler Handler, opts ...SubscribeOption) Subscription {
	d.nextID++
	sub := subscriber{id: d.nextID, handler: handler}
	for _, opt := range opts {
		opt(&sub)
	}
	d.subs[t] = append(d.subs[t], sub)
	return Subscription{d: d, t: t, id: sub.id}
}

// Publish synchronously invokes every matching subscription for each event,
// in registration order. A panicking handler is logged and isolated; delivery
// to the remaining handlers continues. Publish is a terminal fan-out: it
// never re-enters business logic itself.
func (d *Dispatcher) Publish(events ...Event) {
	if d.depth >= maxPublishDepth {
		log.Printf("event: publish depth %d exceeded, dropping %d event(s)", maxPublishDepth, len(events))
		return
	}
	d.depth++
	defer func() { d.depth-- }()

	for _, e := range events {
		// Snapshot so handlers that subscribe or cancel mid-publish do not
		// affect this delivery.
		subs := d.subs[e.EventType()]
		for _, sub := range subs {
			if sub.condition != nil && !sub.condition(e) {
				continue
			}
			d.invoke(sub, e)
		}
	}
}

func (d *Dispatcher) invoke(sub subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: handler panic for %s: %v", e.EventType(), r)
		}
	}()
	sub.handler(e)
}
