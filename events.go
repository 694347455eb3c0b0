package rowan

// Dispatcher is a per-actor publish/subscribe mailbox. Publish enqueues;
// queued events are delivered to subscribers by the dispatcher's update
// call, which runs once at the start of the owning actor's Update. An event
// published during an actor's update is therefore delivered no earlier than
// that actor's next update. Callers can rely on the one-frame delay.
//
// Rowan is single-threaded; Dispatcher performs no locking.
type Dispatcher struct {
	handlers map[EventType][]eventHandler
	queue    []Event
	drainBuf []Event // reused swap buffer so delivery never walks a live queue
	nextID   uint32
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]eventHandler)}
}

// Subscription allows removing a registered handler.
type Subscription struct {
	d  *Dispatcher
	t  EventType
	id uint32
}

// On registers fn for events of type t. Handlers for the same type fire in
// registration order.
func (d *Dispatcher) On(t EventType, fn func(Event)) Subscription {
	d.nextID++
	d.handlers[t] = append(d.handlers[t], eventHandler{id: d.nextID, fn: fn})
	return Subscription{d: d, t: t, id: d.nextID}
}

// Cancel unregisters the handler so it no longer fires. The entry is
// spliced out of the handler list.
func (s Subscription) Cancel() {
	if s.d == nil {
		return
	}
	hs := s.d.handlers[s.t]
	for i := range hs {
		if hs[i].id == s.id {
			copy(hs[i:], hs[i+1:])
			hs[len(hs)-1] = eventHandler{}
			s.d.handlers[s.t] = hs[:len(hs)-1]
			return
		}
	}
}

// Publish enqueues e for delivery on the next update call.
func (d *Dispatcher) Publish(e Event) {
	d.queue = append(d.queue, e)
}

// update delivers every queued event to its subscribers, in publish order.
// Events published by handlers during delivery land in the fresh queue and
// wait for the next update.
func (d *Dispatcher) update() {
	if len(d.queue) == 0 {
		return
	}
	pending := d.queue
	d.queue = d.drainBuf[:0]
	for _, e := range pending {
		for _, h := range d.handlers[e.Type] {
			h.fn(e)
		}
	}
	d.drainBuf = pending[:0]
}

// Pending returns the number of queued, undelivered events.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}
