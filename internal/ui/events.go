package ui

import "sync"

// EventKind names the host notifications the background listens to.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerLeave
	Resize
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerLeave:
		return "pointer-leave"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event carries client pixel coordinates for pointer moves and the new
// surface size for resizes. Width/Height on a pointer move is the viewport
// the coordinates are relative to.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Width  int
	Height int
}

// eventQueue holds events delivered outside Update, such as browser
// callbacks, until the next Update drains them into the dispatcher.
type eventQueue struct {
	mu      sync.Mutex
	pending []Event
	unmount bool
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// requestUnmount asks the next Update to unmount the background.
func (q *eventQueue) requestUnmount() {
	q.mu.Lock()
	q.unmount = true
	q.mu.Unlock()
}

// drain appends the queued events to dst, empties the queue and reports
// whether an unmount was requested.
func (q *eventQueue) drain(dst []Event) ([]Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	unmount := q.unmount
	q.unmount = false
	return dst, unmount
}

// Dispatcher is a single-threaded listener registry. Handlers run
// synchronously, in registration order, on the caller's goroutine.
type Dispatcher struct {
	next     int
	handlers map[EventKind][]listener
}

type listener struct {
	id int
	fn func(Event)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventKind][]listener)}
}

// Listen registers fn for kind and returns the function that removes it.
// Calling the remover more than once is harmless.
func (d *Dispatcher) Listen(kind EventKind, fn func(Event)) (remove func()) {
	d.next++
	id := d.next
	d.handlers[kind] = append(d.handlers[kind], listener{id: id, fn: fn})
	return func() {
		ls := d.handlers[kind]
		for i, l := range ls {
			if l.id == id {
				d.handlers[kind] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	for _, l := range d.handlers[ev.Kind] {
		l.fn(ev)
	}
}

// Listeners counts registered handlers across all kinds.
func (d *Dispatcher) Listeners() int {
	n := 0
	for _, ls := range d.handlers {
		n += len(ls)
	}
	return n
}
