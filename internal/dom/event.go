package dom

// Event types used by the page.
const (
	EventClick = "click"
)

// ListenerID identifies a registered listener for later removal.
type ListenerID uint64

// Handler reacts to an event.
type Handler func(ev *Event)

type listener struct {
	id      ListenerID
	typ     string
	handler Handler
}

// Event is dispatched at a target and bubbles to its ancestors.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault cancels the default action (for a link, navigation).
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a handler cancelled the default action.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation keeps the event from reaching further ancestors.
func (ev *Event) StopPropagation() { ev.stopped = true }

// AddEventListener registers fn for events of type typ on the element.
func (e *Element) AddEventListener(typ string, fn Handler) ListenerID {
	d := e.doc
	d.nextID++
	d.listeners[e.node] = append(d.listeners[e.node], listener{id: d.nextID, typ: typ, handler: fn})
	return d.nextID
}

// RemoveEventListener unregisters a listener. Unknown ids are ignored.
func (e *Element) RemoveEventListener(id ListenerID) {
	d := e.doc
	ls := d.listeners[e.node]
	for i, l := range ls {
		if l.id == id {
			d.listeners[e.node] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(d.listeners[e.node]) == 0 {
		delete(d.listeners, e.node)
	}
}

// ListenerCount returns the number of listeners of type typ on the element.
func (e *Element) ListenerCount(typ string) int {
	n := 0
	for _, l := range e.doc.listeners[e.node] {
		if l.typ == typ {
			n++
		}
	}
	return n
}

// Dispatch delivers ev to the element and then to each ancestor until a
// handler stops propagation. It returns ev for inspection.
func (e *Element) Dispatch(ev *Event) *Event {
	ev.Target = e
	for cur := e; cur != nil && !ev.stopped; cur = cur.Parent() {
		ev.CurrentTarget = cur
		// Copy so handlers may add or remove listeners while dispatching.
		ls := append([]listener(nil), cur.doc.listeners[cur.node]...)
		for _, l := range ls {
			if l.typ == ev.Type {
				l.handler(ev)
			}
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// Click dispatches a click event at the element.
func (e *Element) Click() *Event {
	return e.Dispatch(&Event{Type: EventClick})
}
