package cell

// Listener is the identity of a single registration. Go funcs are not
// comparable, so registering the same func twice yields two distinct tokens;
// removing one detaches only that registration.
type Listener struct {
	fn      func()
	removed bool
}

type listenerList struct {
	entries []*Listener
}

func (ll *listenerList) add(fn func()) *Listener {
	l := &Listener{fn: fn}
	ll.entries = append(ll.entries, l)
	return l
}

func (ll *listenerList) remove(l *Listener) {
	if l == nil || l.removed {
		return
	}
	for i, e := range ll.entries {
		if e == l {
			l.removed = true
			// three-index slice forces a fresh backing array so an
			// in-flight notification snapshot stays intact
			ll.entries = append(ll.entries[:i:i], ll.entries[i+1:]...)
			return
		}
	}
}

func (ll *listenerList) len() int {
	return len(ll.entries)
}

func (ll *listenerList) clear() {
	for _, e := range ll.entries {
		e.removed = true
	}
	ll.entries = nil
}

// each visits the registrations present when the pass starts, in insertion
// order. Listeners added mid-pass wait for the next pass; listeners removed
// mid-pass are skipped if not yet reached.
func (ll *listenerList) each(invoke func(*Listener)) {
	snapshot := ll.entries
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		invoke(l)
	}
}
