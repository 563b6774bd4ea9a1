package cell

import "fmt"

// Source is a payload-less event notifier, the smallest thing that can be
// listened to. Cell builds on it by adding a current value.
type Source struct {
	listeners listenerList
	onError   func(error)
	disposed  bool
}

func NewSource() *Source {
	return &Source{}
}

// OnError installs a sink for panics raised inside listener callbacks. With a
// sink installed a failing listener no longer blocks its siblings; without
// one the panic propagates to whoever triggered the notification.
func (s *Source) OnError(fn func(error)) {
	s.onError = fn
}

func (s *Source) AddListener(fn func()) *Listener {
	if s.disposed {
		panic("cell: AddListener on disposed notifier")
	}
	if fn == nil {
		panic("cell: nil listener")
	}
	return s.listeners.add(fn)
}

// RemoveListener detaches one registration. Unknown or already-removed tokens
// are ignored.
func (s *Source) RemoveListener(l *Listener) {
	s.listeners.remove(l)
}

func (s *Source) ListenerCount() int {
	return s.listeners.len()
}

// Notify runs a notification pass now.
func (s *Source) Notify() {
	if s.disposed {
		panic("cell: Notify on disposed notifier")
	}
	s.notifyNow()
}

func (s *Source) notifyNow() {
	s.listeners.each(s.invoke)
}

func (s *Source) invoke(l *Listener) {
	if s.onError == nil {
		l.fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.onError(fmt.Errorf("cell: listener panicked: %v", r))
		}
	}()
	l.fn()
}

// Dispose detaches every listener. Notifying or attaching afterwards panics.
func (s *Source) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.listeners.clear()
}
