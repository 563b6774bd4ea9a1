package chain

import "github.com/delaneyj/cellchain/cell"

// Subscription is one cancellable listener registration. Cancel is
// idempotent: the second and later calls are no-ops.
type Subscription struct {
	target   Notifier
	handle   *cell.Listener
	canceled bool
}

func newSubscription(target Notifier) *Subscription {
	if target == nil {
		panic("chain: subscription needs a target")
	}
	return &Subscription{target: target}
}

func (s *Subscription) Cancel() {
	if s.canceled {
		return
	}
	s.canceled = true
	s.target.RemoveListener(s.handle)
	s.handle = nil
}

// Canceled reports whether Cancel has run.
func (s *Subscription) Canceled() bool {
	return s.canceled
}

// Listen attaches handler to src and hands it the current value plus the
// subscription itself on every notification, so a handler can cancel itself
// from within.
func Listen[T any](src ValueSource[T], handler func(value T, sub *Subscription)) *Subscription {
	if handler == nil {
		panic("chain: nil handler")
	}
	sub := newSubscription(src)
	sub.handle = src.AddListener(func() {
		handler(src.Value(), sub)
	})
	return sub
}

// ListenSource is Listen for payload-less notifiers.
func ListenSource(src Notifier, handler func(sub *Subscription)) *Subscription {
	if handler == nil {
		panic("chain: nil handler")
	}
	sub := newSubscription(src)
	sub.handle = src.AddListener(func() {
		handler(sub)
	})
	return sub
}
