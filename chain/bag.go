package chain

import mapset "github.com/deckarep/golang-set/v2"

// Bag collects subscriptions that share a lifetime so they can be canceled
// as one.
type Bag struct {
	subs mapset.Set[*Subscription]
}

func NewBag() *Bag {
	return &Bag{subs: mapset.NewSet[*Subscription]()}
}

// Add takes ownership of the given subscriptions. Nil and already-canceled
// subscriptions are ignored.
func (b *Bag) Add(subs ...*Subscription) {
	for _, s := range subs {
		if s == nil || s.Canceled() {
			continue
		}
		b.subs.Add(s)
	}
}

func (b *Bag) Len() int {
	return b.subs.Cardinality()
}

// CancelAll cancels and drops every held subscription.
func (b *Bag) CancelAll() {
	b.subs.Each(func(s *Subscription) bool {
		s.Cancel()
		return false
	})
	b.subs.Clear()
}
