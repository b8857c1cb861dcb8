// Package bus provides the typed publish/subscribe primitive every pipeline
// stage is built on: a keyed in-memory store with synchronous listener fanout.
//
// Propagation is depth-first on one call stack. OnMessage upserts, then every
// registered listener observes the value in registration order before the
// producing call returns. Nothing is queued and nothing runs concurrently.
package bus

// Listener receives events from a Service. Only ProcessAdd is driven by this
// system; remove and update are reserved extension points.
type Listener[V any] interface {
	ProcessAdd(V)
	ProcessRemove(V)
	ProcessUpdate(V)
}

// NopListener provides no-op remove/update callbacks for embedding.
type NopListener[V any] struct{}

func (NopListener[V]) ProcessAdd(V)    {}
func (NopListener[V]) ProcessRemove(V) {}
func (NopListener[V]) ProcessUpdate(V) {}

// Service is a keyed store of V with ordered listener fanout. The key of a
// value is derived by the extractor given at construction.
type Service[V any] struct {
	keyOf     func(V) string
	data      map[string]V
	listeners []Listener[V]
}

// New allocates a service whose values are keyed by keyOf.
func New[V any](keyOf func(V) string) *Service[V] {
	return &Service[V]{
		keyOf: keyOf,
		data:  make(map[string]V),
	}
}

// OnMessage upserts the value under its derived key, then notifies every
// listener synchronously in registration order.
func (s *Service[V]) OnMessage(v V) {
	s.data[s.keyOf(v)] = v
	s.Notify(v)
}

// Put upserts without notifying listeners.
func (s *Service[V]) Put(v V) {
	s.data[s.keyOf(v)] = v
}

// Notify fans the value out to every listener without storing it.
func (s *Service[V]) Notify(v V) {
	for _, l := range s.listeners {
		l.ProcessAdd(v)
	}
}

// Get returns the stored value for key. Absent keys are reported, never
// defaulted.
func (s *Service[V]) Get(key string) (V, bool) {
	v, ok := s.data[key]
	return v, ok
}

// AddListener appends a listener. Listeners cannot be removed and duplicates
// are not detected.
func (s *Service[V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// Listeners returns the registered listeners in registration order.
func (s *Service[V]) Listeners() []Listener[V] {
	return s.listeners
}

// Len returns the number of stored keys.
func (s *Service[V]) Len() int {
	return len(s.data)
}
