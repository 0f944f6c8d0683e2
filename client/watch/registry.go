package watch

import (
	"github.com/monkedo/connect-go/internal/collection"
)

// Registry tracks live watches by id so the orchestrator can introspect
// in-flight waits. Entries are removed when their connect attempt resolves.
type Registry struct {
	watches *collection.SyncMap[string, *Watch]
}

func NewRegistry() *Registry {
	return &Registry{watches: collection.NewSyncMap[string, *Watch]()}
}

func (r *Registry) Add(w *Watch) {
	r.watches.Put(w.ID(), w)
}

func (r *Registry) Remove(id string) {
	r.watches.Delete(id)
}

func (r *Registry) Lookup(id string) (*Watch, bool) {
	return r.watches.Get(id)
}

// Len returns the number of live watches.
func (r *Registry) Len() int {
	return r.watches.Len()
}
