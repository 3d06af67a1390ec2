package blocks

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the installed blocks keyed by their stable id.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]Block
}

func NewRegistry() *Registry {
	return &Registry{byID: map[string]Block{}}
}

// Register installs a block. Ids are stable and must be unique; a duplicate
// registration is a programming error.
func (r *Registry) Register(b Block) error {
	info := b.Info()
	if info.ID == "" || info.Name == "" {
		return fmt.Errorf("block missing id or name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[info.ID]; dup {
		return fmt.Errorf("duplicate block id %s", info.ID)
	}
	r.byID[info.ID] = b
	return nil
}

// MustRegister panics on registration failure; used at startup wiring.
func (r *Registry) MustRegister(bs ...Block) {
	for _, b := range bs {
		if err := r.Register(b); err != nil {
			panic(err)
		}
	}
}

// Get returns the block with the given id.
func (r *Registry) Get(id string) (Block, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	return b, ok
}

// List returns all blocks ordered by name for deterministic output.
func (r *Registry) List() []Block {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Block, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Info().Name < out[j].Info().Name })
	return out
}
