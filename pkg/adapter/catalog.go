package adapter

import (
	"sort"
	"sync"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

// registration pairs a provider instance with its descriptor. The sequence
// number preserves registration order so that priority ties resolve
// deterministically to the first registered provider.
type registration struct {
	instance   any
	descriptor Descriptor
	seq        int
}

// Catalog indexes registered providers by type and by capability.
//
// Registration happens once, single-threaded, during the startup window.
// After that the catalog is effectively immutable and safe for concurrent
// reads from any number of goroutines.
type Catalog struct {
	mu           sync.RWMutex
	byType       map[ecmcapabilities.AdapterID][]*registration
	byCapability map[ecmcapabilities.Capability][]*registration
	nextSeq      int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byType:       make(map[ecmcapabilities.AdapterID][]*registration),
		byCapability: make(map[ecmcapabilities.Capability][]*registration),
	}
}

// Register inserts a provider instance under its descriptor's type ID and,
// for every declared capability the instance actually implements, under that
// capability as well.
//
// Register must be called only during the single-threaded startup window.
// Registration bugs fail fast: an invalid descriptor, a nil instance, or a
// declared capability the instance does not implement all panic rather than
// risk serving a wrong handle later.
func (c *Catalog) Register(instance any, desc Descriptor) {
	if err := desc.Validate(); err != nil {
		registrationPanic("%v", err)
	}
	if instance == nil {
		registrationPanic("nil instance registered for type %q", desc.TypeID)
	}
	for _, cap := range desc.Capabilities {
		if _, ok := ports.InterfaceOf(cap); !ok {
			registrationPanic("type %q declares unknown capability %q", desc.TypeID, cap)
		}
		if !ports.Implements(instance, cap) {
			registrationPanic("type %q declares capability %q but instance %T does not implement %s",
				desc.TypeID, cap, instance, mustInterfaceName(cap))
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	reg := &registration{
		instance:   instance,
		descriptor: desc,
		seq:        c.nextSeq,
	}
	c.nextSeq++

	c.byType[desc.TypeID] = append(c.byType[desc.TypeID], reg)
	for _, cap := range desc.Capabilities {
		c.byCapability[cap] = append(c.byCapability[cap], reg)
	}
}

func mustInterfaceName(cap ecmcapabilities.Capability) string {
	name, _ := ports.InterfaceName(cap)
	return name
}

// best returns the registration with the strictly highest priority.
// Ties resolve to the earliest registered entry: the scan only replaces the
// candidate on a strictly greater priority, and buckets are in insertion order.
func best(regs []*registration) (*registration, bool) {
	if len(regs) == 0 {
		return nil, false
	}
	winner := regs[0]
	for _, reg := range regs[1:] {
		if reg.descriptor.Priority > winner.descriptor.Priority {
			winner = reg
		}
	}
	return winner, true
}

// sorted returns a copy ordered by priority descending; equal priorities keep
// registration order.
func sorted(regs []*registration) []*registration {
	out := append([]*registration(nil), regs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].descriptor.Priority > out[j].descriptor.Priority
	})
	return out
}

func (c *Catalog) bestByType(id ecmcapabilities.AdapterID) (*registration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return best(c.byType[id])
}

func (c *Catalog) bestByCapability(cap ecmcapabilities.Capability) (*registration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return best(c.byCapability[cap])
}

// BestByType returns the highest-priority descriptor registered under the
// given type ID. Absence is ok=false, never an error.
func (c *Catalog) BestByType(id ecmcapabilities.AdapterID) (Descriptor, bool) {
	reg, ok := c.bestByType(id)
	if !ok {
		return Descriptor{}, false
	}
	return reg.descriptor, true
}

// AllByType returns all descriptors registered under the given type ID,
// sorted by priority descending.
func (c *Catalog) AllByType(id ecmcapabilities.AdapterID) []Descriptor {
	c.mu.RLock()
	regs := sorted(c.byType[id])
	c.mu.RUnlock()

	out := make([]Descriptor, 0, len(regs))
	for _, reg := range regs {
		out = append(out, reg.descriptor)
	}
	return out
}

// BestByCapability returns the highest-priority provider instance declaring
// the given capability, regardless of type. The handle is guaranteed to
// implement the capability's contract interface (checked at registration).
func (c *Catalog) BestByCapability(cap ecmcapabilities.Capability) (any, bool) {
	reg, ok := c.bestByCapability(cap)
	if !ok {
		return nil, false
	}
	return reg.instance, true
}

// AllByCapability returns every provider instance declaring the capability,
// sorted by priority descending.
func (c *Catalog) AllByCapability(cap ecmcapabilities.Capability) []any {
	c.mu.RLock()
	regs := sorted(c.byCapability[cap])
	c.mu.RUnlock()

	out := make([]any, 0, len(regs))
	for _, reg := range regs {
		out = append(out, reg.instance)
	}
	return out
}

// HasType checks whether any provider is registered under the type ID.
func (c *Catalog) HasType(id ecmcapabilities.AdapterID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byType[id]) > 0
}

// HasCapability checks whether any provider declares the capability.
func (c *Catalog) HasCapability(cap ecmcapabilities.Capability) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byCapability[cap]) > 0
}

// RegisteredTypes returns a snapshot of all registered type IDs, sorted.
// The result is a copy, never a live view.
func (c *Catalog) RegisteredTypes() []ecmcapabilities.AdapterID {
	c.mu.RLock()
	out := make([]ecmcapabilities.AdapterID, 0, len(c.byType))
	for id := range c.byType {
		out = append(out, id)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
