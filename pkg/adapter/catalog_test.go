package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

// fakeStorage is a minimal real provider implementing ports.ContentStorage.
type fakeStorage struct {
	name string
}

func (f *fakeStorage) AdapterName() string { return f.name }

func (f *fakeStorage) StoreContent(ctx context.Context, documentID string, content []byte) (string, error) {
	return "ref-" + documentID, nil
}

func (f *fakeStorage) GetContent(ctx context.Context, documentID string) ([]byte, error) {
	return []byte("content"), nil
}

func (f *fakeStorage) DeleteContent(ctx context.Context, documentID string) error {
	return nil
}

func (f *fakeStorage) GetContentSize(ctx context.Context, documentID string) (int64, error) {
	return 7, nil
}

func storageDescriptor(typeID string, priority int) Descriptor {
	return Descriptor{
		TypeID:             ecmcapabilities.AdapterID(typeID),
		Priority:           priority,
		Enabled:            true,
		RequiredConfigKeys: []string{"bucket"},
		Capabilities:       []ecmcapabilities.Capability{ecmcapabilities.CapContentStorage},
	}
}

func TestCatalogBestByTypeHighestPriorityWins(t *testing.T) {
	catalog := NewCatalog()

	low := &fakeStorage{name: "alpha-low"}
	high := &fakeStorage{name: "alpha-high"}
	catalog.Register(low, storageDescriptor("alpha", 1))
	catalog.Register(high, storageDescriptor("alpha", 5))

	desc, ok := catalog.BestByType("alpha")
	require.True(t, ok)
	assert.Equal(t, 5, desc.Priority)

	// The same provider wins the capability index, regardless of type.
	h, ok := catalog.BestByCapability(ecmcapabilities.CapContentStorage)
	require.True(t, ok)
	assert.Same(t, high, h)
}

func TestCatalogTieBreakFirstRegisteredWins(t *testing.T) {
	catalog := NewCatalog()

	first := &fakeStorage{name: "first"}
	second := &fakeStorage{name: "second"}
	catalog.Register(first, storageDescriptor("alpha", 3))
	catalog.Register(second, storageDescriptor("alpha", 3))

	for i := 0; i < 10; i++ {
		h, ok := catalog.BestByCapability(ecmcapabilities.CapContentStorage)
		require.True(t, ok)
		assert.Same(t, first, h, "tie must resolve to the first registered provider, reproducibly")
	}
}

func TestCatalogAllByTypeSortedDescending(t *testing.T) {
	catalog := NewCatalog()

	catalog.Register(&fakeStorage{name: "a"}, storageDescriptor("alpha", 2))
	catalog.Register(&fakeStorage{name: "b"}, storageDescriptor("alpha", 9))
	catalog.Register(&fakeStorage{name: "c"}, storageDescriptor("alpha", 2))
	catalog.Register(&fakeStorage{name: "other"}, storageDescriptor("beta", 100))

	all := catalog.AllByType("alpha")
	require.Len(t, all, 3)
	assert.Equal(t, []int{9, 2, 2}, []int{all[0].Priority, all[1].Priority, all[2].Priority})

	// Sorted output of the capability index includes every declaring provider.
	handles := catalog.AllByCapability(ecmcapabilities.CapContentStorage)
	require.Len(t, handles, 4)
	assert.Equal(t, "other", handles[0].(*fakeStorage).name)
}

func TestCatalogEmptyLookups(t *testing.T) {
	catalog := NewCatalog()

	_, ok := catalog.BestByType("alpha")
	assert.False(t, ok)
	assert.Empty(t, catalog.AllByType("alpha"))

	_, ok = catalog.BestByCapability(ecmcapabilities.CapSearch)
	assert.False(t, ok)
	assert.Empty(t, catalog.AllByCapability(ecmcapabilities.CapSearch))

	assert.False(t, catalog.HasType("alpha"))
	assert.False(t, catalog.HasCapability(ecmcapabilities.CapSearch))
	assert.Empty(t, catalog.RegisteredTypes())
}

func TestCatalogMembership(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register(&fakeStorage{name: "a"}, storageDescriptor("alpha", 1))

	assert.True(t, catalog.HasType("alpha"))
	assert.True(t, catalog.HasCapability(ecmcapabilities.CapContentStorage))
	assert.False(t, catalog.HasCapability(ecmcapabilities.CapCRUD))
}

func TestCatalogRegisteredTypesSnapshot(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register(&fakeStorage{name: "b"}, storageDescriptor("beta", 1))
	catalog.Register(&fakeStorage{name: "a"}, storageDescriptor("alpha", 1))

	types := catalog.RegisteredTypes()
	assert.Equal(t, []ecmcapabilities.AdapterID{"alpha", "beta"}, types)

	// Mutating the snapshot must not affect the catalog.
	types[0] = "mutated"
	assert.Equal(t, []ecmcapabilities.AdapterID{"alpha", "beta"}, catalog.RegisteredTypes())
}

func TestCatalogRegisterFailsFastOnInconsistency(t *testing.T) {
	catalog := NewCatalog()

	// Declared capability the instance does not implement.
	desc := storageDescriptor("alpha", 1)
	desc.Capabilities = append(desc.Capabilities, ecmcapabilities.CapSearch)
	assert.Panics(t, func() {
		catalog.Register(&fakeStorage{name: "a"}, desc)
	})

	// Empty type ID.
	assert.Panics(t, func() {
		catalog.Register(&fakeStorage{name: "a"}, storageDescriptor("", 1))
	})

	// Nil instance.
	assert.Panics(t, func() {
		catalog.Register(nil, storageDescriptor("alpha", 1))
	})

	// Overlapping required/optional config keys.
	bad := storageDescriptor("alpha", 1)
	bad.OptionalConfigKeys = []string{"bucket"}
	assert.Panics(t, func() {
		catalog.Register(&fakeStorage{name: "a"}, bad)
	})
}
