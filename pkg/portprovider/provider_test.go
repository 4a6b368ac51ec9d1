package portprovider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireflyframework/firefly-ecm/pkg/adapter"
	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/models"
)

type fakeSearcher struct {
	name string
}

func (f *fakeSearcher) AdapterName() string { return f.name }

func (f *fakeSearcher) Search(ctx context.Context, query models.SearchQuery) ([]models.SearchHit, error) {
	return []models.SearchHit{{DocumentID: "doc-1"}}, nil
}

func (f *fakeSearcher) Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	return nil, nil
}

func (f *fakeSearcher) CountMatches(ctx context.Context, query models.SearchQuery) (int64, error) {
	return 1, nil
}

func newTestProvider(t *testing.T, preferred map[ecmcapabilities.Capability]ecmcapabilities.AdapterID) (*Provider, *adapter.Catalog) {
	t.Helper()
	log := logger.New("portprovider-test", "test")
	log.DisableConsoleOutput()
	catalog := adapter.NewCatalog()
	return New(adapter.NewSelector(catalog, log), log, preferred), catalog
}

func searchDescriptor(typeID string, priority int) adapter.Descriptor {
	return adapter.Descriptor{
		TypeID:       ecmcapabilities.AdapterID(typeID),
		Priority:     priority,
		Enabled:      true,
		Capabilities: []ecmcapabilities.Capability{ecmcapabilities.CapSearch},
	}
}

func TestProviderReturnsRegisteredHandle(t *testing.T) {
	provider, catalog := newTestProvider(t, nil)

	searcher := &fakeSearcher{name: "opensearch"}
	catalog.Register(searcher, searchDescriptor("alpha", 1))

	h := provider.Search()
	assert.Same(t, searcher, h)
	assert.False(t, adapter.IsSynthesized(h))
	assert.False(t, provider.IsDegraded(ecmcapabilities.CapSearch))
}

func TestProviderSynthesizesWhenCapabilityMissing(t *testing.T) {
	provider, _ := newTestProvider(t, nil)

	h := provider.Search()
	require.NotNil(t, h)
	assert.True(t, adapter.IsSynthesized(h))
	assert.Equal(t, "NoOpSearchOperatorAdapter", h.AdapterName())
	assert.True(t, provider.IsDegraded(ecmcapabilities.CapSearch))

	// The stand-in is behaviorally safe for queries.
	hits, err := h.Search(context.Background(), models.SearchQuery{Text: "contract"})
	assert.NoError(t, err)
	assert.Empty(t, hits)
}

func TestProviderHonorsPreference(t *testing.T) {
	provider, catalog := newTestProvider(t, map[ecmcapabilities.Capability]ecmcapabilities.AdapterID{
		ecmcapabilities.CapSearch: "alpha",
	})

	preferred := &fakeSearcher{name: "preferred"}
	other := &fakeSearcher{name: "other"}
	catalog.Register(preferred, searchDescriptor("alpha", 1))
	catalog.Register(other, searchDescriptor("beta", 100))

	h := provider.Search()
	assert.Same(t, preferred, h)
}

func TestProviderEveryAccessorIsUsable(t *testing.T) {
	provider, _ := newTestProvider(t, nil)

	// With an empty catalog every accessor degrades to a stand-in instead of
	// returning nil.
	handles := []interface{ AdapterName() string }{
		provider.Documents(),
		provider.Content(),
		provider.Versions(),
		provider.Folders(),
		provider.Permissions(),
		provider.Security(),
		provider.Search(),
		provider.Audit(),
		provider.Envelopes(),
		provider.Signatures(),
		provider.TextExtraction(),
		provider.Classification(),
		provider.StructuredExtraction(),
		provider.Validation(),
	}
	for _, h := range handles {
		require.NotNil(t, h)
		assert.True(t, adapter.IsSynthesized(h))
	}
}
