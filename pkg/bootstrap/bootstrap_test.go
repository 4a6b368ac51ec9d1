package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireflyframework/firefly-ecm/pkg/adapter"
	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/models"
)

type fakeStorage struct {
	name string
}

func (f *fakeStorage) AdapterName() string { return f.name }

func (f *fakeStorage) StoreContent(ctx context.Context, documentID string, content []byte) (string, error) {
	return "ref", nil
}

func (f *fakeStorage) GetContent(ctx context.Context, documentID string) ([]byte, error) {
	return nil, nil
}

func (f *fakeStorage) DeleteContent(ctx context.Context, documentID string) error { return nil }

func (f *fakeStorage) GetContentSize(ctx context.Context, documentID string) (int64, error) {
	return 0, nil
}

type fakeSearcher struct {
	name string
}

func (f *fakeSearcher) AdapterName() string { return f.name }

func (f *fakeSearcher) Search(ctx context.Context, query models.SearchQuery) ([]models.SearchHit, error) {
	return nil, nil
}

func (f *fakeSearcher) Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	return nil, nil
}

func (f *fakeSearcher) CountMatches(ctx context.Context, query models.SearchQuery) (int64, error) {
	return 0, nil
}

func newTestLogger() *logger.Logger {
	log := logger.New("bootstrap-test", "test")
	log.DisableConsoleOutput()
	return log
}

func storageRegistration() Registration {
	return Registration{
		Descriptor: adapter.Descriptor{
			TypeID:             ecmcapabilities.S3,
			Priority:           5,
			RequiredConfigKeys: []string{"bucket", "region"},
			Capabilities:       []ecmcapabilities.Capability{ecmcapabilities.CapContentStorage},
		},
		New: func(settings map[string]string, log *logger.Logger) (any, error) {
			return &fakeStorage{name: "s3:" + settings["bucket"]}, nil
		},
	}
}

func searchRegistration() Registration {
	return Registration{
		Descriptor: adapter.Descriptor{
			TypeID:             "opensearch",
			Priority:           1,
			RequiredConfigKeys: []string{"endpoint"},
			Capabilities:       []ecmcapabilities.Capability{ecmcapabilities.CapSearch},
		},
		New: func(settings map[string]string, log *logger.Logger) (any, error) {
			return &fakeSearcher{name: "opensearch"}, nil
		},
	}
}

func TestRunRegistersConfiguredAdapters(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
adapters:
  - type: aws-s3
    priority: 20
    settings:
      bucket: contracts
      region: eu-west-1
  - type: opensearch
    settings:
      endpoint: http://search:9200
preferred:
  content-storage: s3
`))
	require.NoError(t, err)

	result, err := Run(cfg, []Registration{storageRegistration(), searchRegistration()}, newTestLogger())
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Empty(t, result.Warnings)

	// The alias resolved onto the canonical type, with the configured priority.
	desc, ok := result.Catalog.BestByType(ecmcapabilities.S3)
	require.True(t, ok)
	assert.Equal(t, 20, desc.Priority)

	h := result.Provider.Content()
	assert.Equal(t, "s3:contracts", h.AdapterName())
	assert.False(t, adapter.IsSynthesized(h))
}

func TestRunWarnsAndDegrades(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
adapters:
  - type: s3
    settings:
      bucket: contracts
  - type: no-such-bundle
    settings: {}
  - type: opensearch
    enabled: false
preferred:
  search: opensearch
`))
	require.NoError(t, err)

	result, err := Run(cfg, []Registration{storageRegistration(), searchRegistration()}, newTestLogger())
	require.NoError(t, err)

	// s3 lacks "region", no-such-bundle has no registration, opensearch is
	// disabled and therefore missing for the preferred map.
	require.Len(t, result.Warnings, 3)
	assert.Contains(t, result.Warnings[0], "missing required configuration keys")
	assert.Contains(t, result.Warnings[0], "region")
	assert.Contains(t, result.Warnings[1], "no bundle is registered")
	assert.Contains(t, result.Warnings[2], "preferred adapter")

	assert.False(t, result.Catalog.HasType(ecmcapabilities.S3))
	assert.Equal(t, CoverageEmpty, result.Coverage.GetOverallStatus())

	// The provider still serves every capability through stand-ins.
	assert.True(t, adapter.IsSynthesized(result.Provider.Search()))
}

func TestRunConstructorFailureDegrades(t *testing.T) {
	reg := searchRegistration()
	reg.New = func(settings map[string]string, log *logger.Logger) (any, error) {
		return nil, errors.New("connection refused")
	}
	cfg, err := ParseConfig([]byte(`
adapters:
  - type: opensearch
    settings:
      endpoint: http://search:9200
`))
	require.NoError(t, err)

	result, err := Run(cfg, []Registration{reg}, newTestLogger())
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "failed to construct")
	assert.False(t, result.Catalog.HasType("opensearch"))
}

func TestRunCoverageReport(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
adapters:
  - type: opensearch
    settings:
      endpoint: http://search:9200
`))
	require.NoError(t, err)

	result, err := Run(cfg, []Registration{searchRegistration()}, newTestLogger())
	require.NoError(t, err)

	assert.Equal(t, CoverageDegraded, result.Coverage.GetOverallStatus())

	checks := result.Coverage.GetAllChecks()
	require.Len(t, checks, len(ecmcapabilities.Capabilities()))
	byCap := make(map[ecmcapabilities.Capability]CoverageCheck, len(checks))
	for _, c := range checks {
		byCap[c.Capability] = c
	}
	assert.Equal(t, CoverageReal, byCap[ecmcapabilities.CapSearch].Status)
	assert.Equal(t, "opensearch", byCap[ecmcapabilities.CapSearch].AdapterName)
	assert.Equal(t, CoverageSynthesized, byCap[ecmcapabilities.CapCRUD].Status)

	gaps := result.Coverage.Gaps()
	assert.Len(t, gaps, len(checks)-1)
	assert.NotContains(t, gaps, ecmcapabilities.CapSearch)
}

func TestRunRejectsBrokenRegistrations(t *testing.T) {
	cfg := &Config{}
	log := newTestLogger()

	_, err := Run(nil, nil, log)
	assert.Error(t, err)

	bad := searchRegistration()
	bad.New = nil
	_, err = Run(cfg, []Registration{bad}, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no constructor")

	_, err = Run(cfg, []Registration{searchRegistration(), searchRegistration()}, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate registration")

	invalid := searchRegistration()
	invalid.Descriptor.TypeID = ""
	_, err = Run(cfg, []Registration{invalid}, log)
	assert.Error(t, err)
}
