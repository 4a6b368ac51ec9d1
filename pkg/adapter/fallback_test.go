package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/models"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		method   string
		expected behavior
	}{
		// Authorization-style checks fail open.
		{"CanWrite", behaviorAffirm},
		{"CanRead", behaviorAffirm},
		{"CheckAccess", behaviorAffirm},
		{"AllowDownload", behaviorAffirm},

		// Existence-style checks deny.
		{"ExistsDocument", behaviorDeny},
		{"HasChildren", behaviorDeny},
		{"IsEncrypted", behaviorDeny},
		{"ContainsText", behaviorDeny},

		// Mutation verbs fail loudly.
		{"CreateDocument", behaviorFail},
		{"UpdateEnvelope", behaviorFail},
		{"DeleteThing", behaviorFail},
		{"SaveDraft", behaviorFail},
		{"StoreContent", behaviorFail},
		{"ApplyLegalHold", behaviorFail},
		{"RemoveACL", behaviorFail},
		{"SetActiveVersion", behaviorFail},
		{"MoveFolder", behaviorFail},
		{"CopyDocument", behaviorFail},
		{"BulkDeleteEntries", behaviorFail}, // contains "delete"
		{"EncryptContent", behaviorFail},    // contains "encrypt"

		// Everything else is a harmless query.
		{"ListThings", behaviorEmpty},
		{"GetDocument", behaviorEmpty},
		{"Search", behaviorEmpty},
		{"ExtractText", behaviorEmpty},
		{"CountMatches", behaviorEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.method))
		})
	}
}

// drainEntries collects everything currently buffered on a log subscription.
func drainEntries(ch <-chan logger.LogEntry) []logger.LogEntry {
	var out []logger.LogEntry
	for {
		select {
		case e := <-ch:
			out = append(out, e)
		default:
			return out
		}
	}
}

func newCapturedLogger() (*logger.Logger, <-chan logger.LogEntry) {
	log := logger.New("fallback-test", "test")
	log.DisableConsoleOutput()
	return log, log.Subscribe()
}

func TestStandInIdentityAccessorIsSilent(t *testing.T) {
	log, entries := newCapturedLogger()

	store := NewNoOpDocumentStore(log)
	assert.Equal(t, "NoOpDocumentStoreAdapter", store.AdapterName())
	assert.Empty(t, drainEntries(entries), "identity queries must not log")
}

func TestStandInQueryLogsExactlyOneWarning(t *testing.T) {
	log, entries := newCapturedLogger()
	ctx := context.Background()

	store := NewNoOpDocumentStore(log)
	has, err := store.HasDocument(ctx, "doc-1")
	assert.False(t, has)
	assert.NoError(t, err)

	logged := drainEntries(entries)
	require.Len(t, logged, 1)
	assert.Equal(t, "WARN", logged[0].Level)
	assert.Equal(t, "DocumentStore", logged[0].Fields["interface"])
	assert.Equal(t, "HasDocument", logged[0].Fields["method"])
	assert.Equal(t, string(ecmcapabilities.CapCRUD), logged[0].Fields["capability"])
}

func TestStandInMutationFailsLoudly(t *testing.T) {
	log, _ := newCapturedLogger()
	ctx := context.Background()

	store := NewNoOpDocumentStore(log)
	err := store.DeleteDocument(ctx, "doc-1")
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "DeleteDocument")
	assert.Contains(t, err.Error(), string(ecmcapabilities.CapCRUD))
}

func TestStandInQueriesNeverFail(t *testing.T) {
	log, _ := newCapturedLogger()
	ctx := context.Background()

	store := NewNoOpDocumentStore(log)
	docs, err := store.ListDocuments(ctx, "folder-1", 10)
	assert.NoError(t, err)
	assert.Empty(t, docs)

	doc, err := store.GetDocument(ctx, "doc-1")
	assert.NoError(t, err)
	assert.Nil(t, doc)

	perms := NewNoOpPermissionManager(log)
	allowed, err := perms.CanWrite(ctx, "user-1", "doc-1")
	assert.NoError(t, err)
	assert.True(t, allowed, "authorization checks fail open on stand-ins")

	extractor := NewNoOpTextExtractor(log)
	text, err := extractor.ExtractText(ctx, "doc-1")
	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestStandInMutationBranchesAcrossInterfaces(t *testing.T) {
	log, _ := newCapturedLogger()
	ctx := context.Background()

	content := NewNoOpContentStorage(log)
	_, err := content.StoreContent(ctx, "doc-1", []byte("x"))
	assert.True(t, IsUnavailable(err))

	security := NewNoOpSecurityOperator(log)
	assert.True(t, IsUnavailable(security.EncryptContent(ctx, "doc-1", "key-1")))

	audit := NewNoOpAuditTrail(log)
	_, err = audit.DeleteEntries(ctx, time.Now())
	assert.True(t, IsUnavailable(err))

	envelopes := NewNoOpEnvelopeManager(log)
	_, err = envelopes.CreateEnvelope(ctx, models.Envelope{})
	assert.True(t, IsUnavailable(err))
}

func TestSynthesizeCoversEveryCapability(t *testing.T) {
	log, _ := newCapturedLogger()
	syn := NewSynthesizer(log)

	for _, cap := range ecmcapabilities.Capabilities() {
		h, ok := syn.Synthesize(cap)
		require.True(t, ok, "capability %s has no stand-in", cap)
		assert.True(t, ports.Implements(h, cap), "stand-in for %s does not satisfy its contract", cap)
		assert.True(t, IsSynthesized(h))

		name, _ := ports.InterfaceName(cap)
		assert.Equal(t, "NoOp"+name+"Adapter", h.(ports.Port).AdapterName())
	}

	_, ok := syn.Synthesize("no-such-capability")
	assert.False(t, ok)
}

func TestIsSynthesizedFalseForRealProviders(t *testing.T) {
	assert.False(t, IsSynthesized(&fakeStorage{name: "real"}))
	assert.False(t, IsSynthesized(nil))
}
