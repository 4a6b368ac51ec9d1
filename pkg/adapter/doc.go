// Package adapter provides registration, selection, and fallback synthesis
// for Firefly ECM content adapters.
//
// This package is the runtime core of the framework: everything else in the
// repository is either a contract declaration (pkg/ports), metadata
// (pkg/ecmcapabilities), or wiring (pkg/bootstrap, pkg/portprovider).
//
// # Architecture
//
//   - Descriptor: immutable metadata about one registered provider
//   - Catalog: indices over descriptors, by type ID and by capability
//   - Selector: layered selection policy (strict / fallback / capability-only)
//     plus configuration validation
//   - Synthesizer: safe stand-ins for capabilities no provider serves
//
// # Usage
//
// An external bootstrap step discovers providers and registers them once at
// startup:
//
//	catalog := adapter.NewCatalog()
//	catalog.Register(s3provider.New(cfg), s3provider.Describe())
//
//	log := logger.New("ecm", "1.0.0")
//	selector := adapter.NewSelector(catalog, log)
//
// Consumers then resolve a handle per capability:
//
//	store, ok := adapter.Select[ports.ContentStorage](selector, ecmcapabilities.S3, ecmcapabilities.CapContentStorage)
//	if !ok {
//	    // fall back to a synthesized stand-in
//	    h, _ := adapter.NewSynthesizer(log).Synthesize(ecmcapabilities.CapContentStorage)
//	    store = h.(ports.ContentStorage)
//	}
//
// # Selection policy
//
// SelectWithFallback prefers the given type when it is registered and
// compatible with the requested capability, and otherwise serves the
// highest-priority provider declaring the capability. SelectStrict never
// falls back. Ties on priority resolve to the first registered provider, so
// repeated queries within one process are reproducible.
//
// # Fallback semantics
//
// A synthesized stand-in makes every call observable (one structured warning
// per invocation) and never silently succeeds on a state-changing call.
// Method names classify the behavior:
//
//   - authorization-style checks (can/access/permission/allow) return true;
//     failing open here is a deliberate tradeoff against accidental lockout
//   - existence-style checks (exists/has/is/contains) return false
//   - mutation verbs (create/update/delete/save/store/apply/remove/set/
//     move/copy, or names containing delete/store/encrypt) return an
//     UnavailableOperationError
//   - everything else returns an empty result shaped to the return type
//
// The identity accessor AdapterName reports a synthesized label such as
// "NoOpDocumentStoreAdapter" and is never logged as a missing-capability
// event.
//
// # Error handling
//
// Absence is a first-class result throughout: catalog and selector lookups
// return ok=false, never an error. Missing configuration is reported through
// ValidationOutcome. The only caller-visible error in this package is the
// stand-in mutation path, so call sites can distinguish "capability absent
// and unused" from "capability absent but actually invoked". Registration
// inconsistencies (an instance registered under a capability it does not
// implement) panic during the startup window.
//
// # Thread safety
//
// Registration must complete before the catalog is shared. After that window
// the catalog, selector, and synthesizer are read-only and safe for
// concurrent use; the catalog additionally guards its indices with an RWMutex
// so late registration in tests stays race-free.
package adapter
