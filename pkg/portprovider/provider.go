// Package portprovider exposes the configured content-management ports to
// application code. Every accessor returns a usable handle: the selected
// provider when one is registered for the capability, and a synthesized
// stand-in otherwise, so the host application can start with partial adapter
// coverage.
package portprovider

import (
	"github.com/fireflyframework/firefly-ecm/pkg/adapter"
	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

// Provider resolves capability handles through a selector, with per-capability
// type preferences. It is safe for concurrent use once constructed.
type Provider struct {
	selector  *adapter.Selector
	synth     *adapter.Synthesizer
	preferred map[ecmcapabilities.Capability]ecmcapabilities.AdapterID
}

// New creates a provider over the given selector. preferred maps capabilities
// to the adapter type that should serve them when compatible; it may be nil.
func New(selector *adapter.Selector, log *logger.Logger, preferred map[ecmcapabilities.Capability]ecmcapabilities.AdapterID) *Provider {
	prefs := make(map[ecmcapabilities.Capability]ecmcapabilities.AdapterID, len(preferred))
	for cap, id := range preferred {
		prefs[cap] = id
	}
	return &Provider{
		selector:  selector,
		synth:     adapter.NewSynthesizer(log),
		preferred: prefs,
	}
}

// resolve returns the selected handle for a capability, or a synthesized
// stand-in when nothing compatible is registered.
func resolve[T any](p *Provider, cap ecmcapabilities.Capability) T {
	if h, ok := adapter.Select[T](p.selector, p.preferred[cap], cap); ok {
		return h
	}
	h, ok := p.synth.Synthesize(cap)
	if !ok {
		// Every capability tag has a stand-in constructor; a miss here is a
		// table maintenance bug.
		panic("portprovider: no stand-in for capability " + string(cap))
	}
	return h.(T)
}

// IsDegraded reports whether the capability would be served by a stand-in.
func (p *Provider) IsDegraded(cap ecmcapabilities.Capability) bool {
	return !p.selector.IsAvailable(p.preferred[cap], cap)
}

// Documents returns the document metadata port.
func (p *Provider) Documents() ports.DocumentStore {
	return resolve[ports.DocumentStore](p, ecmcapabilities.CapCRUD)
}

// Content returns the binary content port.
func (p *Provider) Content() ports.ContentStorage {
	return resolve[ports.ContentStorage](p, ecmcapabilities.CapContentStorage)
}

// Versions returns the version-history port.
func (p *Provider) Versions() ports.VersionManager {
	return resolve[ports.VersionManager](p, ecmcapabilities.CapVersioning)
}

// Folders returns the folder-hierarchy port.
func (p *Provider) Folders() ports.FolderHierarchy {
	return resolve[ports.FolderHierarchy](p, ecmcapabilities.CapFolderHierarchy)
}

// Permissions returns the access-control port.
func (p *Provider) Permissions() ports.PermissionManager {
	return resolve[ports.PermissionManager](p, ecmcapabilities.CapPermissions)
}

// Security returns the encryption and legal-hold port.
func (p *Provider) Security() ports.SecurityOperator {
	return resolve[ports.SecurityOperator](p, ecmcapabilities.CapSecurity)
}

// Search returns the content-search port.
func (p *Provider) Search() ports.SearchOperator {
	return resolve[ports.SearchOperator](p, ecmcapabilities.CapSearch)
}

// Audit returns the audit-trail port.
func (p *Provider) Audit() ports.AuditTrail {
	return resolve[ports.AuditTrail](p, ecmcapabilities.CapAuditTrail)
}

// Envelopes returns the eSignature envelope port.
func (p *Provider) Envelopes() ports.EnvelopeManager {
	return resolve[ports.EnvelopeManager](p, ecmcapabilities.CapEnvelopeManagement)
}

// Signatures returns the signature-validation port.
func (p *Provider) Signatures() ports.SignatureValidator {
	return resolve[ports.SignatureValidator](p, ecmcapabilities.CapSignatureValidation)
}

// TextExtraction returns the text-extraction port.
func (p *Provider) TextExtraction() ports.TextExtractor {
	return resolve[ports.TextExtractor](p, ecmcapabilities.CapTextExtraction)
}

// Classification returns the document-classification port.
func (p *Provider) Classification() ports.DocumentClassifier {
	return resolve[ports.DocumentClassifier](p, ecmcapabilities.CapClassification)
}

// StructuredExtraction returns the structured-extraction port.
func (p *Provider) StructuredExtraction() ports.StructuredExtractor {
	return resolve[ports.StructuredExtractor](p, ecmcapabilities.CapStructuredExtraction)
}

// Validation returns the document-validation port.
func (p *Provider) Validation() ports.DocumentValidator {
	return resolve[ports.DocumentValidator](p, ecmcapabilities.CapValidation)
}
