package ports

import (
	"reflect"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

// interfaceTypes maps every capability tag to its contract interface type.
// The table must stay exhaustive: a capability without an interface cannot be
// registered, selected, or synthesized.
var interfaceTypes = map[ecmcapabilities.Capability]reflect.Type{
	ecmcapabilities.CapCRUD:                 reflect.TypeOf((*DocumentStore)(nil)).Elem(),
	ecmcapabilities.CapContentStorage:       reflect.TypeOf((*ContentStorage)(nil)).Elem(),
	ecmcapabilities.CapVersioning:           reflect.TypeOf((*VersionManager)(nil)).Elem(),
	ecmcapabilities.CapFolderHierarchy:      reflect.TypeOf((*FolderHierarchy)(nil)).Elem(),
	ecmcapabilities.CapPermissions:          reflect.TypeOf((*PermissionManager)(nil)).Elem(),
	ecmcapabilities.CapSecurity:             reflect.TypeOf((*SecurityOperator)(nil)).Elem(),
	ecmcapabilities.CapSearch:               reflect.TypeOf((*SearchOperator)(nil)).Elem(),
	ecmcapabilities.CapAuditTrail:           reflect.TypeOf((*AuditTrail)(nil)).Elem(),
	ecmcapabilities.CapEnvelopeManagement:   reflect.TypeOf((*EnvelopeManager)(nil)).Elem(),
	ecmcapabilities.CapSignatureValidation:  reflect.TypeOf((*SignatureValidator)(nil)).Elem(),
	ecmcapabilities.CapTextExtraction:       reflect.TypeOf((*TextExtractor)(nil)).Elem(),
	ecmcapabilities.CapClassification:       reflect.TypeOf((*DocumentClassifier)(nil)).Elem(),
	ecmcapabilities.CapStructuredExtraction: reflect.TypeOf((*StructuredExtractor)(nil)).Elem(),
	ecmcapabilities.CapValidation:           reflect.TypeOf((*DocumentValidator)(nil)).Elem(),
}

// InterfaceOf returns the contract interface type for a capability.
// Returns false for capabilities without a registered contract.
func InterfaceOf(c ecmcapabilities.Capability) (reflect.Type, bool) {
	t, ok := interfaceTypes[c]
	return t, ok
}

// InterfaceName returns the contract interface name for a capability,
// e.g. "DocumentStore" for "crud". Returns false if unknown.
func InterfaceName(c ecmcapabilities.Capability) (string, bool) {
	t, ok := interfaceTypes[c]
	if !ok {
		return "", false
	}
	return t.Name(), true
}

// Implements reports whether instance satisfies the contract interface of the
// given capability. Unknown capabilities never match.
func Implements(instance any, c ecmcapabilities.Capability) bool {
	t, ok := interfaceTypes[c]
	if !ok || instance == nil {
		return false
	}
	return reflect.TypeOf(instance).Implements(t)
}
