package adapter

import (
	"strings"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

// behavior is the classified outcome of invoking a method on a stand-in.
type behavior int

const (
	// behaviorEmpty returns an empty result shaped to the return type.
	behaviorEmpty behavior = iota
	// behaviorAffirm returns true. Authorization-style checks fail open so a
	// missing permissions adapter cannot lock an application out.
	behaviorAffirm
	// behaviorDeny returns false for existence-style checks.
	behaviorDeny
	// behaviorFail surfaces an UnavailableOperationError. State-changing
	// calls must never silently succeed.
	behaviorFail
)

// The classification table. Markers match case-insensitively; affirm markers
// match as prefix or substring, deny and mutation prefixes match at the start
// of the name, mutation markers match anywhere.
var (
	affirmMarkers    = []string{"can", "access", "permission", "allow"}
	denyPrefixes     = []string{"exists", "has", "is", "contains"}
	mutationPrefixes = []string{"create", "update", "delete", "save", "store", "apply", "remove", "set", "move", "copy"}
	mutationMarkers  = []string{"delete", "store", "encrypt"}
)

// classify maps a method name to its stand-in behavior. Classification is a
// pure function of the name; the declared return shape is applied by the
// stand-in method itself.
func classify(method string) behavior {
	name := strings.ToLower(method)

	for _, m := range affirmMarkers {
		if strings.Contains(name, m) {
			return behaviorAffirm
		}
	}
	for _, p := range denyPrefixes {
		if strings.HasPrefix(name, p) {
			return behaviorDeny
		}
	}
	for _, p := range mutationPrefixes {
		if strings.HasPrefix(name, p) {
			return behaviorFail
		}
	}
	for _, m := range mutationMarkers {
		if strings.Contains(name, m) {
			return behaviorFail
		}
	}
	return behaviorEmpty
}

// outcome carries the classified result of one dispatched call. Stand-in
// methods shape it onto their declared return types.
type outcome struct {
	allow bool
	err   error
}

// Bool returns the classified boolean result.
func (o outcome) Bool() bool { return o.allow }

// Err returns the classified error; nil for every branch except mutations.
func (o outcome) Err() error { return o.err }

// standIn is the shared dispatch core embedded by every synthesized stand-in.
type standIn struct {
	iface string
	cap   ecmcapabilities.Capability
	log   *logger.Logger
}

func newStandIn(cap ecmcapabilities.Capability, log *logger.Logger) standIn {
	name, _ := ports.InterfaceName(cap)
	return standIn{
		iface: name,
		cap:   cap,
		log:   log,
	}
}

// name is the synthesized adapter identity, e.g. "NoOpDocumentStoreAdapter".
// Identity queries are not missing-capability events and are never logged.
func (s standIn) name() string {
	return "NoOp" + s.iface + "Adapter"
}

func (s standIn) isSynthesized() bool { return true }

// dispatch records exactly one structured warning for the call and classifies
// it by method name. This is the fallback path's single observability hook.
func (s standIn) dispatch(method string) outcome {
	s.log.WithFields(map[string]string{
		"interface":  s.iface,
		"method":     method,
		"capability": string(s.cap),
	}).Warn("call on missing capability served by synthesized stand-in")

	switch classify(method) {
	case behaviorAffirm:
		return outcome{allow: true}
	case behaviorDeny:
		return outcome{}
	case behaviorFail:
		return outcome{err: NewUnavailableOperationError(s.cap, s.iface, method)}
	default:
		return outcome{}
	}
}

// IsSynthesized checks whether a handle is a synthesized stand-in rather than
// a real provider.
func IsSynthesized(v any) bool {
	_, ok := v.(interface{ isSynthesized() bool })
	return ok
}

// Synthesizer generates behaviorally safe stand-ins for capability contracts
// so a consuming application can start and run with partial adapter coverage.
type Synthesizer struct {
	log *logger.Logger
}

// NewSynthesizer creates a synthesizer that logs stand-in invocations to log.
func NewSynthesizer(log *logger.Logger) *Synthesizer {
	return &Synthesizer{log: log}
}

// constructors maps each capability to its stand-in constructor.
var constructors = map[ecmcapabilities.Capability]func(*logger.Logger) any{
	ecmcapabilities.CapCRUD:                 func(l *logger.Logger) any { return NewNoOpDocumentStore(l) },
	ecmcapabilities.CapContentStorage:       func(l *logger.Logger) any { return NewNoOpContentStorage(l) },
	ecmcapabilities.CapVersioning:           func(l *logger.Logger) any { return NewNoOpVersionManager(l) },
	ecmcapabilities.CapFolderHierarchy:      func(l *logger.Logger) any { return NewNoOpFolderHierarchy(l) },
	ecmcapabilities.CapPermissions:          func(l *logger.Logger) any { return NewNoOpPermissionManager(l) },
	ecmcapabilities.CapSecurity:             func(l *logger.Logger) any { return NewNoOpSecurityOperator(l) },
	ecmcapabilities.CapSearch:               func(l *logger.Logger) any { return NewNoOpSearchOperator(l) },
	ecmcapabilities.CapAuditTrail:           func(l *logger.Logger) any { return NewNoOpAuditTrail(l) },
	ecmcapabilities.CapEnvelopeManagement:   func(l *logger.Logger) any { return NewNoOpEnvelopeManager(l) },
	ecmcapabilities.CapSignatureValidation:  func(l *logger.Logger) any { return NewNoOpSignatureValidator(l) },
	ecmcapabilities.CapTextExtraction:       func(l *logger.Logger) any { return NewNoOpTextExtractor(l) },
	ecmcapabilities.CapClassification:       func(l *logger.Logger) any { return NewNoOpDocumentClassifier(l) },
	ecmcapabilities.CapStructuredExtraction: func(l *logger.Logger) any { return NewNoOpStructuredExtractor(l) },
	ecmcapabilities.CapValidation:           func(l *logger.Logger) any { return NewNoOpDocumentValidator(l) },
}

// Synthesize returns a stand-in implementing the contract interface of the
// given capability. Returns false for unknown capabilities.
func (s *Synthesizer) Synthesize(cap ecmcapabilities.Capability) (any, bool) {
	ctor, ok := constructors[cap]
	if !ok {
		return nil, false
	}
	return ctor(s.log), true
}
