package adapter

import (
	"fmt"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

// Selector layers selection policy and configuration validation over a
// catalog. A selector is stateless apart from its catalog and logger
// references and is safe for concurrent use.
type Selector struct {
	catalog *Catalog
	log     *logger.Logger
}

// NewSelector creates a selector over the given catalog.
func NewSelector(catalog *Catalog, log *logger.Logger) *Selector {
	return &Selector{
		catalog: catalog,
		log:     log,
	}
}

// decision is the internal result of the layered selection policy.
type decision struct {
	reg      *registration
	fallback bool   // a preference was given but the capability pool served instead
	reason   string // why the preferred type was not used
}

// resolveWithFallback applies the permissive selection policy without logging:
// the preferred type is used only when it is present and supports the
// capability; otherwise selection falls back to the capability pool.
func (s *Selector) resolveWithFallback(preferred ecmcapabilities.AdapterID, cap ecmcapabilities.Capability) (decision, bool) {
	var d decision
	if preferred != "" {
		if reg, ok := s.catalog.bestByType(preferred); ok {
			if reg.descriptor.Supports(cap) && ports.Implements(reg.instance, cap) {
				d.reg = reg
				return d, true
			}
			d.fallback = true
			d.reason = fmt.Sprintf("type %q does not support capability %q", preferred, cap)
		} else {
			d.fallback = true
			d.reason = fmt.Sprintf("type %q is not registered", preferred)
		}
	}
	if reg, ok := s.catalog.bestByCapability(cap); ok {
		d.reg = reg
		return d, true
	}
	return d, false
}

// SelectWithFallback returns the best handle for a capability, preferring the
// given type when it is compatible. An empty preferred type means no
// preference. The returned handle always implements the capability's contract
// interface. Absence is ok=false, never an error.
func (s *Selector) SelectWithFallback(preferred ecmcapabilities.AdapterID, cap ecmcapabilities.Capability) (any, bool) {
	d, ok := s.resolveWithFallback(preferred, cap)
	fields := map[string]string{"capability": string(cap)}
	if preferred != "" {
		fields["preferred"] = string(preferred)
	}
	if !ok {
		s.log.WithFields(fields).Warn("no adapter available for capability")
		return nil, false
	}
	fields["type"] = string(d.reg.descriptor.TypeID)
	if d.fallback {
		fields["fallback_reason"] = d.reason
		s.log.WithFields(fields).Info("preferred adapter unavailable, selected by capability")
	} else {
		s.log.WithFields(fields).Debug("adapter selected")
	}
	return d.reg.instance, true
}

// SelectStrict only considers the exact type: it returns ok=false when the
// type is absent or does not support the capability, with no fallback to
// other types.
func (s *Selector) SelectStrict(typeID ecmcapabilities.AdapterID, cap ecmcapabilities.Capability) (any, bool) {
	fields := map[string]string{"type": string(typeID), "capability": string(cap)}
	reg, ok := s.catalog.bestByType(typeID)
	if !ok {
		s.log.WithFields(fields).Warn("strict selection failed: type not registered")
		return nil, false
	}
	if !reg.descriptor.Supports(cap) || !ports.Implements(reg.instance, cap) {
		s.log.WithFields(fields).Warn("strict selection failed: type does not support capability")
		return nil, false
	}
	s.log.WithFields(fields).Debug("adapter selected")
	return reg.instance, true
}

// SelectByCapabilityOnly ignores type entirely and returns the
// highest-priority provider for the capability.
func (s *Selector) SelectByCapabilityOnly(cap ecmcapabilities.Capability) (any, bool) {
	return s.SelectWithFallback("", cap)
}

// IsAvailable reports whether SelectWithFallback would find a handle, without
// exposing the instance.
func (s *Selector) IsAvailable(preferred ecmcapabilities.AdapterID, cap ecmcapabilities.Capability) bool {
	_, ok := s.resolveWithFallback(preferred, cap)
	return ok
}

// ValidationOutcome reports whether a registered type's required configuration
// keys are satisfied. Missing configuration is reported, never thrown: the
// bootstrap layer decides whether to fail startup or continue degraded.
type ValidationOutcome struct {
	Valid       bool
	MissingKeys []string
	Descriptor  *Descriptor
	Err         error
}

// ValidateConfiguration checks the configured keys against the best
// descriptor registered for the type. An unknown type yields Valid=false with
// an explicit Err; otherwise MissingKeys is the set difference
// required \ configured and Valid is true iff it is empty.
func (s *Selector) ValidateConfiguration(typeID ecmcapabilities.AdapterID, configuredKeys []string) ValidationOutcome {
	desc, ok := s.catalog.BestByType(typeID)
	if !ok {
		return ValidationOutcome{
			Valid: false,
			Err:   fmt.Errorf("%w: %s", ErrAdapterNotFound, typeID),
		}
	}
	missing := desc.MissingKeys(configuredKeys)
	if len(missing) > 0 {
		s.log.WithFields(map[string]string{
			"type":    string(typeID),
			"missing": fmt.Sprintf("%v", missing),
		}).Warn("adapter configuration is missing required keys")
	}
	return ValidationOutcome{
		Valid:       len(missing) == 0,
		MissingKeys: missing,
		Descriptor:  &desc,
	}
}

// Select is a typed convenience wrapper over Selector.SelectWithFallback.
// It returns ok=false when no compatible provider exists or the handle does
// not satisfy T.
func Select[T any](s *Selector, preferred ecmcapabilities.AdapterID, cap ecmcapabilities.Capability) (T, bool) {
	var zero T
	h, ok := s.SelectWithFallback(preferred, cap)
	if !ok {
		return zero, false
	}
	typed, ok := h.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
