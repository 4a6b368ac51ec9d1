package adapter

import (
	"fmt"
	"sort"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

// Descriptor is immutable metadata about one registered provider.
// Descriptors are created once during the startup discovery pass; the catalog
// holds references to provider instances but does not own them.
type Descriptor struct {
	// TypeID is the stable adapter identifier, e.g. "s3" or "docusign".
	// Must be non-empty.
	TypeID ecmcapabilities.AdapterID `json:"typeId"`

	// Priority ranks providers of the same type or capability; higher wins.
	Priority int `json:"priority"`

	// Enabled marks whether the bootstrap layer should register the provider.
	Enabled bool `json:"enabled"`

	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Vendor      string `json:"vendor,omitempty"`

	// RequiredConfigKeys and OptionalConfigKeys are disjoint: a key must not
	// appear in both sets.
	RequiredConfigKeys []string `json:"requiredConfigKeys,omitempty"`
	OptionalConfigKeys []string `json:"optionalConfigKeys,omitempty"`

	// Capabilities lists the capability tags the provider declares.
	Capabilities []ecmcapabilities.Capability `json:"capabilities"`

	// MinimumProfile is the lowest service profile the provider targets.
	MinimumProfile ecmcapabilities.Profile `json:"minimumProfile"`
}

// Validate checks the descriptor invariants.
func (d Descriptor) Validate() error {
	if d.TypeID == "" {
		return fmt.Errorf("%w: empty type id", ErrInvalidDescriptor)
	}
	required := make(map[string]bool, len(d.RequiredConfigKeys))
	for _, k := range d.RequiredConfigKeys {
		required[k] = true
	}
	for _, k := range d.OptionalConfigKeys {
		if required[k] {
			return fmt.Errorf("%w: config key %q is both required and optional for %s",
				ErrInvalidDescriptor, k, d.TypeID)
		}
	}
	return nil
}

// Supports reports whether the descriptor declares the given capability.
func (d Descriptor) Supports(c ecmcapabilities.Capability) bool {
	for _, have := range d.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// MissingKeys returns the required configuration keys not present in
// configured, sorted lexically for stable reporting.
func (d Descriptor) MissingKeys(configured []string) []string {
	have := make(map[string]bool, len(configured))
	for _, k := range configured {
		have[k] = true
	}
	var missing []string
	for _, k := range d.RequiredConfigKeys {
		if !have[k] {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

// DescriptorFor builds a default descriptor from the static metadata for a
// well-known adapter ID. Returns false when the ID is unknown.
func DescriptorFor(id ecmcapabilities.AdapterID) (Descriptor, bool) {
	info, ok := ecmcapabilities.Get(id)
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{
		TypeID:             info.ID,
		Enabled:            true,
		Description:        info.Name,
		Vendor:             info.Vendor,
		RequiredConfigKeys: append([]string(nil), info.RequiredConfigKeys...),
		OptionalConfigKeys: append([]string(nil), info.OptionalConfigKeys...),
		Capabilities:       append([]ecmcapabilities.Capability(nil), info.Capabilities...),
		MinimumProfile:     info.MinimumProfile,
	}, true
}
