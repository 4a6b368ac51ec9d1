// Package bootstrap assembles the adapter subsystem from a YAML configuration
// and an explicit registration list. All adapter construction happens here,
// inside the startup window; after Run returns, the catalog is read-only.
package bootstrap

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fireflyframework/firefly-ecm/pkg/adapter"
	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/portprovider"
)

// Registration binds an adapter type to its constructor. Host applications
// pass the list of adapter bundles they link in; only types that appear both
// here and in the configuration get constructed.
type Registration struct {
	Descriptor adapter.Descriptor
	// New builds the adapter instance from its configured settings. A nil
	// error with a nil instance is treated as a constructor bug.
	New func(settings map[string]string, log *logger.Logger) (any, error)
}

// Result is the assembled subsystem.
type Result struct {
	RunID    string
	Catalog  *adapter.Catalog
	Selector *adapter.Selector
	Provider *portprovider.Provider
	Coverage *CoverageChecker
	// Warnings lists configuration problems that did not stop startup:
	// unknown types, disabled entries, missing required keys.
	Warnings []string
}

// Run constructs, registers and validates every configured adapter, then
// takes a capability-coverage snapshot. Construction failures for individual
// adapters degrade the run instead of aborting it; only unusable
// configuration aborts.
func Run(cfg *Config, registrations []Registration, log *logger.Logger) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap requires a configuration")
	}

	runID := uuid.New().String()
	log.SetTraceID(runID)
	if cfg.Logging.Level != "" {
		log.SetLevel(cfg.Logging.Level)
	}

	byType := make(map[ecmcapabilities.AdapterID]Registration, len(registrations))
	for _, reg := range registrations {
		if err := reg.Descriptor.Validate(); err != nil {
			return nil, fmt.Errorf("registration for %q: %w", reg.Descriptor.TypeID, err)
		}
		if reg.New == nil {
			return nil, fmt.Errorf("registration for %q has no constructor", reg.Descriptor.TypeID)
		}
		if _, dup := byType[reg.Descriptor.TypeID]; dup {
			return nil, fmt.Errorf("duplicate registration for %q", reg.Descriptor.TypeID)
		}
		byType[reg.Descriptor.TypeID] = reg
	}

	catalog := adapter.NewCatalog()
	selector := adapter.NewSelector(catalog, log)
	result := &Result{
		RunID:    runID,
		Catalog:  catalog,
		Selector: selector,
		Coverage: NewCoverageChecker(),
	}

	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		result.Warnings = append(result.Warnings, msg)
		log.Warn("%s", msg)
	}

	for _, entry := range cfg.Adapters {
		typeID := canonicalType(entry.Type)
		if !entry.IsEnabled() {
			log.Info("adapter %s is disabled, skipping", typeID)
			continue
		}
		reg, ok := byType[typeID]
		if !ok {
			warn("adapter %s is configured but no bundle is registered for it", typeID)
			continue
		}

		desc := reg.Descriptor
		desc.Enabled = true
		if entry.Priority != 0 {
			desc.Priority = entry.Priority
		}
		if missing := desc.MissingKeys(entry.SettingKeys()); len(missing) > 0 {
			warn("adapter %s is missing required configuration keys %v", typeID, missing)
			continue
		}

		instance, err := reg.New(entry.Settings, log)
		if err != nil {
			warn("adapter %s failed to construct: %v", typeID, err)
			continue
		}
		if instance == nil {
			return nil, fmt.Errorf("constructor for %q returned no instance", typeID)
		}

		catalog.Register(instance, desc)
		log.WithFields(map[string]string{
			"type":     string(typeID),
			"priority": fmt.Sprintf("%d", desc.Priority),
		}).Info("adapter registered")
	}

	preferred := cfg.PreferredTypes()
	for cap, typeID := range preferred {
		if !catalog.HasType(typeID) {
			warn("preferred adapter %s for capability %s is not registered", typeID, cap)
		}
	}

	result.Provider = portprovider.New(selector, log, preferred)
	result.Coverage.RunAll(selector, preferred)

	status := result.Coverage.GetOverallStatus()
	log.WithFields(map[string]string{
		"run_id":   runID,
		"coverage": status.String(),
		"adapters": fmt.Sprintf("%d", len(catalog.RegisteredTypes())),
	}).Info("adapter subsystem ready")
	for _, gap := range result.Coverage.Gaps() {
		log.WithFields(map[string]string{
			"capability": string(gap),
		}).Warn("capability has no real adapter, calls will be served by a stand-in")
	}

	return result, nil
}

// canonicalType resolves aliases against the known-adapter registry; custom
// types pass through unchanged.
func canonicalType(name string) ecmcapabilities.AdapterID {
	if id, ok := ecmcapabilities.ParseID(name); ok {
		return id
	}
	return ecmcapabilities.AdapterID(name)
}
