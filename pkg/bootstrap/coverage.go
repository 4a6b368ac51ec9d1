package bootstrap

import (
	"sort"
	"sync"
	"time"

	"github.com/fireflyframework/firefly-ecm/pkg/adapter"
	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

// CoverageStatus classifies how a capability is served.
type CoverageStatus int

const (
	// CoverageReal means a registered adapter serves the capability.
	CoverageReal CoverageStatus = iota
	// CoverageSynthesized means calls are served by a stand-in.
	CoverageSynthesized
)

func (s CoverageStatus) String() string {
	if s == CoverageReal {
		return "real"
	}
	return "synthesized"
}

// OverallCoverage summarizes the whole capability surface.
type OverallCoverage int

const (
	// CoverageFull means every capability has a real adapter.
	CoverageFull OverallCoverage = iota
	// CoverageDegraded means some capabilities fall back to stand-ins.
	CoverageDegraded
	// CoverageEmpty means no capability has a real adapter.
	CoverageEmpty
)

func (o OverallCoverage) String() string {
	switch o {
	case CoverageFull:
		return "full"
	case CoverageDegraded:
		return "degraded"
	default:
		return "empty"
	}
}

// CoverageCheck is the result for a single capability.
type CoverageCheck struct {
	Capability  ecmcapabilities.Capability
	Status      CoverageStatus
	AdapterName string
	LastChecked time.Time
}

// CoverageChecker records which capabilities are served by real adapters.
// Checks can be re-run at any time against the current selector state.
type CoverageChecker struct {
	mu     sync.RWMutex
	checks map[ecmcapabilities.Capability]*CoverageCheck
}

// NewCoverageChecker creates an empty coverage checker.
func NewCoverageChecker() *CoverageChecker {
	return &CoverageChecker{
		checks: make(map[ecmcapabilities.Capability]*CoverageCheck),
	}
}

// RunCheck probes one capability through the selector and records the result.
func (c *CoverageChecker) RunCheck(cap ecmcapabilities.Capability, sel *adapter.Selector, preferred ecmcapabilities.AdapterID) {
	check := &CoverageCheck{
		Capability:  cap,
		Status:      CoverageSynthesized,
		LastChecked: time.Now(),
	}
	if h, ok := sel.SelectWithFallback(preferred, cap); ok {
		check.Status = CoverageReal
		if p, ok := h.(ports.Port); ok {
			check.AdapterName = p.AdapterName()
		}
	}

	c.mu.Lock()
	c.checks[cap] = check
	c.mu.Unlock()
}

// RunAll probes every capability tag.
func (c *CoverageChecker) RunAll(sel *adapter.Selector, preferred map[ecmcapabilities.Capability]ecmcapabilities.AdapterID) {
	for _, cap := range ecmcapabilities.Capabilities() {
		c.RunCheck(cap, sel, preferred[cap])
	}
}

// GetOverallStatus aggregates the recorded checks.
func (c *CoverageChecker) GetOverallStatus() OverallCoverage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.checks) == 0 {
		return CoverageEmpty
	}
	real := 0
	for _, check := range c.checks {
		if check.Status == CoverageReal {
			real++
		}
	}
	switch {
	case real == len(c.checks):
		return CoverageFull
	case real == 0:
		return CoverageEmpty
	default:
		return CoverageDegraded
	}
}

// GetAllChecks returns a snapshot of every recorded check, ordered by
// capability tag.
func (c *CoverageChecker) GetAllChecks() []CoverageCheck {
	c.mu.RLock()
	defer c.mu.RUnlock()

	checks := make([]CoverageCheck, 0, len(c.checks))
	for _, check := range c.checks {
		checks = append(checks, *check)
	}
	sort.Slice(checks, func(i, j int) bool {
		return checks[i].Capability < checks[j].Capability
	})
	return checks
}

// Gaps returns the capabilities currently served by stand-ins, ordered.
func (c *CoverageChecker) Gaps() []ecmcapabilities.Capability {
	var gaps []ecmcapabilities.Capability
	for _, check := range c.GetAllChecks() {
		if check.Status == CoverageSynthesized {
			gaps = append(gaps, check.Capability)
		}
	}
	return gaps
}
