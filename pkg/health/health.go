// Package health exposes a readiness report for the optional diagnostics
// listener. Collaborator probes (the embedding cache, the OpenAI key) are
// registered by name and run in parallel on each request.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status is the state of one probe or of the process overall.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Probe checks a single collaborator. A non-nil error marks it down.
type Probe func(ctx context.Context) error

// ProbeResult is the outcome of one probe run.
type ProbeResult struct {
	Status  Status `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// Report aggregates all probe results. Overall status is down if any
// probe is down.
type Report struct {
	Status    Status                 `json:"status"`
	Probes    map[string]ProbeResult `json:"probes"`
	Timestamp string                 `json:"timestamp"`
}

// Checker holds the registered probes.
type Checker struct {
	mu     sync.RWMutex
	probes map[string]Probe
}

// NewChecker creates a Checker with no probes. A probe-less checker
// always reports up.
func NewChecker() *Checker {
	return &Checker{probes: make(map[string]Probe)}
}

// Register adds a named probe, replacing any previous one with that name.
func (c *Checker) Register(name string, p Probe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes[name] = p
}

// Run executes all probes in parallel and aggregates the results.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	probes := make(map[string]Probe, len(c.probes))
	for name, p := range c.probes {
		probes[name] = p
	}
	c.mu.RUnlock()

	report := Report{
		Status:    StatusUp,
		Probes:    make(map[string]ProbeResult, len(probes)),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for name, p := range probes {
		wg.Add(1)
		go func(name string, p Probe) {
			defer wg.Done()
			start := time.Now()
			err := p(ctx)
			result := ProbeResult{
				Status:  StatusUp,
				Latency: time.Since(start).Round(time.Millisecond).String(),
			}
			if err != nil {
				result.Status = StatusDown
				result.Error = err.Error()
			}
			mu.Lock()
			report.Probes[name] = result
			mu.Unlock()
		}(name, p)
	}
	wg.Wait()

	for _, r := range report.Probes {
		if r.Status == StatusDown {
			report.Status = StatusDown
			break
		}
	}
	return report
}

// Handler serves the readiness report as JSON, 503 when any probe is down.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		report := c.Run(ctx)
		w.Header().Set("Content-Type", "application/json")
		if report.Status != StatusUp {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(report)
	}
}
