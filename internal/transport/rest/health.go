package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthTimeout = 3 * time.Second

// HealthCheck is a named dependency probe.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler serves the /live, /ready and /health probes.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any dependency is down and names the failing ones.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
		resp.Status = "down"
		resp.Components = make(map[string]CompStatus)
		for name, c := range components {
			if c.Status != "ok" {
				resp.Components[name] = CompStatus{Status: c.Status}
			}
		}
	}
	writeJSON(w, status, resp)
}

// Health reports every dependency with its latency plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())

	resp := HealthResponse{Status: "ok", Version: h.version, Components: components, Timestamp: time.Now()}
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
		resp.Status = "down"
	}
	writeJSON(w, status, resp)
}

// run executes all checks concurrently under one deadline.
func (h *HealthHandler) run(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		healthy    = true
		components = make(map[string]CompStatus, len(h.checks))
	)

	for _, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			err := c.Check(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}

			mu.Lock()
			components[c.Name] = st
			if err != nil {
				healthy = false
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	return components, healthy
}
