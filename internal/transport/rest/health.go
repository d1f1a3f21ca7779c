package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type healthChecker interface {
	Health(ctx context.Context) error
}

// probe is one dependency check. A failing critical probe takes the service
// down; a failing optional one only degrades it.
type probe struct {
	name     string
	critical bool
	check    func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	probes  []probe
	version string
}

func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{
		probes:  []probe{{name: "database", critical: true, check: db.Ping}},
		version: version,
	}
}

// WithRedis adds the shared rate limiter store to /health. Redis being down
// degrades the service (limits fall open) but does not fail readiness.
func (h *HealthHandler) WithRedis(c healthChecker) *HealthHandler {
	h.probes = append(h.probes, probe{name: "redis", check: c.Health})
	return h
}

// HealthResponse is the JSON body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 when a critical dependency is unreachable. Optional ones
// are not consulted.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, p := range h.probes {
		if !p.critical {
			continue
		}
		if err := p.check(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health runs every probe concurrently and reports per-component status with
// latency. Only "down" answers 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.probes))
		overall    = statusOK
	)

	var g errgroup.Group
	for _, p := range h.probes {
		p := p
		g.Go(func() error {
			start := time.Now()
			err := p.check(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[p.name] = CompStatus{Status: statusDown}
				overall = worse(overall, p.critical)
				return nil
			}
			components[p.name] = CompStatus{Status: statusOK, Latency: latency.String()}
			return nil
		})
	}
	_ = g.Wait()

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func worse(current string, critical bool) string {
	if critical {
		return statusDown
	}
	if current == statusOK {
		return statusDegraded
	}
	return current
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
