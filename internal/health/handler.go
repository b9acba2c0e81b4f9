// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

const checkTimeout = 5 * time.Second

// Checker is anything that can report whether a dependency is reachable.
type Checker interface {
	Ping(ctx context.Context) error
}

type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Handler struct {
	checkers map[string]Checker
	version  string
}

func NewHandler(version string) *Handler {
	return &Handler{
		checkers: make(map[string]Checker),
		version:  version,
	}
}

func (h *Handler) AddChecker(name string, checker Checker) {
	h.checkers[name] = checker
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Liveness)
	r.Get("/health/ready", h.Readiness)
}

// Liveness reports that the process is up. It never touches dependencies,
// so a sick database cannot get the pod restarted.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	core.OK(w, LivenessResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Readiness checks every registered dependency in parallel and returns 503
// if any of them fails.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	results := make(map[string]CheckResult, len(h.checkers))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()

			start := time.Now()
			err := checker.Ping(ctx)
			elapsed := time.Since(start)

			result := CheckResult{
				Healthy: err == nil,
				Latency: elapsed.String(),
			}
			if err != nil {
				result.Error = err.Error()
			}

			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	healthy := true
	for _, result := range results {
		if !result.Healthy {
			healthy = false
			break
		}
	}

	response := ReadinessResponse{
		Status: "ready",
		Checks: results,
	}
	if !healthy {
		response.Status = "degraded"
		core.JSON(w, http.StatusServiceUnavailable, response)
		return
	}

	core.OK(w, response)
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}
