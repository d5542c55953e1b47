package usecase

import (
	"context"
	"log/slog"

	"todoapi/src/core/domain"
	"todoapi/src/core/ports"
)

// HealthService probes the storage layer and reports process health.
// It never returns an error: every failure path converts to a degraded
// status so orchestrator probes always get an answer.
type HealthService struct {
	repo        ports.TodoRepository
	environment string
	log         *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(repo ports.TodoRepository, environment string, log *slog.Logger) *HealthService {
	return &HealthService{
		repo:        repo,
		environment: environment,
		log:         log,
	}
}

// HealthStatus is the health endpoint response body.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Storage     string `json:"storage"`
	Database    string `json:"database"`
}

// Check issues a minimal round-trip query against the database. The pool
// connection is held only for that round trip. Returns the status document
// and whether the service is healthy.
func (s *HealthService) Check(ctx context.Context) (*HealthStatus, bool) {
	status := &HealthStatus{
		Status:      "healthy",
		Environment: s.environment,
		Version:     domain.Version,
		Storage:     "postgresql",
		Database:    "healthy",
	}

	if err := s.repo.Health(ctx); err != nil {
		s.log.Error("database health check failed", "error", err)
		status.Status = "degraded"
		status.Database = "unhealthy"
		return status, false
	}
	return status, true
}
