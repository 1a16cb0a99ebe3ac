package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"idcheck/internal/division"
)

// Invalidator is implemented by caching registries that can evict entries
// after a reload, so stale names do not outlive a revision update.
type Invalidator interface {
	Invalidate(ctx context.Context, codes ...string) error
}

// AdminHandler serves registry maintenance endpoints. Callers must mount the
// JWT middleware in front of it.
type AdminHandler struct {
	seeder      division.Seeder
	invalidator Invalidator // optional
	logger      *slog.Logger
}

func NewAdmin(seeder division.Seeder, invalidator Invalidator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{seeder: seeder, invalidator: invalidator, logger: logger}
}

// Register mounts admin endpoints.
func (h *AdminHandler) Register(r chi.Router) {
	r.Post("/admin/divisions", h.HandleSeedDivisions)
}

// HandleSeedDivisions handles POST /admin/divisions: bulk-load division
// records, typically a new GB/T 2260 revision.
func (h *AdminHandler) HandleSeedDivisions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var divisions []division.Division
	if err := json.NewDecoder(r.Body).Decode(&divisions); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body")
		return
	}
	// Codes must be 6 ASCII digits: the parser's checksum step depends on
	// every registered code being numeric.
	for _, d := range divisions {
		if len(d.Code) != 6 || d.Name == "" || !allDigits(d.Code) {
			writeError(w, http.StatusBadRequest, "invalid_division_record")
			return
		}
	}

	if err := h.seeder.Seed(ctx, divisions); err != nil {
		h.logger.ErrorContext(ctx, "division seed failed",
			"request_id", middleware.GetReqID(ctx),
			"count", len(divisions),
			"error", err,
		)
		writeError(w, http.StatusServiceUnavailable, "registry_unavailable")
		return
	}

	if h.invalidator != nil {
		codes := make([]string, len(divisions))
		for i, d := range divisions {
			codes[i] = d.Code
		}
		if err := h.invalidator.Invalidate(ctx, codes...); err != nil {
			h.logger.WarnContext(ctx, "cache invalidation failed",
				"request_id", middleware.GetReqID(ctx),
				"error", err,
			)
		}
	}

	h.logger.InfoContext(ctx, "divisions seeded",
		"request_id", middleware.GetReqID(ctx),
		"count", len(divisions),
	)
	writeJSON(w, http.StatusOK, map[string]int{"seeded": len(divisions)})
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
