// Package handler is the HTTP face of the verification service. It stays
// thin: decode, delegate, encode. Validation semantics live in the service
// and the parser.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"idcheck/internal/division"
	"idcheck/internal/verification"
)

// Service is the verification surface the handler depends on.
type Service interface {
	Verify(ctx context.Context, raw string) (verification.Result, error)
	VerifyBatch(ctx context.Context, raws []string) ([]verification.Result, error)
}

// Handler wires verification endpoints to the service.
type Handler struct {
	service  Service
	registry division.Registry
	logger   *slog.Logger
}

// New constructs a verification handler with its dependencies.
func New(service Service, registry division.Registry, logger *slog.Logger) *Handler {
	return &Handler{service: service, registry: registry, logger: logger}
}

// Register mounts the public verification endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/verify", h.HandleVerify)
	r.Post("/v1/verify/batch", h.HandleVerifyBatch)
	r.Get("/v1/divisions/{code}", h.HandleDivision)
}

// VerifyRequest is the body of POST /v1/verify.
type VerifyRequest struct {
	ID string `json:"id"`
}

// VerifyBatchRequest is the body of POST /v1/verify/batch.
type VerifyBatchRequest struct {
	IDs []string `json:"ids"`
}

// HandleVerify handles POST /v1/verify. A structurally invalid ID is a 200
// with valid=false: the verification itself succeeded.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body")
		return
	}

	result, err := h.service.Verify(ctx, req.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "verification failed",
			"request_id", middleware.GetReqID(ctx),
			"error", err,
		)
		writeError(w, http.StatusServiceUnavailable, "registry_unavailable")
		return
	}

	h.logger.InfoContext(ctx, "identity number verified",
		"request_id", middleware.GetReqID(ctx),
		"valid", result.Valid,
		"reason", result.Reason,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, result)
}

// HandleVerifyBatch handles POST /v1/verify/batch.
func (h *Handler) HandleVerifyBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req VerifyBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body")
		return
	}

	results, err := h.service.VerifyBatch(ctx, req.IDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch verification failed",
			"request_id", middleware.GetReqID(ctx),
			"batch_size", len(req.IDs),
			"error", err,
		)
		// Oversized batches are the caller's fault; registry trouble is not.
		if errors.Is(err, verification.ErrBatchTooLarge) {
			writeError(w, http.StatusBadRequest, "batch_too_large")
			return
		}
		writeError(w, http.StatusServiceUnavailable, "registry_unavailable")
		return
	}

	h.logger.InfoContext(ctx, "batch verified",
		"request_id", middleware.GetReqID(ctx),
		"batch_size", len(req.IDs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, map[string][]verification.Result{"results": results})
}

// HandleDivision handles GET /v1/divisions/{code}.
func (h *Handler) HandleDivision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	d, ok, err := h.registry.Lookup(ctx, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "division lookup failed",
			"request_id", middleware.GetReqID(ctx),
			"code", code,
			"error", err,
		)
		writeError(w, http.StatusServiceUnavailable, "registry_unavailable")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "division_not_found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
