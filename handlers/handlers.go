// ABOUTME: HTTP handlers for the capacity planner API
// ABOUTME: Holds shared handler state and JSON response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"clab-gcp-planner/cache"
	"clab-gcp-planner/config"
	"clab-gcp-planner/models"
	"clab-gcp-planner/pricing"
)

type Handler struct {
	cfg   *config.Config
	cache *cache.Cache
}

func NewHandler(cfg *config.Config, cache *cache.Cache) *Handler {
	return &Handler{
		cfg:   cfg,
		cache: cache,
	}
}

// Health reports service status and the configured pricing region.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"region":        h.cfg.Region,
		"machine_types": len(pricing.MachineTypes()),
	})
}

// resolveRegion defaults an empty requested region to the configured one
// and rejects regions without pricing data.
func (h *Handler) resolveRegion(requested string) (string, error) {
	region := requested
	if region == "" {
		region = h.cfg.Region
	}
	if !pricing.HasRegion(region) {
		return "", fmt.Errorf("no pricing data for region %q (available: %v)", region, pricing.Regions())
	}
	return region, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writePlanError maps structured plan errors to HTTP status codes.
// Anything else is a 500.
func (h *Handler) writePlanError(w http.ResponseWriter, err error) {
	var pe *models.PlanError
	if !errors.As(err, &pe) {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	code := http.StatusInternalServerError
	switch pe.Kind {
	case models.KindMalformedTopology:
		code = http.StatusBadRequest
	case models.KindUnknownMachineType:
		code = http.StatusNotFound
	case models.KindNoFeasibleConfiguration, models.KindNoOptionsWithinBudget:
		code = http.StatusUnprocessableEntity
	}

	h.writeJSON(w, code, models.ErrorResponse{
		Error: pe.Message,
		Kind:  string(pe.Kind),
		Code:  code,
	})
}
