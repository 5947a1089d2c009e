// ABOUTME: HTTP handlers for deployment optimization, comparison, and
// ABOUTME: recommendation endpoints over aggregate resource demand

package handlers

import (
	"encoding/json"
	"net/http"

	"clab-gcp-planner/services"
)

type optimizeRequest struct {
	TotalCPUCores int    `json:"total_cpu_cores"`
	TotalMemoryGB int    `json:"total_memory_gb"`
	Region        string `json:"region,omitempty"`
	MaxVMs        int    `json:"max_vms,omitempty"`
	PreferSpot    bool   `json:"prefer_spot,omitempty"`
}

type compareRequest struct {
	TotalCPUCores int    `json:"total_cpu_cores"`
	TotalMemoryGB int    `json:"total_memory_gb"`
	Region        string `json:"region,omitempty"`
}

type recommendRequest struct {
	TotalCPUCores    int      `json:"total_cpu_cores"`
	TotalMemoryGB    int      `json:"total_memory_gb"`
	Region           string   `json:"region,omitempty"`
	BudgetConstraint *float64 `json:"budget_constraint,omitempty"`
	Priority         string   `json:"performance_priority,omitempty"`
}

// Optimize returns the lowest-cost deployment plan for an aggregate
// demand.
func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	region, err := h.resolveRegion(req.Region)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	maxVMs := req.MaxVMs
	if maxVMs <= 0 {
		maxVMs = h.cfg.DefaultMaxVMs
	}

	optimizer := services.NewDeploymentOptimizer(region)
	plan, err := optimizer.Optimize(req.TotalCPUCores, req.TotalMemoryGB, maxVMs, req.PreferSpot)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, plan)
}

// Compare reports on-demand vs spot plans for the same demand.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	region, err := h.resolveRegion(req.Region)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	recommender := services.NewRecommendationService(region)
	comparison, err := recommender.CompareOptions(r.Context(), req.TotalCPUCores, req.TotalMemoryGB)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, comparison)
}

// Recommend evaluates deployment presets and selects one by the
// requested priority policy, honoring an optional budget constraint.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	region, err := h.resolveRegion(req.Region)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = services.PriorityBalanced
	}

	recommender := services.NewRecommendationService(region)
	recommendation, err := recommender.Recommend(req.TotalCPUCores, req.TotalMemoryGB, req.BudgetConstraint, priority)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, recommendation)
}
