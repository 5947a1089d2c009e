// ABOUTME: HTTP handlers for topology analysis and the composed plan call
// ABOUTME: Decodes topology YAML at the boundary; the extractor stays pure

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"clab-gcp-planner/models"
	"clab-gcp-planner/services"
	"clab-gcp-planner/topology"
)

// analyzeRequest is the JSON-wrapped form of an analyze request. Raw YAML
// bodies are accepted as well.
type analyzeRequest struct {
	Topology string `json:"topology"`
}

// planRequest asks for the composed analyze+optimize call.
type planRequest struct {
	Topology   string `json:"topology"`
	Region     string `json:"region,omitempty"`
	MaxVMs     int    `json:"max_vms,omitempty"`
	PreferSpot bool   `json:"prefer_spot,omitempty"`
}

// planResponse bundles extraction and optimization results.
type planResponse struct {
	Analysis       models.ExtractionResult `json:"resource_analysis"`
	DeploymentPlan models.DeploymentPlan   `json:"deployment_plan"`
}

// Analyze extracts per-node and aggregate resource requirements from a
// topology document. The body is either raw topology YAML or JSON
// {"topology": "..."} depending on Content-Type.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw, err := h.readTopologyBody(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := topology.Decode(raw)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := topology.Extract(doc)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Plan runs extraction and deployment optimization in one call. A failure
// in either step surfaces that step's error unchanged.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	region, err := h.resolveRegion(req.Region)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := topology.Decode([]byte(req.Topology))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	analysis, err := topology.Extract(doc)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	maxVMs := req.MaxVMs
	if maxVMs <= 0 {
		maxVMs = h.cfg.DefaultMaxVMs
	}

	optimizer := services.NewDeploymentOptimizer(region)
	plan, err := optimizer.Optimize(analysis.TotalCPUCores, analysis.TotalMemoryGB, maxVMs, req.PreferSpot)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, planResponse{
		Analysis:       analysis,
		DeploymentPlan: plan,
	})
}

// readTopologyBody returns the raw topology YAML from either body form.
func (h *Handler) readTopologyBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req analyzeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, err
		}
		return []byte(req.Topology), nil
	}

	return body, nil
}
