// ABOUTME: Tests for the capacity planner HTTP API
// ABOUTME: Exercises request decoding, error mapping, and happy paths

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clab-gcp-planner/cache"
	"clab-gcp-planner/config"
	"clab-gcp-planner/models"
)

func newTestHandler() *Handler {
	cfg := &config.Config{
		Port:            "8080",
		Region:          "us-east4",
		DefaultMaxVMs:   10,
		PricingCacheTTL: 60,
	}
	return NewHandler(cfg, cache.New(time.Minute))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", resp["status"])
	}
}

func TestAnalyze_YAMLBody(t *testing.T) {
	h := newTestHandler()
	body := `
name: lab
topology:
  nodes:
    r1:
      kind: nokia_srlinux
    s1:
      kind: linux
`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result models.ExtractionResult
	decodeBody(t, rec, &result)

	// r1: 2/4 + overhead = 3/6; s1: 1/2 + overhead = 2/4
	if result.TotalCPUCores != 5 || result.TotalMemoryGB != 10 {
		t.Errorf("Expected totals 5 / 10, got %d / %d", result.TotalCPUCores, result.TotalMemoryGB)
	}
}

func TestAnalyze_JSONWrappedBody(t *testing.T) {
	h := newTestHandler()
	payload, _ := json.Marshal(map[string]string{
		"topology": "name: lab\ntopology:\n  nodes:\n    s1:\n      kind: linux\n",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyze_MissingNodesSection(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("name: broken\n"))
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Kind != string(models.KindMalformedTopology) {
		t.Errorf("Expected kind %q, got %q", models.KindMalformedTopology, resp.Kind)
	}
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.Analyze(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestOptimize_HappyPath(t *testing.T) {
	h := newTestHandler()
	body := `{"total_cpu_cores": 16, "total_memory_gb": 32}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Optimize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var plan models.DeploymentPlan
	decodeBody(t, rec, &plan)
	if len(plan.VMConfigurations) != 1 {
		t.Fatalf("Expected one VM configuration, got %d", len(plan.VMConfigurations))
	}
	if plan.Region != "us-east4" {
		t.Errorf("Expected default region us-east4, got %q", plan.Region)
	}
}

func TestOptimize_ZeroDemand(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize",
		strings.NewReader(`{"total_cpu_cores": 0, "total_memory_gb": 0}`))
	rec := httptest.NewRecorder()

	h.Optimize(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}
	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Kind != string(models.KindNoFeasibleConfiguration) {
		t.Errorf("Expected kind %q, got %q", models.KindNoFeasibleConfiguration, resp.Kind)
	}
}

func TestOptimize_UnknownRegion(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize",
		strings.NewReader(`{"total_cpu_cores": 4, "total_memory_gb": 8, "region": "mars-north1"}`))
	rec := httptest.NewRecorder()

	h.Optimize(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown region, got %d", rec.Code)
	}
}

func TestPricing_Listing(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.Pricing(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pricing", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var info models.PricingInfo
	decodeBody(t, rec, &info)
	if len(info.AvailableMachineTypes) != 10 {
		t.Errorf("Expected 10 machine types, got %d", len(info.AvailableMachineTypes))
	}
	if info.SpotDiscount != 0.70 {
		t.Errorf("Expected spot discount 0.70, got %f", info.SpotDiscount)
	}
}

func TestPricing_UnknownMachineType(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.Pricing(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pricing?machine_type=e2-medium", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
}

func TestPricing_CachedResponse(t *testing.T) {
	h := newTestHandler()

	first := httptest.NewRecorder()
	h.Pricing(first, httptest.NewRequest(http.MethodGet, "/api/v1/pricing?machine_type=n2-standard-4", nil))
	second := httptest.NewRecorder()
	h.Pricing(second, httptest.NewRequest(http.MethodGet, "/api/v1/pricing?machine_type=n2-standard-4", nil))

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Expected 200s, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("Expected identical cached response")
	}
}

func TestCompare_HappyPath(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare",
		strings.NewReader(`{"total_cpu_cores": 16, "total_memory_gb": 32}`))
	rec := httptest.NewRecorder()

	h.Compare(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var comparison models.Comparison
	decodeBody(t, rec, &comparison)
	if comparison.SpotSavings <= 0 {
		t.Errorf("Expected positive savings, got %f", comparison.SpotSavings)
	}
}

func TestRecommend_BudgetTooLow(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend",
		strings.NewReader(`{"total_cpu_cores": 16, "total_memory_gb": 32, "budget_constraint": 1.0}`))
	rec := httptest.NewRecorder()

	h.Recommend(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}
	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Kind != string(models.KindNoOptionsWithinBudget) {
		t.Errorf("Expected kind %q, got %q", models.KindNoOptionsWithinBudget, resp.Kind)
	}
}

func TestPlan_Composed(t *testing.T) {
	h := newTestHandler()
	payload, _ := json.Marshal(map[string]any{
		"topology":    "name: lab\ntopology:\n  nodes:\n    r1:\n      kind: nokia_sros\n",
		"prefer_spot": true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp planResponse
	decodeBody(t, rec, &resp)

	// nokia_sros default 4/8 + overhead = 5/10
	if resp.Analysis.TotalCPUCores != 5 || resp.Analysis.TotalMemoryGB != 10 {
		t.Errorf("Expected analysis 5 / 10, got %d / %d",
			resp.Analysis.TotalCPUCores, resp.Analysis.TotalMemoryGB)
	}
	if resp.DeploymentPlan.TotalMonthlyCost <= 0 {
		t.Error("Expected a priced deployment plan")
	}
}

func TestPlan_MalformedTopologyAborts(t *testing.T) {
	// Extraction failure must surface its own error kind; no partial
	// plan is returned.
	h := newTestHandler()
	payload, _ := json.Marshal(map[string]any{"topology": "name: broken\n"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Kind != string(models.KindMalformedTopology) {
		t.Errorf("Expected kind %q, got %q", models.KindMalformedTopology, resp.Kind)
	}
}

func TestRoutes_AllRegistered(t *testing.T) {
	h := newTestHandler()
	routes := h.Routes()

	want := []string{
		"/api/v1/health",
		"/api/v1/analyze",
		"/api/v1/optimize",
		"/api/v1/compare",
		"/api/v1/recommend",
		"/api/v1/plan",
		"/api/v1/pricing",
	}
	if len(routes) != len(want) {
		t.Fatalf("Expected %d routes, got %d", len(want), len(routes))
	}
	paths := make(map[string]bool)
	for _, route := range routes {
		paths[route.Path] = true
	}
	for _, path := range want {
		if !paths[path] {
			t.Errorf("Missing route %s", path)
		}
	}
}
