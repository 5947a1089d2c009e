// ABOUTME: Tests for CLI output rendering
// ABOUTME: Verifies human-readable and JSON output for each renderer

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"clab-gcp-planner/models"
)

func sampleAnalysis() models.ExtractionResult {
	return models.ExtractionResult{
		TopologyName: "lab",
		Nodes: []models.NodeResourceRequirement{
			{
				Name: "r1", Kind: "nokia_srlinux",
				CPUCores: 4, MemoryGB: 8,
				EstimatedCPUCores: 5, EstimatedMemoryGB: 10,
			},
			{
				Name: "s1", Kind: "linux",
				CPUCores: 1, MemoryGB: 2,
				EstimatedCPUCores: 2, EstimatedMemoryGB: 4,
			},
		},
		NodeCount:     2,
		TotalCPUCores: 7,
		TotalMemoryGB: 14,
	}
}

func samplePlan() models.DeploymentPlan {
	return models.DeploymentPlan{
		TotalCPUCores: 7,
		TotalMemoryGB: 14,
		VMConfigurations: []models.VMConfiguration{
			{MachineType: "n2-standard-8", Count: 1, CPUCores: 8, MemoryGB: 32},
		},
		TotalHourlyCost:   0.388,
		TotalMonthlyCost:  261.12,
		Region:            "us-east4",
		OptimizationNotes: []string{"Using standard machine types for better reliability"},
	}
}

func TestRenderAnalysis_Human(t *testing.T) {
	var buf bytes.Buffer
	if err := renderAnalysis(&buf, sampleAnalysis(), false); err != nil {
		t.Fatalf("renderAnalysis failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"lab", "r1", "nokia_srlinux", "s1", "7 vCPU, 14 GB"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderAnalysis_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderAnalysis(&buf, sampleAnalysis(), true); err != nil {
		t.Fatalf("renderAnalysis failed: %v", err)
	}

	var parsed models.ExtractionResult
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.TotalCPUCores != 7 {
		t.Errorf("Expected total CPU 7, got %d", parsed.TotalCPUCores)
	}
}

func TestRenderPlan_Human(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPlan(&buf, samplePlan(), false); err != nil {
		t.Fatalf("renderPlan failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"n2-standard-8", "us-east4", "$261.12", "standard machine types"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderPlan_ShowsSpotSavings(t *testing.T) {
	plan := samplePlan()
	savings := 78.34
	plan.SpotSavings = &savings

	var buf bytes.Buffer
	if err := renderPlan(&buf, plan, false); err != nil {
		t.Fatalf("renderPlan failed: %v", err)
	}

	if !strings.Contains(buf.String(), "$78.34/month") {
		t.Errorf("Output missing spot savings:\n%s", buf.String())
	}
}

func TestRenderPlan_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPlan(&buf, samplePlan(), true); err != nil {
		t.Fatalf("renderPlan failed: %v", err)
	}

	var parsed models.DeploymentPlan
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.TotalMonthlyCost != 261.12 {
		t.Errorf("Expected monthly cost 261.12, got %f", parsed.TotalMonthlyCost)
	}
}

func TestRenderComparison_Human(t *testing.T) {
	spot := samplePlan()
	spot.TotalMonthlyCost = 182.78
	comparison := models.Comparison{
		OnDemand:           samplePlan(),
		Spot:               spot,
		SpotSavings:        78.34,
		SpotSavingsPercent: 30.0,
		Region:             "us-east4",
	}

	var buf bytes.Buffer
	if err := renderComparison(&buf, comparison, false); err != nil {
		t.Fatalf("renderComparison failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"On-demand", "Spot", "$78.34/month", "30.0%"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}
