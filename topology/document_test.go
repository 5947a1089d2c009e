// ABOUTME: Tests for topology YAML decoding
// ABOUTME: Validates the flexible node config forms survive decoding

package topology

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTopology = `
name: srl-lab
topology:
  nodes:
    router1:
      kind: nokia_sros
      components:
        cpm-a:
          type: cpm
          count: 2
        lc:
          type: linecard
          count: 4
    server1:
      kind: linux
      resources: "cpu2,gb4"
  links:
    - endpoints: ["router1:e1-1", "server1:eth1"]
`

func TestDecode_FullDocument(t *testing.T) {
	doc, err := Decode([]byte(sampleTopology))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc.Name != "srl-lab" {
		t.Errorf("Expected name 'srl-lab', got %q", doc.Name)
	}
	if doc.Topology == nil || len(doc.Topology.Nodes) != 2 {
		t.Fatal("Expected 2 decoded nodes")
	}

	result, err := Extract(doc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// router1: 2 cpm + 4 linecards = 8/16 base, 9/18 estimated
	// server1: compact override 2/4, 3/6 estimated
	if result.TotalCPUCores != 12 || result.TotalMemoryGB != 24 {
		t.Errorf("Expected totals 12 / 24, got %d / %d", result.TotalCPUCores, result.TotalMemoryGB)
	}
}

func TestDecode_InvalidYAML(t *testing.T) {
	_, err := Decode([]byte("topology: [unclosed"))
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.clab.yml")
	if err := os.WriteFile(path, []byte(sampleTopology), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc.Name != "srl-lab" {
		t.Errorf("Expected name 'srl-lab', got %q", doc.Name)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
