// ABOUTME: ContainerLab topology document decoding from YAML
// ABOUTME: Node configs stay schemaless to support the flexible clab syntax

package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeConfig is a raw node configuration mapping. Node configs are kept
// schemaless because clab accepts several spellings for resources and
// chassis components; the extractor interprets them.
type NodeConfig = map[string]any

// Topology is the nodes/links section of a clab document. Links carry no
// resource information and are ignored by extraction.
type Topology struct {
	Nodes map[string]NodeConfig `yaml:"nodes"`
}

// Document is a decoded ContainerLab topology file.
type Document struct {
	Name     string    `yaml:"name"`
	Topology *Topology `yaml:"topology"`
}

// Decode parses raw topology YAML into a Document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse topology: %w", err)
	}
	return doc, nil
}

// LoadFile reads and decodes a topology file from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read topology file %s: %w", path, err)
	}
	return Decode(data)
}
