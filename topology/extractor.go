// ABOUTME: Resource requirement extraction from ContainerLab topology nodes
// ABOUTME: Precedence: explicit override > chassis components > kind defaults

package topology

import (
	"sort"
	"strconv"
	"strings"

	"clab-gcp-planner/models"
)

// Fixed containerization overhead added on top of every node's base
// requirement.
const (
	OverheadCPUCores = 1
	OverheadMemoryGB = 2
)

// Minimum reported resources for a multi-component chassis, regardless of
// what its components sum to.
const (
	chassisMinCPUCores = 2
	chassisMinMemoryGB = 4
)

type unitCost struct {
	cpu    int
	memory int
}

// kindDefaults maps device kinds (and type sub-variants) to base resource
// requirements when a node declares nothing explicit.
var kindDefaults = map[string]map[string]unitCost{
	"nokia_srlinux": {
		"default": {cpu: 2, memory: 4},
		"ixrd3":   {cpu: 4, memory: 8},
	},
	"nokia_sros": {
		"default":  {cpu: 4, memory: 8},
		"cpm":      {cpu: 2, memory: 4},
		"linecard": {cpu: 1, memory: 2},
	},
	"linux":       {"default": {cpu: 1, memory: 2}},
	"cisco_iosxe": {"default": {cpu: 2, memory: 4}},
	"cisco_iosxr": {"default": {cpu: 2, memory: 4}},
	"juniper_vmx": {"default": {cpu: 2, memory: 4}},
	"arista_ceos": {"default": {cpu: 2, memory: 4}},
	"sonic":       {"default": {cpu: 2, memory: 4}},
	"frr":         {"default": {cpu: 1, memory: 2}},
	"quagga":      {"default": {cpu: 1, memory: 2}},
}

// globalDefault applies when the kind is unrecognized.
var globalDefault = unitCost{cpu: 2, memory: 4}

// componentUnitCosts maps SROS chassis component types to per-unit
// resource costs.
var componentUnitCosts = map[string]unitCost{
	"cpm":      {cpu: 2, memory: 4},
	"cpm2":     {cpu: 2, memory: 4},
	"cpm3":     {cpu: 2, memory: 4},
	"cpm4":     {cpu: 2, memory: 4},
	"linecard": {cpu: 1, memory: 2},
	"mda":      {cpu: 1, memory: 2},
	"iom":      {cpu: 1, memory: 2},
	"sfm":      {cpu: 1, memory: 2},
}

// knownComponentNames is the fixed scan order for direct top-level
// component keys in a node config.
var knownComponentNames = []string{"cpm", "cpm2", "cpm3", "cpm4", "linecard", "mda", "iom", "sfm"}

// resourceKeys are the accepted spellings for an explicit resource
// override in a node config.
var resourceKeys = []string{"resources", "resource", "cpu", "memory", "ram"}

// componentKeys are the accepted spellings for a chassis component block.
var componentKeys = []string{"sros", "components", "lifecycle", "modules"}

// Extract derives per-node resource requirements and the aggregate demand
// from a decoded topology document. It fails with a malformed_topology
// error when the document has no nodes section.
func Extract(doc Document) (models.ExtractionResult, error) {
	if doc.Topology == nil || doc.Topology.Nodes == nil {
		return models.ExtractionResult{}, models.NewPlanError(
			models.KindMalformedTopology, "invalid topology: missing 'nodes' section")
	}

	// Sort node names for deterministic output ordering.
	names := make([]string, 0, len(doc.Topology.Nodes))
	for name := range doc.Topology.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	result := models.ExtractionResult{
		TopologyName: doc.Name,
		Nodes:        make([]models.NodeResourceRequirement, 0, len(names)),
	}
	if result.TopologyName == "" {
		result.TopologyName = "unnamed"
	}

	for _, name := range names {
		req := extractNode(name, doc.Topology.Nodes[name])
		result.Nodes = append(result.Nodes, req)
		result.TotalCPUCores += req.EstimatedCPUCores
		result.TotalMemoryGB += req.EstimatedMemoryGB
	}
	result.NodeCount = len(result.Nodes)

	return result, nil
}

// extractNode derives the requirement for a single node following the
// override > components > defaults precedence.
func extractNode(name string, config NodeConfig) models.NodeResourceRequirement {
	kind := stringValue(config["kind"])
	if kind == "" {
		kind = "linux"
	}
	nodeType := stringValue(config["type"])
	if nodeType == "" {
		nodeType = "default"
	}

	custom := extractCustomResources(config)
	components := extractComponents(config)

	var base unitCost
	switch {
	case custom != nil:
		base = unitCost{cpu: custom.CPUCores, memory: custom.MemoryGB}
	case len(components) > 0:
		base = sumComponents(components)
	default:
		base = standardResources(kind, nodeType)
	}

	return models.NodeResourceRequirement{
		Name:              name,
		Kind:              kind,
		CPUCores:          base.cpu,
		MemoryGB:          base.memory,
		EstimatedCPUCores: base.cpu + OverheadCPUCores,
		EstimatedMemoryGB: base.memory + OverheadMemoryGB,
		Components:        components,
		CustomResources:   custom,
	}
}

// extractCustomResources returns an explicit resource override, or nil if
// the node config does not carry one with both CPU and memory > 0.
func extractCustomResources(config NodeConfig) *models.ResourceSpec {
	for _, key := range resourceKeys {
		raw, ok := config[key]
		if !ok {
			continue
		}

		switch value := raw.(type) {
		case map[string]any:
			cpu := intValue(value["cpu"])
			if cpu == 0 {
				cpu = intValue(value["cores"])
			}
			memory := intValue(value["memory"])
			if memory == 0 {
				memory = intValue(value["ram"])
			}
			if cpu > 0 && memory > 0 {
				return &models.ResourceSpec{CPUCores: cpu, MemoryGB: memory}
			}
		case string:
			if spec := parseCompactResources(value); spec != nil {
				return spec
			}
		}
	}
	return nil
}

// parseCompactResources parses the compact string form, e.g. "cpu2,gb4".
func parseCompactResources(value string) *models.ResourceSpec {
	var cpu, memory int

	normalized := strings.ReplaceAll(strings.ToLower(value), " ", "")
	for _, part := range strings.Split(normalized, ",") {
		switch {
		case strings.Contains(part, "cpu"):
			n, err := strconv.Atoi(strings.ReplaceAll(part, "cpu", ""))
			if err != nil {
				return nil
			}
			cpu = n
		case strings.Contains(part, "gb") || strings.Contains(part, "memory"):
			trimmed := strings.ReplaceAll(part, "gb", "")
			trimmed = strings.ReplaceAll(trimmed, "memory", "")
			n, err := strconv.Atoi(trimmed)
			if err != nil {
				return nil
			}
			memory = n
		}
	}

	if cpu > 0 && memory > 0 {
		return &models.ResourceSpec{CPUCores: cpu, MemoryGB: memory}
	}
	return nil
}

// extractComponents collects chassis components declared as a nested
// mapping, a list, or direct top-level keys matching known component
// names.
func extractComponents(config NodeConfig) []models.Component {
	var components []models.Component

	for _, key := range componentKeys {
		raw, ok := config[key]
		if !ok {
			continue
		}

		switch block := raw.(type) {
		case map[string]any:
			// Sort for deterministic component ordering.
			names := make([]string, 0, len(block))
			for name := range block {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				entry, ok := block[name].(map[string]any)
				if !ok {
					continue
				}
				comp := models.Component{Name: name, Type: name, Count: 1}
				if t := stringValue(entry["type"]); t != "" {
					comp.Type = t
				}
				if c := intValue(entry["count"]); c > 0 {
					comp.Count = c
				}
				components = append(components, comp)
			}
		case []any:
			for _, item := range block {
				switch entry := item.(type) {
				case map[string]any:
					comp := models.Component{
						Name:  stringValue(entry["name"]),
						Count: 1,
					}
					comp.Type = stringValue(entry["type"])
					if comp.Type == "" {
						comp.Type = comp.Name
					}
					if c := intValue(entry["count"]); c > 0 {
						comp.Count = c
					}
					components = append(components, comp)
				case string:
					components = append(components, models.Component{Name: entry, Type: entry, Count: 1})
				}
			}
		}
	}

	// Direct top-level component keys, e.g. "linecard: 4".
	for _, name := range knownComponentNames {
		raw, ok := config[name]
		if !ok {
			continue
		}
		count := intValue(raw)
		if count <= 0 {
			count = 1
		}
		components = append(components, models.Component{Name: name, Type: name, Count: count})
	}

	return components
}

// sumComponents totals per-unit costs across components. Unknown component
// types contribute zero. The total is clamped to the chassis minimum so a
// degenerate chassis never reports below it.
func sumComponents(components []models.Component) unitCost {
	var total unitCost

	for _, comp := range components {
		cost, ok := componentUnitCosts[comp.Type]
		if !ok {
			continue
		}
		total.cpu += cost.cpu * comp.Count
		total.memory += cost.memory * comp.Count
	}

	if total.cpu < chassisMinCPUCores {
		total.cpu = chassisMinCPUCores
	}
	if total.memory < chassisMinMemoryGB {
		total.memory = chassisMinMemoryGB
	}

	return total
}

// standardResources looks up the kind/type default requirement, falling
// back to the kind-level default and then the global default.
func standardResources(kind, nodeType string) unitCost {
	variants, ok := kindDefaults[kind]
	if !ok {
		return globalDefault
	}
	if cost, ok := variants[nodeType]; ok {
		return cost
	}
	if cost, ok := variants["default"]; ok {
		return cost
	}
	return globalDefault
}

// stringValue returns raw as a string, or "".
func stringValue(raw any) string {
	s, _ := raw.(string)
	return s
}

// intValue converts a decoded YAML scalar to an int, returning 0 for
// anything non-numeric.
func intValue(raw any) int {
	switch n := raw.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
