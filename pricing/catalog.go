// ABOUTME: Static GCP N2 machine-type catalog and custom machine pricing
// ABOUTME: Read-only pricing tables; spot pricing applies a flat discount

package pricing

import (
	"sort"

	"clab-gcp-planner/models"
)

const (
	// SpotDiscount is the flat multiplier applied to spot instance prices
	// (roughly 30% off on-demand).
	SpotDiscount = 0.70

	// Custom machine type linear pricing rates (us-east4, N2).
	customCPUHourlyRate    = 0.0485 // per vCPU per hour
	customMemoryHourlyRate = 0.0065 // per GB per hour

	// hoursPerMonth uses the average month length of 30.44 days.
	hoursPerMonth = 24 * 30.44
)

// DefaultRegion is the only region with embedded pricing data.
const DefaultRegion = "us-east4"

// n2Catalog holds N2 machine type pricing for us-east4 (as of 2024).
// Initialized once at startup; never mutated.
var n2Catalog = map[string]models.MachineTypeSpec{
	"n2-standard-2":   {MachineType: "n2-standard-2", CPUCores: 2, MemoryGB: 8, HourlyCost: 0.097, MonthlyCost: 65.28},
	"n2-standard-4":   {MachineType: "n2-standard-4", CPUCores: 4, MemoryGB: 16, HourlyCost: 0.194, MonthlyCost: 130.56},
	"n2-standard-8":   {MachineType: "n2-standard-8", CPUCores: 8, MemoryGB: 32, HourlyCost: 0.388, MonthlyCost: 261.12},
	"n2-standard-16":  {MachineType: "n2-standard-16", CPUCores: 16, MemoryGB: 64, HourlyCost: 0.774, MonthlyCost: 520.92},
	"n2-standard-32":  {MachineType: "n2-standard-32", CPUCores: 32, MemoryGB: 128, HourlyCost: 1.548, MonthlyCost: 1041.84},
	"n2-standard-48":  {MachineType: "n2-standard-48", CPUCores: 48, MemoryGB: 192, HourlyCost: 2.322, MonthlyCost: 1562.76},
	"n2-standard-64":  {MachineType: "n2-standard-64", CPUCores: 64, MemoryGB: 256, HourlyCost: 3.096, MonthlyCost: 2083.68},
	"n2-standard-80":  {MachineType: "n2-standard-80", CPUCores: 80, MemoryGB: 320, HourlyCost: 3.870, MonthlyCost: 2604.60},
	"n2-standard-96":  {MachineType: "n2-standard-96", CPUCores: 96, MemoryGB: 384, HourlyCost: 4.644, MonthlyCost: 3125.52},
	"n2-standard-128": {MachineType: "n2-standard-128", CPUCores: 128, MemoryGB: 512, HourlyCost: 6.192, MonthlyCost: 4167.36},
}

// regionCatalogs keys machine catalogs by region. Only us-east4 carries
// data; region validation happens at the API boundary.
var regionCatalogs = map[string]map[string]models.MachineTypeSpec{
	DefaultRegion: n2Catalog,
}

// Lookup returns the catalog entry for a machine type. With spot set,
// hourly and monthly prices are scaled by SpotDiscount.
func Lookup(machineType string, spot bool) (models.MachineTypeSpec, error) {
	spec, ok := n2Catalog[machineType]
	if !ok {
		return models.MachineTypeSpec{}, models.NewPlanError(
			models.KindUnknownMachineType, "unknown machine type: %s", machineType)
	}

	if spot {
		spec.HourlyCost *= SpotDiscount
		spec.MonthlyCost *= SpotDiscount
	}

	return spec, nil
}

// Custom prices a custom machine type with the linear per-core/per-GB
// model. Callers round resource quantities before calling; no rounding
// happens here.
func Custom(cpuCores, memoryGB int, spot bool) (hourly, monthly float64) {
	hourly = float64(cpuCores)*customCPUHourlyRate + float64(memoryGB)*customMemoryHourlyRate
	monthly = hourly * hoursPerMonth

	if spot {
		hourly *= SpotDiscount
		monthly *= SpotDiscount
	}

	return hourly, monthly
}

// Specs returns all catalog entries at on-demand prices, sorted by
// machine type id for deterministic iteration.
func Specs() []models.MachineTypeSpec {
	specs := make([]models.MachineTypeSpec, 0, len(n2Catalog))
	for _, spec := range n2Catalog {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].MachineType < specs[j].MachineType
	})
	return specs
}

// MachineTypes returns the sorted list of catalog machine type ids.
func MachineTypes() []string {
	types := make([]string, 0, len(n2Catalog))
	for name := range n2Catalog {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// HasRegion reports whether pricing data exists for a region.
func HasRegion(region string) bool {
	_, ok := regionCatalogs[region]
	return ok
}

// Regions returns the regions with embedded pricing data.
func Regions() []string {
	regions := make([]string, 0, len(regionCatalogs))
	for name := range regionCatalogs {
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions
}
