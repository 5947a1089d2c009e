// ABOUTME: Deployment optimizer for packing aggregate demand into GCP VMs
// ABOUTME: Compares standard-catalog and custom machine strategies by cost

package services

import (
	"fmt"

	"clab-gcp-planner/models"
	"clab-gcp-planner/pricing"
)

// maxSearchedVMs bounds the homogeneous VM count search. Optimizing
// beyond 5 instances is out of scope.
const maxSearchedVMs = 5

// candidate is one strategy's best configuration.
type candidate struct {
	config       models.VMConfiguration
	totalHourly  float64
	totalMonthly float64
}

// DeploymentOptimizer finds the lowest-cost VM configuration for an
// aggregate resource demand.
type DeploymentOptimizer struct {
	region string
}

// NewDeploymentOptimizer creates an optimizer for a region.
func NewDeploymentOptimizer(region string) *DeploymentOptimizer {
	return &DeploymentOptimizer{region: region}
}

// Optimize returns the cheapest deployment plan for the given totals,
// searching VM counts from 1 to min(maxVMs, 5) across both the standard
// catalog and custom machine types. It fails with
// no_feasible_configuration when neither strategy yields a candidate.
func (o *DeploymentOptimizer) Optimize(totalCPU, totalMemoryGB, maxVMs int, preferSpot bool) (models.DeploymentPlan, error) {
	var notes []string

	standard := o.findStandardConfiguration(totalCPU, totalMemoryGB, maxVMs, preferSpot)
	custom := o.findCustomConfiguration(totalCPU, totalMemoryGB, maxVMs, preferSpot)

	var best *candidate
	switch {
	case standard != nil && custom != nil:
		// Ties favor the standard catalog.
		if standard.totalMonthly <= custom.totalMonthly {
			best = standard
			notes = append(notes, "Using standard machine types for better reliability")
		} else {
			best = custom
			notes = append(notes, "Using custom machine types for better resource utilization")
		}
	case standard != nil:
		best = standard
		notes = append(notes, "Using standard machine types")
	case custom != nil:
		best = custom
		notes = append(notes, "Using custom machine types")
	default:
		return models.DeploymentPlan{}, models.NewPlanError(
			models.KindNoFeasibleConfiguration,
			"unable to find suitable configuration for %d CPU cores / %d GB memory with at most %d VMs",
			totalCPU, totalMemoryGB, maxVMs)
	}

	if preferSpot {
		notes = append(notes, "Using spot instances for cost savings (may be preempted)")
	}

	// Report potential spot savings for on-demand plans. Omitted when
	// the secondary spot computation finds nothing.
	var spotSavings *float64
	if !preferSpot {
		if spotStandard := o.findStandardConfiguration(totalCPU, totalMemoryGB, maxVMs, true); spotStandard != nil {
			savings := best.totalMonthly - spotStandard.totalMonthly
			spotSavings = &savings
		}
	}

	return models.DeploymentPlan{
		TotalCPUCores:     totalCPU,
		TotalMemoryGB:     totalMemoryGB,
		VMConfigurations:  []models.VMConfiguration{best.config},
		TotalHourlyCost:   best.totalHourly,
		TotalMonthlyCost:  best.totalMonthly,
		Region:            o.region,
		OptimizationNotes: notes,
		SpotSavings:       spotSavings,
	}, nil
}

// findStandardConfiguration searches VM counts for the cheapest standard
// machine type configuration, or nil if no count fits the catalog.
func (o *DeploymentOptimizer) findStandardConfiguration(totalCPU, totalMemoryGB, maxVMs int, spot bool) *candidate {
	if totalCPU <= 0 || totalMemoryGB <= 0 {
		return nil
	}

	var best *candidate
	for count := 1; count <= searchedCounts(maxVMs); count++ {
		cpuPerVM := float64(totalCPU) / float64(count)
		memoryPerVM := float64(totalMemoryGB) / float64(count)

		machineType, ok := findTightestFit(cpuPerVM, memoryPerVM)
		if !ok {
			continue
		}

		spec, err := pricing.Lookup(machineType, spot)
		if err != nil {
			continue
		}

		totalMonthly := spec.MonthlyCost * float64(count)
		if best == nil || totalMonthly < best.totalMonthly {
			best = &candidate{
				config: models.VMConfiguration{
					MachineType: spec.MachineType,
					CPUCores:    spec.CPUCores,
					MemoryGB:    spec.MemoryGB,
					Count:       count,
					HourlyCost:  spec.HourlyCost,
					MonthlyCost: spec.MonthlyCost,
				},
				totalHourly:  spec.HourlyCost * float64(count),
				totalMonthly: totalMonthly,
			}
		}
	}

	return best
}

// findCustomConfiguration searches VM counts for the cheapest custom
// machine type configuration. Per-VM shares are ceiling-rounded and
// floored at 1 CPU / 1 GB.
func (o *DeploymentOptimizer) findCustomConfiguration(totalCPU, totalMemoryGB, maxVMs int, spot bool) *candidate {
	if totalCPU <= 0 || totalMemoryGB <= 0 {
		return nil
	}

	var best *candidate
	for count := 1; count <= searchedCounts(maxVMs); count++ {
		cpuPerVM := ceilDiv(totalCPU, count)
		memoryPerVM := ceilDiv(totalMemoryGB, count)
		if cpuPerVM < 1 {
			cpuPerVM = 1
		}
		if memoryPerVM < 1 {
			memoryPerVM = 1
		}

		hourly, monthly := pricing.Custom(cpuPerVM, memoryPerVM, spot)

		totalMonthly := monthly * float64(count)
		if best == nil || totalMonthly < best.totalMonthly {
			best = &candidate{
				config: models.VMConfiguration{
					MachineType: fmt.Sprintf("custom-%d-%d", cpuPerVM, memoryPerVM),
					CPUCores:    cpuPerVM,
					MemoryGB:    memoryPerVM,
					Count:       count,
					HourlyCost:  hourly,
					MonthlyCost: monthly,
					IsCustom:    true,
				},
				totalHourly:  hourly * float64(count),
				totalMonthly: totalMonthly,
			}
		}
	}

	return best
}

// findTightestFit selects the catalog entry with the smallest CPU×memory
// product among entries covering the per-VM share. Capacity product is a
// proxy for cost-efficiency, independent of price.
func findTightestFit(cpuPerVM, memoryPerVM float64) (string, bool) {
	var (
		bestType    string
		bestProduct int
		found       bool
	)

	for _, spec := range pricing.Specs() {
		if float64(spec.CPUCores) < cpuPerVM || float64(spec.MemoryGB) < memoryPerVM {
			continue
		}
		product := spec.CPUCores * spec.MemoryGB
		if !found || product < bestProduct {
			bestType = spec.MachineType
			bestProduct = product
			found = true
		}
	}

	return bestType, found
}

// searchedCounts caps the VM count search at maxSearchedVMs.
func searchedCounts(maxVMs int) int {
	if maxVMs > maxSearchedVMs {
		return maxSearchedVMs
	}
	return maxVMs
}

// ceilDiv divides two positive ints rounding any fractional remainder up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
