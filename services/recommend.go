// ABOUTME: Comparison and recommendation layer over the deployment optimizer
// ABOUTME: Evaluates fixed presets and selects one by a priority policy

package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"clab-gcp-planner/models"
)

// Deployment option names. Stable; part of the API response shape.
const (
	OptionOnDemandStandard = "on_demand_standard"
	OptionSpotStandard     = "spot_standard"
	OptionHighAvailability = "high_availability"
)

// Priority policies for recommendation selection.
const (
	PriorityCost        = "cost"
	PriorityPerformance = "performance"
	PriorityBalanced    = "balanced"
)

// comparisonMaxVMs is the fixed count ceiling used by comparisons and the
// standard recommendation presets.
const comparisonMaxVMs = 10

// optionPresets are the optimizer parameterizations evaluated by
// Recommend, in evaluation order.
var optionPresets = []struct {
	name   string
	maxVMs int
	spot   bool
}{
	{name: OptionOnDemandStandard, maxVMs: 10, spot: false},
	{name: OptionSpotStandard, maxVMs: 10, spot: true},
	{name: OptionHighAvailability, maxVMs: 5, spot: false},
}

// RecommendationService composes optimizer runs into comparisons and
// policy-driven recommendations.
type RecommendationService struct {
	optimizer *DeploymentOptimizer
	region    string
}

// NewRecommendationService creates a recommendation service for a region.
func NewRecommendationService(region string) *RecommendationService {
	return &RecommendationService{
		optimizer: NewDeploymentOptimizer(region),
		region:    region,
	}
}

// CompareOptions runs the optimizer for on-demand and spot at the fixed
// count ceiling and reports the absolute and percentage savings. The two
// runs are independent pure computations, so they execute in parallel.
// An error from either run propagates unchanged.
func (s *RecommendationService) CompareOptions(ctx context.Context, totalCPU, totalMemoryGB int) (models.Comparison, error) {
	var onDemand, spot models.DeploymentPlan

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		plan, err := s.optimizer.Optimize(totalCPU, totalMemoryGB, comparisonMaxVMs, false)
		if err != nil {
			return err
		}
		onDemand = plan
		return nil
	})
	g.Go(func() error {
		plan, err := s.optimizer.Optimize(totalCPU, totalMemoryGB, comparisonMaxVMs, true)
		if err != nil {
			return err
		}
		spot = plan
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Comparison{}, err
	}

	savings := onDemand.TotalMonthlyCost - spot.TotalMonthlyCost

	return models.Comparison{
		OnDemand:           onDemand,
		Spot:               spot,
		SpotSavings:        savings,
		SpotSavingsPercent: savings / onDemand.TotalMonthlyCost * 100,
		Region:             s.region,
	}, nil
}

// Recommend evaluates the fixed option presets, filters them by the
// optional monthly budget, and selects one per the priority policy.
// Unknown policies fall back to balanced.
func (s *RecommendationService) Recommend(totalCPU, totalMemoryGB int, budget *float64, priority string) (models.Recommendation, error) {
	options := make(map[string]models.DeploymentPlan, len(optionPresets))

	var lastErr error
	for _, preset := range optionPresets {
		plan, err := s.optimizer.Optimize(totalCPU, totalMemoryGB, preset.maxVMs, preset.spot)
		if err != nil {
			lastErr = err
			continue
		}
		options[preset.name] = plan
	}

	// All presets share the same demand, so when none produced a plan
	// the optimizer's own error is the accurate one to surface.
	if len(options) == 0 && lastErr != nil {
		return models.Recommendation{}, lastErr
	}

	if budget != nil {
		for name, plan := range options {
			if plan.TotalMonthlyCost > *budget {
				delete(options, name)
			}
		}
		if len(options) == 0 {
			return models.Recommendation{}, models.NewPlanError(
				models.KindNoOptionsWithinBudget,
				"no deployment options available within budget constraint of $%.2f/month", *budget)
		}
	}

	name := selectOption(options, priority)

	return models.Recommendation{
		Options:          options,
		RecommendedName:  name,
		Recommended:      options[name],
		BudgetConstraint: budget,
		Priority:         priority,
	}, nil
}

// selectOption applies the priority policy to the surviving options.
func selectOption(options map[string]models.DeploymentPlan, priority string) string {
	switch priority {
	case PriorityCost:
		return cheapestOption(options)
	case PriorityPerformance:
		if _, ok := options[OptionOnDemandStandard]; ok {
			return OptionOnDemandStandard
		}
		return cheapestOption(options)
	default: // balanced
		if _, ok := options[OptionSpotStandard]; ok {
			return OptionSpotStandard
		}
		return cheapestOption(options)
	}
}

// cheapestOption returns the option with the lowest total monthly cost,
// breaking ties by name for determinism.
func cheapestOption(options map[string]models.DeploymentPlan) string {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	best := names[0]
	for _, name := range names[1:] {
		if options[name].TotalMonthlyCost < options[best].TotalMonthlyCost {
			best = name
		}
	}
	return best
}
