// ABOUTME: Root command for the clabplan CLI
// ABOUTME: Handles global flags and region resolution

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clab-gcp-planner/pricing"
)

var (
	regionFlag string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "clabplan",
	Short: "GCP capacity planner for ContainerLab topologies",
	Long: `clabplan estimates compute resource requirements for ContainerLab
topologies and produces cost-optimized GCP deployment plans.

Environment Variables:
  PLANNER_REGION  GCP pricing region (default: us-east4)
  PLANNER_MAX_VMS Default VM count ceiling for optimization (default: 10)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "GCP region (overrides PLANNER_REGION)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// planningRegion returns the region from flag, env, or default (in
// priority order), validated against the pricing catalog.
func planningRegion() (string, error) {
	region := regionFlag
	if region == "" {
		region = os.Getenv("PLANNER_REGION")
	}
	if region == "" {
		region = pricing.DefaultRegion
	}
	if !pricing.HasRegion(region) {
		return "", fmt.Errorf("no pricing data for region %q (available: %v)", region, pricing.Regions())
	}
	return region, nil
}

// isJSONOutput returns whether JSON output is requested
func isJSONOutput() bool {
	return jsonOutput
}
