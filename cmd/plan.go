// ABOUTME: Plan command composing topology analysis and optimization
// ABOUTME: One-shot topology file to deployment plan

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clab-gcp-planner/services"
	"clab-gcp-planner/topology"
)

var (
	planMaxVMs int
	planSpot   bool
)

var planCmd = &cobra.Command{
	Use:   "plan <topology.clab.yml>",
	Short: "Analyze a topology and produce a deployment plan",
	Long: `Run resource extraction and deployment optimization in one step.

Example:
  clabplan plan lab.clab.yml --spot --max-vms 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := planningRegion()
		if err != nil {
			return err
		}

		doc, err := topology.LoadFile(args[0])
		if err != nil {
			return err
		}

		analysis, err := topology.Extract(doc)
		if err != nil {
			return err
		}

		optimizer := services.NewDeploymentOptimizer(region)
		plan, err := optimizer.Optimize(analysis.TotalCPUCores, analysis.TotalMemoryGB, planMaxVMs, planSpot)
		if err != nil {
			return err
		}

		if isJSONOutput() {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"resource_analysis": analysis,
				"deployment_plan":   plan,
			})
		}

		if err := renderAnalysis(os.Stdout, analysis, false); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
		return renderPlan(os.Stdout, plan, false)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().IntVar(&planMaxVMs, "max-vms", 10, "Maximum number of VMs to consider")
	planCmd.Flags().BoolVar(&planSpot, "spot", false, "Prefer spot instances")
}
