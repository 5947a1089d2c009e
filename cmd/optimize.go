// ABOUTME: Optimize command producing a deployment plan for given demand
// ABOUTME: Shares the plan renderer with the plan and recommend commands

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"clab-gcp-planner/models"
	"clab-gcp-planner/services"
)

var (
	optimizeCPU    int
	optimizeMemory int
	optimizeMaxVMs int
	optimizeSpot   bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the cheapest VM configuration for a resource demand",
	Long: `Pack an aggregate CPU/memory demand into the lowest-cost set of GCP
virtual machines, comparing standard and custom machine types.

Example:
  clabplan optimize --cpu 16 --memory 32 --spot`,
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := planningRegion()
		if err != nil {
			return err
		}

		optimizer := services.NewDeploymentOptimizer(region)
		plan, err := optimizer.Optimize(optimizeCPU, optimizeMemory, optimizeMaxVMs, optimizeSpot)
		if err != nil {
			return err
		}

		return renderPlan(os.Stdout, plan, isJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().IntVar(&optimizeCPU, "cpu", 0, "Total CPU cores required")
	optimizeCmd.Flags().IntVar(&optimizeMemory, "memory", 0, "Total memory in GB required")
	optimizeCmd.Flags().IntVar(&optimizeMaxVMs, "max-vms", 10, "Maximum number of VMs to consider")
	optimizeCmd.Flags().BoolVar(&optimizeSpot, "spot", false, "Prefer spot instances")
	optimizeCmd.MarkFlagRequired("cpu")
	optimizeCmd.MarkFlagRequired("memory")
}

func renderPlan(w io.Writer, plan models.DeploymentPlan, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	fmt.Fprintln(w, titleStyle.Render("Deployment Plan"))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Region:"), plan.Region)
	fmt.Fprintf(w, "%s %d vCPU, %d GB memory\n\n",
		labelStyle.Render("Demand:"), plan.TotalCPUCores, plan.TotalMemoryGB)

	for _, vm := range plan.VMConfigurations {
		kind := "standard"
		if vm.IsCustom {
			kind = "custom"
		}
		fmt.Fprintf(w, "  %d x %s (%s, %d vCPU / %d GB each)\n",
			vm.Count, vm.MachineType, kind, vm.CPUCores, vm.MemoryGB)
	}

	fmt.Fprintf(w, "\n%s %s/month ($%.3f/hour)\n",
		labelStyle.Render("Total cost:"),
		costStyle.Render(fmt.Sprintf("$%.2f", plan.TotalMonthlyCost)),
		plan.TotalHourlyCost)

	if plan.SpotSavings != nil {
		fmt.Fprintf(w, "%s %s\n",
			labelStyle.Render("Potential spot savings:"),
			spotStyle.Render(fmt.Sprintf("$%.2f/month", *plan.SpotSavings)))
	}

	if len(plan.OptimizationNotes) > 0 {
		fmt.Fprintln(w)
		for _, note := range plan.OptimizationNotes {
			fmt.Fprintf(w, "  %s\n", noteStyle.Render("• "+note))
		}
	}

	return nil
}
