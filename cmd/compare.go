// ABOUTME: Compare command for on-demand vs spot deployment costs
// ABOUTME: Reports absolute and percentage spot savings

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"clab-gcp-planner/models"
	"clab-gcp-planner/services"
)

var (
	compareCPU    int
	compareMemory int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare on-demand vs spot deployment costs",
	Long: `Optimize the same demand with on-demand and spot pricing and report
the savings.

Example:
  clabplan compare --cpu 16 --memory 32`,
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := planningRegion()
		if err != nil {
			return err
		}

		recommender := services.NewRecommendationService(region)
		comparison, err := recommender.CompareOptions(context.Background(), compareCPU, compareMemory)
		if err != nil {
			return err
		}

		return renderComparison(os.Stdout, comparison, isJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVar(&compareCPU, "cpu", 0, "Total CPU cores required")
	compareCmd.Flags().IntVar(&compareMemory, "memory", 0, "Total memory in GB required")
	compareCmd.MarkFlagRequired("cpu")
	compareCmd.MarkFlagRequired("memory")
}

func renderComparison(w io.Writer, comparison models.Comparison, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(comparison)
	}

	fmt.Fprintln(w, titleStyle.Render("Deployment Cost Comparison"))
	fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Region:"), comparison.Region)

	renderOption := func(name string, plan models.DeploymentPlan) {
		fmt.Fprintf(w, "%s\n", labelStyle.Render(name))
		for _, vm := range plan.VMConfigurations {
			fmt.Fprintf(w, "  %d x %s\n", vm.Count, vm.MachineType)
		}
		fmt.Fprintf(w, "  %s/month\n\n", costStyle.Render(fmt.Sprintf("$%.2f", plan.TotalMonthlyCost)))
	}

	renderOption("On-demand:", comparison.OnDemand)
	renderOption("Spot:", comparison.Spot)

	fmt.Fprintf(w, "%s %s (%.1f%%)\n",
		labelStyle.Render("Spot savings:"),
		spotStyle.Render(fmt.Sprintf("$%.2f/month", comparison.SpotSavings)),
		comparison.SpotSavingsPercent)

	return nil
}
