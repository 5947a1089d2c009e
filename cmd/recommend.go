// ABOUTME: Recommend command selecting a deployment option by policy
// ABOUTME: Evaluates presets against an optional monthly budget

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"clab-gcp-planner/services"
	"clab-gcp-planner/topology"
)

var (
	recommendBudget   float64
	recommendPriority string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <topology.clab.yml>",
	Short: "Recommend a deployment option for a topology",
	Long: `Analyze a topology, evaluate on-demand, spot, and high-availability
deployment options, and recommend one based on the priority policy.

Priorities: cost, performance, balanced (default).

Example:
  clabplan recommend lab.clab.yml --budget 500 --priority cost`,
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

		var budget *float64
		if cmd.Flags().Changed("budget") {
			budget = &recommendBudget
		}

		recommender := services.NewRecommendationService(region)
		recommendation, err := recommender.Recommend(
			analysis.TotalCPUCores, analysis.TotalMemoryGB, budget, recommendPriority)
		if err != nil {
			return err
		}

		if isJSONOutput() {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(recommendation)
		}

		w := os.Stdout
		fmt.Fprintln(w, titleStyle.Render("Deployment Recommendation"))
		fmt.Fprintf(w, "%s %d vCPU, %d GB memory\n", labelStyle.Render("Demand:"),
			analysis.TotalCPUCores, analysis.TotalMemoryGB)
		fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Priority:"), recommendation.Priority)

		names := make([]string, 0, len(recommendation.Options))
		for name := range recommendation.Options {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			plan := recommendation.Options[name]
			marker := "  "
			if name == recommendation.RecommendedName {
				marker = costStyle.Render("▶ ")
			}
			fmt.Fprintf(w, "%s%s: %d x %s, $%.2f/month\n",
				marker, name,
				plan.VMConfigurations[0].Count,
				plan.VMConfigurations[0].MachineType,
				plan.TotalMonthlyCost)
		}

		fmt.Fprintf(w, "\n%s %s\n", labelStyle.Render("Recommended:"),
			costStyle.Render(recommendation.RecommendedName))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().Float64Var(&recommendBudget, "budget", 0, "Monthly budget constraint in USD")
	recommendCmd.Flags().StringVar(&recommendPriority, "priority", services.PriorityBalanced, "Priority policy: cost, performance, balanced")
}
