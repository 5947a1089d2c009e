// ABOUTME: Pricing command showing catalog machine types and rates
// ABOUTME: Read-only view of the embedded pricing table

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clab-gcp-planner/models"
	"clab-gcp-planner/pricing"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing [machine-type]",
	Short: "Show machine type pricing",
	Long: `Show pricing for one machine type, or list the full catalog.

Example:
  clabplan pricing n2-standard-8`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := planningRegion()
		if err != nil {
			return err
		}

		info := models.PricingInfo{Region: region}
		if len(args) == 1 {
			spec, err := pricing.Lookup(args[0], false)
			if err != nil {
				return err
			}
			info.MachineType = args[0]
			info.Pricing = &spec
		} else {
			info.AvailableMachineTypes = pricing.MachineTypes()
			info.SpotDiscount = pricing.SpotDiscount
		}

		if isJSONOutput() {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		w := os.Stdout
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("GCP Pricing (%s)", region)))

		if info.Pricing != nil {
			fmt.Fprintf(w, "\n%s %s\n", labelStyle.Render("Machine type:"), info.MachineType)
			fmt.Fprintf(w, "%s %d vCPU, %d GB memory\n", labelStyle.Render("Shape:"),
				info.Pricing.CPUCores, info.Pricing.MemoryGB)
			fmt.Fprintf(w, "%s $%.3f/hour, %s/month\n", labelStyle.Render("On-demand:"),
				info.Pricing.HourlyCost,
				costStyle.Render(fmt.Sprintf("$%.2f", info.Pricing.MonthlyCost)))
			fmt.Fprintf(w, "%s $%.3f/hour (%.0f%% discount)\n", labelStyle.Render("Spot:"),
				info.Pricing.HourlyCost*pricing.SpotDiscount,
				(1-pricing.SpotDiscount)*100)
			return nil
		}

		fmt.Fprintf(w, "%s %.0f%%\n\n", labelStyle.Render("Spot discount:"), (1-info.SpotDiscount)*100)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MACHINE TYPE\tCPU\tMEMORY\tHOURLY\tMONTHLY")
		for _, spec := range pricing.Specs() {
			fmt.Fprintf(tw, "%s\t%d\t%d GB\t$%.3f\t$%.2f\n",
				spec.MachineType, spec.CPUCores, spec.MemoryGB, spec.HourlyCost, spec.MonthlyCost)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(pricingCmd)
}
