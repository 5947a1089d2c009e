// ABOUTME: Analyze command extracting resource requirements from a topology
// ABOUTME: Prints per-node requirements and the aggregate demand

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clab-gcp-planner/models"
	"clab-gcp-planner/topology"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <topology.clab.yml>",
	Short: "Extract resource requirements from a topology",
	Long: `Parse a ContainerLab topology file and report per-node CPU/memory
requirements plus the aggregate demand, including containerization overhead.

Example:
  clabplan analyze lab.clab.yml --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := topology.LoadFile(args[0])
		if err != nil {
			return err
		}

		result, err := topology.Extract(doc)
		if err != nil {
			return err
		}

		return renderAnalysis(os.Stdout, result, isJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func renderAnalysis(w io.Writer, result models.ExtractionResult, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Topology: %s", result.TopologyName)))
	fmt.Fprintf(w, "%s %d\n\n", labelStyle.Render("Nodes:"), result.NodeCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tKIND\tBASE\tESTIMATED")
	for _, node := range result.Nodes {
		fmt.Fprintf(tw, "%s\t%s\t%d vCPU / %d GB\t%d vCPU / %d GB\n",
			node.Name, node.Kind,
			node.CPUCores, node.MemoryGB,
			node.EstimatedCPUCores, node.EstimatedMemoryGB)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s %d vCPU, %d GB memory\n",
		labelStyle.Render("Total estimated demand:"),
		result.TotalCPUCores, result.TotalMemoryGB)

	return nil
}
