// ABOUTME: Entry point for the clabplan CLI
// ABOUTME: Plans GCP deployments for ContainerLab topologies

package main

import (
	"fmt"
	"os"

	"clab-gcp-planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
