package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arthur-Matias/hull-visualizer/version"
)

var rootCmd = &cobra.Command{
	Use:   "hullviz",
	Short: "A command-line tool for inspecting ship offset tables",
	Long: `hullviz reads naval architecture offset tables (stations and
waterline half-breadths in YAML) and reports on the hull geometry they
describe: table statistics, reconstructed mesh properties and weight
composition.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
