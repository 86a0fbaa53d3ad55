package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

var infoCmd = &cobra.Command{
	Use:   "info [table]",
	Short: "Display general information about an offset table",
	Long:  "Show table metadata, station and waterline counts, and hull extents.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	table, err := offsets.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading offset table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Offset Table Information")
	fmt.Println("========================")
	if table.Name != "" {
		fmt.Printf("Name: %s\n", table.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	positions := table.StationPositions()
	heights := table.WaterlineHeights()

	fmt.Println("Geometry:")
	fmt.Printf("  Stations: %d\n", len(positions))
	fmt.Printf("  Waterlines: %d\n", len(heights))
	if len(positions) > 0 {
		fmt.Printf("  Length: %.3f %s\n", positions[len(positions)-1]-positions[0], table.Units)
	}
	if len(heights) > 0 {
		fmt.Printf("  Depth: %.3f %s\n", heights[len(heights)-1]-heights[0], table.Units)
	}
	fmt.Printf("  Max half-breadth: %.3f %s\n\n", maxHalfBreadth(table), table.Units)

	fmt.Println("Properties:")
	fmt.Printf("  Units: %s (scale %.4f)\n", table.Units, table.Units.Scale())
	fmt.Printf("  Symmetric: %v\n", table.Symmetric)
	fmt.Printf("  Keel: %v\n", table.HasKeel)
	fmt.Printf("  Chine: %v\n", table.HasChine)
	if table.Thickness > 0 {
		fmt.Printf("  Hull thickness: %.4f %s\n", table.Thickness, table.Units)
	}
	fmt.Printf("  Base weight: %.2f\n", table.Weight)
}

func maxHalfBreadth(table *offsets.Table) float64 {
	maxB := 0.0
	for _, st := range table.Stations {
		for _, s := range st.Samples {
			if s.Port > maxB {
				maxB = s.Port
			}
			if sb := s.StarboardBreadth(); sb > maxB {
				maxB = sb
			}
		}
	}
	return maxB
}
