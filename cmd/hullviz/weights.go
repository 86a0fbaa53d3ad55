package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
	"github.com/Arthur-Matias/hull-visualizer/pkg/weights"
)

var weightsCmd = &cobra.Command{
	Use:   "weights [table]",
	Short: "Summarize the weight composition of a hull",
	Long:  "Report the base structural weight from the offset table and the resulting displacement total.",
	Args:  cobra.ExactArgs(1),
	Run:   runWeights,
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}

func runWeights(cmd *cobra.Command, args []string) {
	filename := args[0]

	table, err := offsets.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading offset table: %v\n", err)
		os.Exit(1)
	}

	ledger := weights.NewLedger(table.Weight)

	fmt.Println("Weight Summary")
	fmt.Println("==============")
	fmt.Printf("Table: %s\n\n", table.Name)
	fmt.Printf("Base weight:    %10.2f\n", ledger.Base())
	fmt.Printf("Painted loads:  %10d\n", ledger.PaintedCount())
	fmt.Printf("Painted weight: %10.2f\n", ledger.PaintedWeight())
	fmt.Printf("Total:          %10.2f\n", ledger.Total())
}
