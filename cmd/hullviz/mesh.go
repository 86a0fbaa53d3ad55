package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arthur-Matias/hull-visualizer/pkg/hull"
	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

var (
	meshLODStations   float64
	meshLODWaterlines float64
)

var meshCmd = &cobra.Command{
	Use:   "mesh [table]",
	Short: "Build the hull mesh and report its properties",
	Long:  "Reconstruct the triangulated hull from an offset table and report surface, triangle and region statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runMesh,
}

func init() {
	rootCmd.AddCommand(meshCmd)

	meshCmd.Flags().Float64Var(&meshLODStations, "lod-stations", 1, "Station densification multiplier")
	meshCmd.Flags().Float64Var(&meshLODWaterlines, "lod-waterlines", 1, "Waterline densification multiplier")
}

func runMesh(cmd *cobra.Command, args []string) {
	filename := args[0]

	table, err := offsets.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading offset table: %v\n", err)
		os.Exit(1)
	}

	lod := offsets.LODConfig{
		StationMultiplier:   meshLODStations,
		WaterlineMultiplier: meshLODWaterlines,
	}
	mesh, err := hull.Build(table, lod, hull.DefaultColorMap())
	if err != nil {
		if !errors.Is(err, hull.ErrInvalidGeometry) {
			fmt.Fprintf(os.Stderr, "Error building mesh: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v (placeholder mesh)\n", err)
	}

	fmt.Println("Hull Mesh")
	fmt.Println("=========")
	fmt.Printf("Table: %s\n", table.Name)
	fmt.Printf("LOD: stations x%.1f, waterlines x%.1f\n\n", lod.StationMultiplier, lod.WaterlineMultiplier)

	total := 0
	fmt.Println("Surfaces:")
	for _, s := range mesh.Surfaces() {
		fmt.Printf("  %-8s %6d triangles, %6d vertices\n", s.Name, s.TriangleCount(), len(s.Vertices))
		total += s.TriangleCount()
	}
	fmt.Printf("  total    %6d triangles\n\n", total)

	minV, maxV := meshBounds(mesh)
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.3f, %.3f, %.3f)\n", minV[0], minV[1], minV[2])
	fmt.Printf("  Max: (%.3f, %.3f, %.3f)\n\n", maxV[0], maxV[1], maxV[2])

	fmt.Println("Regions:")
	fmt.Printf("  Station groups: %d\n", len(mesh.Groups.Stations))
	fmt.Printf("  Waterline groups: %d\n", len(mesh.Groups.Waterlines))
	fmt.Printf("  Deck faces: %d\n", len(mesh.Groups.Deck))
}

func meshBounds(mesh *hull.Mesh) (minV, maxV [3]float64) {
	minV = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, s := range mesh.Surfaces() {
		for _, v := range s.Vertices {
			w := s.Transform.Apply(v)
			for i, c := range []float64{w.X, w.Y, w.Z} {
				if c < minV[i] {
					minV[i] = c
				}
				if c > maxV[i] {
					maxV[i] = c
				}
			}
		}
	}
	return minV, maxV
}
