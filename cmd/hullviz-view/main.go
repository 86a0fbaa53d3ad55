package main

import (
	"fmt"
	"os"

	"github.com/Arthur-Matias/hull-visualizer/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
