package main

import (
	"flag"
	"fmt"
	"log"

	"evalplot-go/internal/presenter"
	"evalplot-go/pkg/readmatrix"

	"gonum.org/v1/plot/vg"
)

func main() {
	input := flag.String("input", "features.txt", "whitespace-separated feature matrix file")
	output := flag.String("output", "pairgrid.png", "output figure (.png or .pdf)")
	size := flag.Float64("size", 8, "figure side length in inches")
	flag.Parse()

	X, err := readmatrix.ReadMatrix(*input)
	if err != nil {
		log.Fatal("Error reading feature matrix:", err)
	}

	_, cols := X.Dims()
	names := make([]string, cols)
	for j := range names {
		names[j] = fmt.Sprintf("x%d", j+1)
	}

	side := vg.Length(*size) * vg.Inch
	if err := presenter.PairGrid(X, names, side, side, *output); err != nil {
		log.Fatal("Error drawing pair grid:", err)
	}

	log.Println("Wrote", *output)
}
