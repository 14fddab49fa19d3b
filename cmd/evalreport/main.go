package main

import (
	"log"
	"path/filepath"

	"evalplot-go/internal/config"
	"evalplot-go/internal/model"
	"evalplot-go/internal/presenter"
	"evalplot-go/pkg/synthdata"

	"gonum.org/v1/plot/vg"
)

var featureNames = []string{"depolarization", "fluorescence"}

// Per-class feature distributions for the synthetic demo set.
var blobParams = map[string][]synthdata.Params{
	"dust":  {{Mean: 0.26, StdDev: 0.04, Low: 0, High: 1}, {Mean: 0.3e-4, StdDev: 0.1e-4, Low: 0, High: 1e-3}},
	"soot":  {{Mean: 0.06, StdDev: 0.02, Low: 0, High: 1}, {Mean: 4e-4, StdDev: 0.5e-4, Low: 0, High: 1e-3}},
	"urban": {{Mean: 0.05, StdDev: 0.02, Low: 0, High: 1}, {Mean: 0.55e-4, StdDev: 0.1e-4, Low: 0, High: 1e-3}},
}

func main() {
	cfg := config.Parse()
	log.Println("Starting evaluation report demo...")

	classes := []string{"dust", "soot", "urban"}
	X, y, err := synthdata.Blobs(cfg.NumPoints, classes, blobParams, cfg.Seed)
	if err != nil {
		log.Fatal("Error generating synthetic data:", err)
	}

	gauss := model.NewGauss()
	if err := gauss.Fit(X, y); err != nil {
		log.Fatal("Error fitting model:", err)
	}

	// Index-form predictions: the reporter maps them back to labels.
	predicted, err := gauss.PredictIndices(X)
	if err != nil {
		log.Fatal("Error predicting:", err)
	}

	reporter := presenter.Reporter{
		FigurePath: filepath.Join(cfg.OutputDir, "confusion."+cfg.FigureFormat),
	}
	if err := reporter.Report(gauss, y, predicted); err != nil {
		log.Fatal("Error reporting:", err)
	}

	pairgridPath := filepath.Join(cfg.OutputDir, "pairgrid."+cfg.FigureFormat)
	if err := presenter.PairGrid(X, featureNames, 8*vg.Inch, 8*vg.Inch, pairgridPath); err != nil {
		log.Fatal("Error drawing pair grid:", err)
	}

	log.Println("Wrote", reporter.FigurePath, "and", pairgridPath)
}
