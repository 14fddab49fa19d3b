package config

import "flag"

type Config struct {
	OutputDir    string
	NumPoints    int
	Seed         uint64
	FigureFormat string
}

func Parse() *Config {
	cfg := &Config{}

	// define flags
	flag.StringVar(&cfg.OutputDir, "output-dir", "./", "output directory for figures")
	flag.IntVar(&cfg.NumPoints, "num-points", 100, "number of samples to draw per class")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "random seed for the synthetic data")
	flag.StringVar(&cfg.FigureFormat, "format", "png", "figure format: png or pdf")
	flag.Parse()

	return cfg
}
