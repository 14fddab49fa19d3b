// Package readmatrix loads whitespace-separated numeric matrices from text
// files.
package readmatrix

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadMatrix parses filename into a dense matrix. Empty lines and lines
// starting with # are skipped; a leading non-numeric line is treated as a
// header and dropped. All data rows must have the same number of columns.
func ReadMatrix(filename string) (*mat.Dense, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("readmatrix: %w", err)
	}
	defer file.Close()

	var rows [][]float64
	scanner := bufio.NewScanner(file)
	sawHeader := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if !sawHeader && len(rows) == 0 && !allNumeric(fields) {
			sawHeader = true
			continue
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("readmatrix: line %d, column %d: %w", len(rows)+1, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("readmatrix: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("readmatrix: no data rows in %s", filename)
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("readmatrix: inconsistent number of columns: expected %d, got %d", cols, len(row))
		}
		flat = append(flat, row...)
	}

	return mat.NewDense(len(rows), cols, flat), nil
}

func allNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}
