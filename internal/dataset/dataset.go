// Package dataset provides sample sets for training networks.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nnpp/nnpp/internal/train"
)

// Common errors.
var (
	ErrNoInputs   = errors.New("number of input columns must be positive")
	ErrNoTargets  = errors.New("record has no target columns")
	ErrRaggedRows = errors.New("records have differing column counts")
)

// XOR returns the four exclusive-or pairs: [0,0]->0, [0,1]->1, [1,0]->1,
// [1,1]->0.
func XOR() train.Dataset {
	return train.Dataset{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}
}

// LoadCSV reads samples from r.
//
// CSV Format:
//
//	x0,x1,...,y0,y1,...
//	0,1,1
//	1,1,0
//
// The first numInputs columns of each record are inputs and the rest are
// targets. A first record whose leading field is not a number is treated as
// a header and skipped. Every record must have the same number of columns.
func LoadCSV(r io.Reader, numInputs int) (train.Dataset, error) {
	if numInputs <= 0 {
		return nil, ErrNoInputs
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) > 0 && !isNumeric(records[0][0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, train.ErrEmptyDataset
	}

	cols := len(records[0])
	if cols <= numInputs {
		return nil, fmt.Errorf("%d columns with %d inputs: %w", cols, numInputs, ErrNoTargets)
	}

	data := make(train.Dataset, len(records))
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("record %d has %d columns, want %d: %w", i, len(rec), cols, ErrRaggedRows)
		}

		values := make([]float64, cols)
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("record %d column %d: %w", i, j, err)
			}
			values[j] = v
		}
		data[i] = train.Sample{
			Inputs:  values[:numInputs:numInputs],
			Targets: values[numInputs:],
		}
	}

	return data, nil
}

// LoadCSVFile opens filename and reads it with LoadCSV.
func LoadCSVFile(filename string, numInputs int) (train.Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, numInputs)
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
