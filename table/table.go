// SPDX-License-Identifier: MIT
// Package: sigmix/table
//
// table.go - flat-file export of named, equal-length columns.
//
// Format (stable, round-trippable):
//   - RFC 4180 CSV, comma delimiter, "\n" line endings.
//   - Row 0 is the header: one cell per column name (duplicates allowed,
//     order preserved). A single empty name is written quoted ("").
//   - Rows 1..n hold sample i of every column.
//   - Values use strconv.FormatFloat(v, 'g', -1, 64): the shortest text that
//     parses back to the identical float64. NaN/±Inf are written as
//     "NaN", "+Inf", "-Inf" and parse back the same way.
//
// Contract:
//   - Write refuses zero columns (ErrNoColumns) and unequal lengths
//     (ErrRaggedColumns); Read rejects non-numeric cells (ErrMalformed).

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// emptyHeader is the header row of a single unnamed column.
const emptyHeader = "\"\"\n"

// Column is one named sequence.
type Column struct {
	Name   string
	Values []float64
}

// Write encodes cols as CSV into w.
// Complexity: O(rows·cols).
func Write(w io.Writer, cols []Column) error {
	if len(cols) == 0 {
		return fmt.Errorf("Write: %w", ErrNoColumns)
	}
	rows := len(cols[0].Values)
	for _, c := range cols[1:] {
		if len(c.Values) != rows {
			return fmt.Errorf("Write: column %q has %d rows, want %d: %w", c.Name, len(c.Values), rows, ErrRaggedColumns)
		}
	}

	// encoding/csv writes a lone empty field as a blank line, which readers
	// skip; quote it so the header row survives.
	if len(cols) == 1 && cols[0].Name == "" {
		if _, err := io.WriteString(w, emptyHeader); err != nil {
			return fmt.Errorf("Write: header: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	record := make([]string, len(cols))
	for j, c := range cols {
		record[j] = c.Name
	}
	if record[0] != "" || len(record) > 1 {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("Write: header: %w", err)
		}
	}

	for i := 0; i < rows; i++ {
		for j, c := range cols {
			record[j] = strconv.FormatFloat(c.Values[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("Write: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile writes cols to path, creating parent directories as needed.
func WriteFile(path string, cols []Column) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("WriteFile(%s): %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile(%s): %w", path, cerr)
		}
	}()

	if err = Write(f, cols); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return nil
}

// Read decodes a table written by Write.
func Read(r io.Reader) ([]Column, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Read: no header: %w", ErrNoColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("Read: header: %w: %w", ErrMalformed, err)
	}

	cols := make([]Column, len(header))
	for j, name := range header {
		cols[j].Name = name
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ErrFieldCount lands here for ragged rows.
			return nil, fmt.Errorf("Read: line %d: %w: %w", line, ErrMalformed, err)
		}
		for j, cell := range record {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("Read: line %d column %q: %w: %w", line, cols[j].Name, ErrMalformed, perr)
			}
			cols[j].Values = append(cols[j].Values, v)
		}
	}

	return cols, nil
}

// ReadFile reads a table from path.
func ReadFile(path string) ([]Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer f.Close()

	cols, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return cols, nil
}
