// Package csvtab reads the tabular CSV inputs of a correction run:
// glycoform abundances, glycation abundances and the optional glycan
// library. Lines starting with '#' are comments.
package csvtab

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cdl-biosimilars/cafog/pkg/core"
)

// ReadGlycoforms reads headerless glycoform rows of the form
// "name,abundance[,error,...]".
func ReadGlycoforms(r io.Reader) ([]core.GlycoformRow, error) {
	var rows []core.GlycoformRow
	err := scanRows(r, func(lineNum int, key string, fields []float64) error {
		rows = append(rows, core.GlycoformRow{Name: key, Fields: fields})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadGlycation reads headerless glycation rows of the form
// "count,abundance[,error,...]". Counts must be nonnegative integers.
func ReadGlycation(r io.Reader) ([]core.GlycationRow, error) {
	var rows []core.GlycationRow
	err := scanRows(r, func(lineNum int, key string, fields []float64) error {
		count, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("line %d: invalid glycation count %q: %w", lineNum, key, err)
		}
		if count < 0 {
			return fmt.Errorf("line %d: glycation count must be nonnegative, got %d", lineNum, count)
		}
		rows = append(rows, core.GlycationRow{Count: count, Fields: fields})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadLibrary reads a glycan library with a header line naming at
// least the columns "glycan" and "composition" (composition may be
// empty per row). Composition strings may be quoted, since they
// contain commas themselves.
func ReadLibrary(r io.Reader) ([]core.LibraryEntry, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("library is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading library header: %w", err)
	}

	nameCol, compCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "glycan", "name":
			nameCol = i
		case "composition":
			compCol = i
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("library header lacks a 'glycan' column")
	}

	var entries []core.LibraryEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading library: %w", err)
		}
		if nameCol >= len(record) || strings.TrimSpace(record[nameCol]) == "" {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: empty glycan name", line)
		}
		entry := core.LibraryEntry{Name: strings.TrimSpace(record[nameCol])}
		if compCol >= 0 && compCol < len(record) {
			entry.Composition = strings.TrimSpace(record[compCol])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// scanRows reads headerless keyed rows, parsing every field after the
// key as a float. Empty trailing fields are dropped.
func scanRows(r io.Reader, emit func(lineNum int, key string, fields []float64) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, ",")
		key := strings.TrimSpace(cols[0])
		if key == "" {
			return fmt.Errorf("line %d: empty key column", lineNum)
		}

		var fields []float64
		for _, col := range cols[1:] {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			v, err := strconv.ParseFloat(col, 64)
			if err != nil {
				return fmt.Errorf("line %d: invalid numeric value %q: %w", lineNum, col, err)
			}
			fields = append(fields, v)
		}

		if err := emit(lineNum, key, fields); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading CSV: %w", err)
	}
	return nil
}
