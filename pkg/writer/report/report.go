// Package report writes the corrected-result table in CSV format.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cdl-biosimilars/cafog/pkg/core"
)

var header = []string{
	"glycoform",
	"abundance",
	"abundance_error",
	"corr_abundance",
	"corr_abundance_error",
	"change",
}

// WriteCSV writes the result rows ordered by descending corrected
// abundance.
func WriteCSV(w io.Writer, result *core.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range result.SortedByCorrected() {
		record := []string{
			row.Glycoform,
			formatFloat(row.Observed.Value),
			formatFloat(row.Observed.Err),
			formatFloat(row.Corrected.Value),
			formatFloat(row.Corrected.Err),
			formatFloat(row.Change),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %q: %w", row.Glycoform, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
