package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	pkgdecimal "github.com/wgoal/wealth-planner/pkg/decimal"
)

// AssetImport sums an asset-value column from a tabular export (Kubera-style
// CSV) to obtain the current net worth. The value column is an explicit,
// user-supplied mapping; nothing is guessed from column names.
type AssetImport struct {
	// ValueColumn is the exact header of the column holding asset values.
	ValueColumn string
}

// LoadTotal reads the CSV and returns the sum of the value column. Currency
// symbols and thousands separators in cells are stripped before parsing.
// Blank cells are skipped; any other unparseable cell is an input error.
func (ai *AssetImport) LoadTotal(filename string) (decimal.Decimal, error) {
	f, err := os.Open(filename)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to open assets file %s: %w", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return decimal.Zero, fmt.Errorf("assets file has no data rows")
	}

	header := records[0]
	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == ai.ValueColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return decimal.Zero, fmt.Errorf("value column %q not found; available columns: %s",
			ai.ValueColumn, strings.Join(trimmedHeaders(header), ", "))
	}

	total := decimal.Zero
	for rowNum, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		amount, err := pkgdecimal.ParseLoose(cell)
		if err != nil {
			return decimal.Zero, fmt.Errorf("row %d: %w", rowNum+2, err)
		}
		total = total.Add(amount.Decimal)
	}

	return total, nil
}

func trimmedHeaders(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}
