package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/trendscout/skimmer/internal/model"
)

// ReadProductsFile loads raw product records from a local .csv or .xlsx
// file using the same header names as the sheet export.
func ReadProductsFile(path string) ([]model.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVFile(path)
	case ".xlsx":
		return readXLSXFile(path)
	default:
		return nil, eris.Errorf("source: unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func readCSVFile(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open csv file")
	}
	defer f.Close()

	return ParseCSV(f)
}

func readXLSXFile(path string) ([]model.RawRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open xlsx file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("source: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) < 2 {
		return nil, nil
	}

	header := rowToStrings(sheet.Rows[0])
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	records := make([]model.RawRecord, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		rec := make(model.RawRecord, len(header))
		for i, col := range header {
			if col == "" || i >= len(cells) {
				continue
			}
			rec[col] = cells[i]
		}
		records = append(records, rec)
	}
	return records, nil
}

func rowToStrings(row *xlsx.Row) []string {
	out := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = cell.String()
	}
	return out
}
