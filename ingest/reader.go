package ingest

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/teranos/lineage/errors"
)

// ReadCSV reads every record of a CSV stream.
// Quotes are handled leniently and rows may have differing lengths;
// exports from spreadsheet tools are rarely strict.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed csv")
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// ReadXLSX reads the rows of one sheet. An empty sheet name selects the first sheet.
// Cells are read unformatted so date cells arrive as Excel serials.
func ReadXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.ErrEmptyTable
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	return rows, nil
}
