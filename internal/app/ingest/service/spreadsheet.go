package ingest_service

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/xuri/excelize/v2"
)

// readSpreadsheet reads the first sheet only. The first non-empty row is
// the header; numeric cells come back as int64 or float64. Legacy binary
// workbooks are told apart from xlsx by their signature, not the extension.
func readSpreadsheet(data []byte) (*app.IngestResult, error) {
	if isCompoundFile(data) {
		return readLegacySpreadsheet(data)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	return tableFromGrid(grid, func(r, c int, raw string) any {
		cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
		return cellValue(f, sheet, cell, raw)
	})
}

// tableFromGrid turns a sheet grid into columns and rows. value converts
// the non-empty text found at grid[r][c].
func tableFromGrid(grid [][]string, value func(r, c int, raw string) any) (*app.IngestResult, error) {
	start := 0
	for start < len(grid) && blankRecord(grid[start]) {
		start++
	}
	if start == len(grid) {
		return nil, errors.New("sheet is empty")
	}

	var (
		headerCells = grid[start]
		body        = grid[start+1:]
		width       = len(headerCells)
	)
	for _, r := range body {
		width = max(width, len(r))
	}

	// columns with neither a header nor any data are dropped
	var keep []int
	var names []string
	for c := 0; c < width; c++ {
		var h string
		if c < len(headerCells) {
			h = headerCells[c]
		}
		if strings.TrimSpace(h) == "" && columnBlank(body, c) {
			continue
		}
		keep = append(keep, c)
		names = append(names, h)
	}
	columns := normalizeHeader(names)

	rows := make([]app.RawRow, 0, len(body))
	for i, record := range body {
		if blankRecord(record) {
			continue
		}

		row := make(app.RawRow, len(columns))
		for k, c := range keep {
			if c >= len(record) || record[c] == "" {
				continue
			}
			row[columns[k]] = value(start+1+i, c, record[c])
		}
		rows = append(rows, row)
	}

	return &app.IngestResult{Columns: columns, Rows: rows}, nil
}

func columnBlank(rows [][]string, c int) bool {
	for _, r := range rows {
		if c < len(r) && strings.TrimSpace(r[c]) != "" {
			return false
		}
	}
	return true
}

func cellValue(f *excelize.File, sheet, cell, raw string) any {
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return parseValue(raw)
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	}
	return parseValue(raw)
}

func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
