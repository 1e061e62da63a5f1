package ingest_service

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/richardlehane/mscfb"
)

// BIFF8 sheets hold at most 256 columns.
const legacyMaxColumns = 256

var compoundSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

func isCompoundFile(data []byte) bool {
	return bytes.HasPrefix(data, compoundSignature)
}

// readLegacySpreadsheet reads the first sheet of a binary (BIFF) workbook.
// The container is walked with mscfb first: the xls reader exits the process
// on broken sector chains instead of returning an error.
func readLegacySpreadsheet(data []byte) (res *app.IngestResult, err error) {
	if err := checkWorkbookStream(data); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("malformed xls workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	grid := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		grid = append(grid, legacyRow(sheet, i))
	}

	// BIFF keeps no cell type next to the text the reader returns
	return tableFromGrid(grid, func(_, _ int, raw string) any {
		return parseValue(raw)
	})
}

// legacyRow returns the cells of row i with trailing blanks trimmed.
// Row panics for rows the sheet never stored; those read as empty. Without
// a ROW record the last column is unknown and the full width is scanned.
func legacyRow(sheet *xls.WorkSheet, i int) (cells []string) {
	defer func() {
		if recover() != nil {
			cells = nil
		}
	}()

	row := sheet.Row(i)
	width := row.LastCol()
	if width <= 0 || width > legacyMaxColumns {
		width = legacyMaxColumns
	}
	cells = make([]string, width)
	last := -1
	for c := 0; c < width; c++ {
		if cells[c] = row.Col(c); cells[c] != "" {
			last = c
		}
	}
	return cells[:last+1]
}

// checkWorkbookStream verifies the compound file and reads its workbook
// stream end to end.
func checkWorkbookStream(data []byte) error {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("compound file: %w", err)
	}

	for f, err := doc.Next(); err == nil; f, err = doc.Next() {
		if f.Name != "Workbook" && f.Name != "Book" {
			continue
		}
		if _, err := io.Copy(io.Discard, f); err != nil {
			return fmt.Errorf("workbook stream: %w", err)
		}
		return nil
	}
	return errors.New("compound file has no workbook stream")
}
