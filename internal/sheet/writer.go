// SPDX-License-Identifier: Apache-2.0

// Package sheet serializes a finalized record set to an xlsx workbook. It
// expects the output contract of the tabular package: a non-empty sequence of
// records all carrying the same column set.
package sheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/docsheet/docsheet/internal/tabular"
)

// SheetName is the single worksheet all records land on.
const SheetName = "Records"

const (
	minColWidth = 10
	maxColWidth = 60
)

// ErrNothingToExport rejects an export attempt with no columns or records,
// before any write happens.
var ErrNothingToExport = errors.New("nothing to export: empty record set")

// Generate builds an in-memory workbook: a bold header row from the column
// set, one row per record, column widths fitted to content.
func Generate(columns []string, records []*tabular.Record) (*excelize.File, error) {
	if len(columns) == 0 || len(records) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		row := make([]interface{}, len(columns))
		for j, col := range columns {
			v, _ := rec.Get(col)
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := styleHeader(f, len(columns)); err != nil {
		return nil, err
	}
	if err := fitColumns(f, columns, records); err != nil {
		return nil, err
	}
	return f, nil
}

// Write generates the workbook and saves it to path.
func Write(path string, columns []string, records []*tabular.Record) error {
	f, err := Generate(columns, records)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func styleHeader(f *excelize.File, width int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, "A1", last, style)
}

func fitColumns(f *excelize.File, columns []string, records []*tabular.Record) error {
	for i, col := range columns {
		width := len(col)
		for _, rec := range records {
			if v, _ := rec.Get(col); len(v) > width {
				width = len(v)
			}
		}
		w := float64(width) + 2
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
