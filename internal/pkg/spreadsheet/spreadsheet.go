package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Range is an inclusive, zero-based block of cells.
type Range struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Sheet is one worksheet to render. StyleOf returns a Palette key per cell;
// keys missing from the palette leave the cell unstyled.
type Sheet struct {
	Name          string
	Rows          [][]string
	FirstColWidth float64
	ColWidth      float64
	Merges        []Range
	StyleOf       func(row, col int) string
}

// Palette maps style keys to excelize styles
type Palette map[string]*excelize.Style

// Write renders sheets into a single workbook and writes it to w.
func Write(w io.Writer, palette Palette, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", "error", err)
		}
	}()

	styleIDs := make(map[string]int, len(palette))
	for key, style := range palette {
		id, err := f.NewStyle(style)
		if err != nil {
			return fmt.Errorf("failed to register style %s: %w", key, err)
		}
		styleIDs[key] = id
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, styleIDs); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Render is Write into memory.
func Render(palette Palette, sheets ...Sheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, palette, sheets...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet Sheet, styleIDs map[string]int) error {
	width := 0
	for r, row := range sheet.Rows {
		if len(row) > width {
			width = len(row)
		}

		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for c, v := range row {
			values[c] = v
		}
		if err := f.SetSheetRow(sheet.Name, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}

		if sheet.StyleOf == nil {
			continue
		}
		for c := range row {
			id, ok := styleIDs[sheet.StyleOf(r, c)]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet.Name, cell, cell, id); err != nil {
				return fmt.Errorf("failed to style %s: %w", cell, err)
			}
		}
	}

	for _, m := range sheet.Merges {
		from, err := excelize.CoordinatesToCellName(m.FromCol+1, m.FromRow+1)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.ToCol+1, m.ToRow+1)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet.Name, from, to); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", from, to, err)
		}
	}

	return setWidths(f, sheet, width)
}

func setWidths(f *excelize.File, sheet Sheet, width int) error {
	if width == 0 {
		return nil
	}
	if sheet.FirstColWidth > 0 {
		if err := f.SetColWidth(sheet.Name, "A", "A", sheet.FirstColWidth); err != nil {
			return err
		}
	}
	if sheet.ColWidth > 0 && width > 1 {
		last, err := excelize.ColumnNumberToName(width)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, "B", last, sheet.ColWidth); err != nil {
			return err
		}
	}
	return nil
}
