package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
)

// ContentType is the media type of an XLSX workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	defaultColWidth = 18
	maxSheetName    = 31
)

// Workbook builds a single sheet workbook from t with a bold header row.
// The caller must Close the returned file.
func Workbook(t Table) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := sheetName(t.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("export: naming sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &t.Headers); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("export: writing header: %w", err)
	}
	if len(t.Headers) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: header style: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: styling header: %w", err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.Headers))
		if err := f.SetColWidth(sheet, "A", lastCol, defaultColWidth); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: column width: %w", err)
		}
	}

	for i := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &t.Rows[i]); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: writing row %d: %w", i, err)
		}
	}
	return f, nil
}

// WriteXLSX writes t as a workbook to w.
func WriteXLSX(w io.Writer, t Table) error {
	f, err := Workbook(t)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}

// Filename names the download for a list kind and range, e.g.
// "points-distributed_2024-06-01_2024-06-30.xlsx".
func Filename(kind points.Kind, r daterange.Range) string {
	from, to := r.ISO()
	return fmt.Sprintf("points-%s_%s_%s.xlsx", kind, from, to)
}

func sheetName(title string) string {
	name := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "").Replace(title)
	if name == "" {
		return "Sheet1"
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}
