package export

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one worksheet: a bold header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Widths  []float64
	Rows    [][]any
}

// Write renders the sheet as an xlsx workbook.
func Write(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheet.Name); err != nil {
		return nil, errors.Wrap(err, "create sheet")
	}
	if sheet.Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, errors.Wrap(err, "drop default sheet")
		}
	}
	index, err := f.GetSheetIndex(sheet.Name)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}

	for col, header := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
			return nil, errors.Wrapf(err, "set header %s", cell)
		}
		if err := f.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
			return nil, errors.Wrap(err, "set header style")
		}
	}

	for col, width := range sheet.Widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return nil, errors.Wrapf(err, "set width of %s", name)
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "write row %d", i+2)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}
