package report

import (
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/pkg/spreadsheet"
	"github.com/xuri/excelize/v2"
)

const (
	attendanceSheet = "Attendance Report"
	taskSheet       = "Task Analysis"
)

func thin(sides ...string) []excelize.Border {
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: "#000000", Style: 1})
	}
	return borders
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

var attendancePalette = spreadsheet.Palette{
	string(report.StyleHeader): {
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 12},
		Fill:      fill("#0F172A"),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    []excelize.Border{{Type: "bottom", Color: "#000000", Style: 2}},
	},
	string(report.StyleDateLabel): {
		Font:   &excelize.Font{Bold: true, Color: "#1E293B"},
		Fill:   fill("#F1F5F9"),
		Border: []excelize.Border{{Type: "right", Color: "#CBD5E1", Style: 1}},
	},
	string(report.StyleCheckIn): {
		Font:      &excelize.Font{Bold: true, Color: "#15803D"},
		Fill:      fill("#DCFCE7"),
		Alignment: &excelize.Alignment{Horizontal: "left"},
	},
	string(report.StyleCheckOut): {
		Font:      &excelize.Font{Bold: true, Color: "#B91C1C"},
		Fill:      fill("#FEE2E2"),
		Alignment: &excelize.Alignment{Horizontal: "left"},
	},
}

var taskPalette = spreadsheet.Palette{
	string(report.StyleCorner): {
		Border: thin("right", "bottom"),
	},
	string(report.StyleTaskHeader): {
		Font:      &excelize.Font{Bold: true, Color: "#000000", Size: 12},
		Fill:      fill("#C5E0B4"),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin("top", "bottom", "left", "right"),
	},
	string(report.StyleWorksSidebar): {
		Font:      &excelize.Font{Bold: true, Italic: true, Color: "#FFFFFF", Size: 14},
		Fill:      fill("#FF0000"),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin("top", "bottom", "left", "right"),
	},
	string(report.StyleTaskContent): {
		Font:      &excelize.Font{Bold: true, Italic: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    thin("bottom", "right"),
	},
}

// toSheet adapts a built matrix to the spreadsheet writer
func toSheet(name string, m report.Matrix, firstColWidth, colWidth float64) spreadsheet.Sheet {
	merges := make([]spreadsheet.Range, 0, len(m.Merges))
	for _, mg := range m.Merges {
		merges = append(merges, spreadsheet.Range(mg))
	}
	return spreadsheet.Sheet{
		Name:          name,
		Rows:          m.Grid,
		FirstColWidth: firstColWidth,
		ColWidth:      colWidth,
		Merges:        merges,
		StyleOf: func(row, col int) string {
			return string(m.StyleOf(row, col))
		},
	}
}
