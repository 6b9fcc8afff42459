package report

import "fmt"

// Grid is an ordered list of rows of cell values, ready for a spreadsheet.
type Grid [][]string

// StyleCategory names how a cell is painted in the exported file.
type StyleCategory string

const (
	// Attendance matrix
	StyleHeader    StyleCategory = "HEADER"
	StyleDateLabel StyleCategory = "DATE_LABEL"
	StyleCheckIn   StyleCategory = "CHECK_IN"
	StyleCheckOut  StyleCategory = "CHECK_OUT"
	StylePlain     StyleCategory = "PLAIN"

	// Task matrix
	StyleCorner       StyleCategory = "CORNER"
	StyleTaskHeader   StyleCategory = "TASK_HEADER"
	StyleWorksSidebar StyleCategory = "WORKS_SIDEBAR"
	StyleTaskContent  StyleCategory = "TASK_CONTENT"
)

// Merge is an inclusive, zero-based cell range to merge.
type Merge struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Styler classifies a cell from its final content and position only.
type Styler func(grid Grid, row, col int) StyleCategory

// Matrix is a built grid plus its styling rule.
type Matrix struct {
	Grid   Grid
	Merges []Merge
	styler Styler
}

func NewMatrix(grid Grid, styler Styler, merges ...Merge) Matrix {
	return Matrix{Grid: grid, Merges: merges, styler: styler}
}

// StyleOf returns the style of a cell; coordinates outside the grid are PLAIN.
func (m Matrix) StyleOf(row, col int) StyleCategory {
	if row < 0 || row >= len(m.Grid) || col < 0 || col >= len(m.Grid[row]) || m.styler == nil {
		return StylePlain
	}
	return m.styler(m.Grid, row, col)
}

// Width is the number of columns of the header row.
func (m Matrix) Width() int {
	if len(m.Grid) == 0 {
		return 0
	}
	return len(m.Grid[0])
}

// DateOrder decides how date groups are ordered in the attendance matrix.
type DateOrder string

const (
	DateOrderChronological DateOrder = "chronological"
	DateOrderFirstSeen     DateOrder = "first_seen"
)

func ParseDateOrder(s string) (DateOrder, error) {
	switch DateOrder(s) {
	case DateOrderChronological, DateOrderFirstSeen:
		return DateOrder(s), nil
	case "":
		return DateOrderChronological, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDateOrder, s)
}
