package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
)

const (
	dateHeader     = "Date"
	checkInPrefix  = "IN:"
	checkOutPrefix = "OUT:"

	// ClockLayout renders hour and minute on a 12-hour clock.
	ClockLayout = "03:04 PM"
)

// MatrixOptions controls how attendance records are laid out.
type MatrixOptions struct {
	DateOrder report.DateOrder
	// Location is the viewer's zone for check-in/out times; nil means time.Local.
	Location *time.Location
}

// FormatClock renders t as "03:04 PM" in loc.
func FormatClock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(ClockLayout)
}

// BuildAttendanceMatrix lays records out as one column per employee and one
// block of rows per date. Each block holds as many rows as the busiest
// employee logged events that day, followed by a blank separator row.
//
// Employees keep first-seen order. Records must be validated beforehand;
// a record for an employee that was never registered is a programming error.
func BuildAttendanceMatrix(records []attendance.Record, opts MatrixOptions) report.Matrix {
	var (
		employeeIDs []string
		names       = make(map[string]string)
		dates       []string
		seenDates   = make(map[string]bool)
	)
	for _, r := range records {
		if _, ok := names[r.EmployeeID]; !ok {
			names[r.EmployeeID] = r.EmployeeName
			employeeIDs = append(employeeIDs, r.EmployeeID)
		}
		if !seenDates[r.Date] {
			seenDates[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	if opts.DateOrder != report.DateOrderFirstSeen {
		sort.SliceStable(dates, func(i, j int) bool { return dates[i] < dates[j] })
	}

	column := make(map[string]int, len(employeeIDs))
	header := make([]string, 0, len(employeeIDs)+1)
	header = append(header, dateHeader)
	for i, id := range employeeIDs {
		column[id] = i
		header = append(header, names[id])
	}
	width := len(header)

	byDate := make(map[string][]attendance.Record, len(dates))
	for _, r := range records {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	grid := report.Grid{header}
	for _, date := range dates {
		events := make([][]string, len(employeeIDs))
		for _, r := range byDate[date] {
			col, ok := column[r.EmployeeID]
			if !ok {
				panic(fmt.Sprintf("attendance matrix: employee %q has no column", r.EmployeeID))
			}
			if r.CheckIn != nil {
				events[col] = append(events[col], checkInPrefix+" "+FormatClock(*r.CheckIn, opts.Location))
			}
			if r.CheckOut != nil {
				events[col] = append(events[col], checkOutPrefix+" "+FormatClock(*r.CheckOut, opts.Location))
			}
		}

		maxRows := 0
		for _, e := range events {
			if len(e) > maxRows {
				maxRows = len(e)
			}
		}

		for i := 0; i < maxRows; i++ {
			row := make([]string, width)
			if i == 0 {
				row[0] = date
			}
			for col, e := range events {
				if i < len(e) {
					row[col+1] = e[i]
				}
			}
			grid = append(grid, row)
		}
		grid = append(grid, make([]string, width))
	}

	return report.NewMatrix(grid, AttendanceStyle)
}

// AttendanceStyle classifies a cell by position and content only.
func AttendanceStyle(grid report.Grid, row, col int) report.StyleCategory {
	value := grid[row][col]
	switch {
	case row == 0:
		return report.StyleHeader
	case col == 0 && value != "":
		return report.StyleDateLabel
	case strings.HasPrefix(value, checkInPrefix):
		return report.StyleCheckIn
	case strings.HasPrefix(value, checkOutPrefix):
		return report.StyleCheckOut
	}
	return report.StylePlain
}
