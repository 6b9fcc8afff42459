package report

import (
	"strings"

	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
)

const worksLabel = "WORKS"

// BuildTaskMatrix groups task work details under one column per employee.
// Column keys are upper-cased employee names in first-seen order; tasks
// without an employee fall under UNASSIGNED. The first column carries a
// single "WORKS" label merged down across all data rows.
func BuildTaskMatrix(tasks []task.Task) report.Matrix {
	var keys []string
	groups := make(map[string][]string)
	for _, t := range tasks {
		name := t.EmployeeName()
		if name == "" {
			name = report.Unassigned
		}
		key := strings.ToUpper(name)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], strings.ToUpper(t.WorkDetail()))
	}

	maxTasks := 0
	for _, details := range groups {
		if len(details) > maxTasks {
			maxTasks = len(details)
		}
	}

	header := append([]string{""}, keys...)
	grid := report.Grid{header}
	for i := 0; i < maxTasks; i++ {
		row := make([]string, len(header))
		if i == 0 {
			row[0] = worksLabel
		}
		for c, key := range keys {
			if i < len(groups[key]) {
				row[c+1] = groups[key][i]
			}
		}
		grid = append(grid, row)
	}

	var merges []report.Merge
	if maxTasks > 1 {
		merges = append(merges, report.Merge{FromRow: 1, FromCol: 0, ToRow: maxTasks, ToCol: 0})
	}
	return report.NewMatrix(grid, TaskStyle, merges...)
}

func TaskStyle(_ report.Grid, row, col int) report.StyleCategory {
	switch {
	case row == 0 && col == 0:
		return report.StyleCorner
	case row == 0:
		return report.StyleTaskHeader
	case col == 0:
		return report.StyleWorksSidebar
	}
	return report.StyleTaskContent
}
