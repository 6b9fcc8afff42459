package dashboard

import "github.com/adspro/dashboard-backend-go/internal/domain/task"

// RecentTaskLimit is how many of the latest tasks the overview shows.
const RecentTaskLimit = 5

// Stats is the backend's task counter summary
type Stats struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	Pending         int `json:"pending"`
	ActiveEmployees int `json:"activeEmployees"`
}

type StatsResponse struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	Pending         int `json:"pending"`
	ActiveEmployees int `json:"active_employees"`
}

type OverviewResponse struct {
	Stats       StatsResponse       `json:"stats"`
	RecentTasks []task.TaskResponse `json:"recent_tasks"`
}
