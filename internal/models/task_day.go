package models

import "time"

// TaskEntry is a single planned/actual work item within a day.
type TaskEntry struct {
	ID         string  `json:"id"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	PlanTask   string  `json:"planTask"`
	ActualTask string  `json:"actualTask"`
	Category   string  `json:"category"`
	Duration   float64 `json:"duration"`
}

type TaskEntries []TaskEntry

// Summary is the caller-supplied aggregate for a day. The store never
// recomputes it from the entries.
type Summary struct {
	TotalPlannedTime float64        `json:"totalPlannedTime"`
	TotalActualTime  float64        `json:"totalActualTime"`
	Efficiency       float64        `json:"efficiency"`
	Categories       map[string]any `json:"categories"`
}

// TaskDay holds all task entries and their summary for one user on one
// calendar date. Exactly one row exists per (user_id, date).
type TaskDay struct {
	ID        uint64      `gorm:"primarykey" json:"id"`
	UserID    uint64      `gorm:"not null;uniqueIndex:idx_task_days_user_date" json:"user_id"`
	Date      string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_task_days_user_date" json:"date"`
	Tasks     TaskEntries `gorm:"serializer:json" json:"tasks"`
	Summary   Summary     `gorm:"serializer:json" json:"summary"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
