package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/taskmate/daily-task-backend/internal/models"
	"github.com/taskmate/daily-task-backend/internal/repository"
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether date matches the YYYY-MM-DD wire format.
// Calendar validity is deliberately not checked.
func ValidDate(date string) bool {
	return dateFormat.MatchString(date)
}

// TaskEntryInput is an inbound task entry before normalization. Duration is
// a pointer so an absent value is distinguishable from an explicit zero.
type TaskEntryInput struct {
	ID         string   `json:"id"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	PlanTask   string   `json:"planTask"`
	ActualTask string   `json:"actualTask"`
	Category   string   `json:"category"`
	Duration   *float64 `json:"duration"`
}

// SummaryInput is an inbound summary before normalization. Each sub-field
// defaults independently; aggregates are never recomputed from the entries.
type SummaryInput struct {
	TotalPlannedTime *float64       `json:"totalPlannedTime"`
	TotalActualTime  *float64       `json:"totalActualTime"`
	Efficiency       *float64       `json:"efficiency"`
	Categories       map[string]any `json:"categories"`
}

// TaskService handles the save/load flow for per-day task lists.
type TaskService struct {
	dayRepo repository.TaskDayRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(dayRepo repository.TaskDayRepository) *TaskService {
	return &TaskService{dayRepo: dayRepo}
}

// SaveDay normalizes the payload and upserts it as the user's day. The
// stored tasks and summary are replaced wholesale, never merged.
func (s *TaskService) SaveDay(userID uint64, date string, entries []TaskEntryInput, summary SummaryInput) (*models.TaskDay, error) {
	day, err := s.dayRepo.Upsert(userID, date, NormalizeEntries(entries), NormalizeSummary(summary))
	if err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}
	return day, nil
}

// GetDay returns the user's day, or nil when none has been saved yet.
func (s *TaskService) GetDay(userID uint64, date string) (*models.TaskDay, error) {
	day, err := s.dayRepo.Find(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return day, nil
}

// NormalizeEntries fills defaults for inbound entries: a generated id when
// missing, category "Default", and duration 0. Already well-formed entries
// pass through unchanged.
func NormalizeEntries(entries []TaskEntryInput) models.TaskEntries {
	normalized := make(models.TaskEntries, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for i, in := range entries {
		entry := models.TaskEntry{
			ID:         in.ID,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			PlanTask:   in.PlanTask,
			ActualTask: in.ActualTask,
			Category:   in.Category,
		}

		if entry.ID == "" {
			entry.ID = newEntryID(seen)
		}
		seen[entry.ID] = struct{}{}

		if entry.Category == "" {
			entry.Category = "Default"
		}
		if in.Duration != nil {
			entry.Duration = *in.Duration
		}

		normalized[i] = entry
	}

	return normalized
}

// newEntryID generates an id unique within one save operation. No global
// uniqueness is guaranteed or needed.
func newEntryID(seen map[string]struct{}) string {
	for {
		id := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
		if _, taken := seen[id]; !taken {
			return id
		}
	}
}

// NormalizeSummary zero-fills omitted summary sub-fields.
func NormalizeSummary(in SummaryInput) models.Summary {
	summary := models.Summary{
		Categories: in.Categories,
	}
	if in.TotalPlannedTime != nil {
		summary.TotalPlannedTime = *in.TotalPlannedTime
	}
	if in.TotalActualTime != nil {
		summary.TotalActualTime = *in.TotalActualTime
	}
	if in.Efficiency != nil {
		summary.Efficiency = *in.Efficiency
	}
	if summary.Categories == nil {
		summary.Categories = map[string]any{}
	}
	return summary
}
