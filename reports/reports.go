// Package reports fetches the list and report views shown by the console.
// Each fetch either returns its rows or an error for the page to show inline.
package reports

import (
	"github.com/jrsteele09/dept-console/internal/utils"
)

const (
	KPIsPath            = "/api/dashboard/kpis"
	StatisticsPath      = "/api/dashboard/statistics"
	QualityReportsPath  = "/api/quality/reports"
	InitiativesPath     = "/api/initiatives"
	BehaviorRecordsPath = "/api/behavior_records"
	SurveysPath         = "/api/surveys"
)

type KPIs struct {
	GraduationRate             string `json:"graduation_rate"`
	SuccessRateCriticalCourses string `json:"success_rate_critical_courses"`
	TrainerSatisfaction        string `json:"trainer_satisfaction"`
	TraineeSatisfaction        string `json:"trainee_satisfaction"`
	BehaviorIncidentsPerMonth  int    `json:"behavior_incidents_per_month"`
}

type Statistics struct {
	TotalTrainees             int            `json:"total_trainees"`
	TotalTrainers             int            `json:"total_trainers"`
	TraineesBySpecialization  map[string]int `json:"trainees_by_specialization"`
	CriticalCoursesEnrollment map[string]int `json:"critical_courses_enrollment"`
}

// QualityReport is a generated quality report. Status is one of pending,
// generating, completed or failed.
type QualityReport struct {
	ID           int              `json:"id"`
	TemplateID   int              `json:"template_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	FilePath     string           `json:"file_path,omitempty"`
	FileSize     int              `json:"file_size,omitempty"`
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	GeneratedBy  int              `json:"generated_by,omitempty"`
	GeneratedAt  *utils.Timestamp `json:"generated_at,omitempty"`
	CompletedAt  *utils.Timestamp `json:"completed_at,omitempty"`
}

type Initiative struct {
	ID                 int              `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	Type               string           `json:"type,omitempty"`
	Status             string           `json:"status"`
	Budget             float64          `json:"budget,omitempty"`
	ProgressPercentage float64          `json:"progress_percentage,omitempty"`
	StartDate          *utils.Timestamp `json:"start_date,omitempty"`
	EndDate            *utils.Timestamp `json:"end_date,omitempty"`
}

type BehaviorRecord struct {
	ID                  int              `json:"id"`
	TraineeID           int              `json:"trainee_id"`
	BehaviorType        string           `json:"behavior_type"`
	Description         string           `json:"description,omitempty"`
	DateRecorded        *utils.Timestamp `json:"date_recorded,omitempty"`
	RecordedByTrainerID int              `json:"recorded_by_trainer_id"`
}

type Survey struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	CreatedAt   *utils.Timestamp `json:"created_at,omitempty"`
	IsActive    bool             `json:"is_active"`
}
