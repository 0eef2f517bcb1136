package fakeapi

import (
	"time"

	"github.com/jrsteele09/dept-console/internal/utils"
	"github.com/jrsteele09/dept-console/reports"
	"github.com/jrsteele09/dept-console/users"
	"github.com/pkg/errors"
)

const (
	DemoUsername = "admin"
	DemoPassword = "Admin@123"
)

// SeedDemo adds the default administrator, a trainer and sample list rows.
func (s *Server) SeedDemo() error {
	created := utils.NewTimestamp(time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC))

	accounts := []struct {
		user     users.User
		password string
	}{
		{
			user: users.User{
				Username:   DemoUsername,
				Email:      "admin@department.local",
				FullName:   "Department Administrator",
				Department: "Computer Technology",
				Position:   "Head of Department",
				IsActive:   true,
				CreatedAt:  created,
				Roles:      []string{string(users.RoleDepartmentHead)},
			},
			password: DemoPassword,
		},
		{
			user: users.User{
				Username:       "trainer",
				Email:          "trainer@department.local",
				FullName:       "Course Trainer",
				Department:     "Computer Technology",
				Specialization: "Programming",
				Position:       "Trainer",
				IsActive:       true,
				CreatedAt:      created,
				Roles:          []string{string(users.RoleTrainer)},
			},
			password: "Trainer@123",
		},
	}
	for _, a := range accounts {
		if _, err := s.AddAccount(a.user, a.password); err != nil {
			return errors.Wrapf(err, "seed account %s", a.user.Username)
		}
	}

	s.SetFixtures(DemoFixtures())
	return nil
}

func DemoFixtures() Fixtures {
	at := func(y int, m time.Month, d int) *utils.Timestamp {
		return utils.NewTimestamp(time.Date(y, m, d, 9, 0, 0, 0, time.UTC))
	}
	return Fixtures{
		KPIs: reports.KPIs{
			GraduationRate:             "85%",
			SuccessRateCriticalCourses: "70%",
			TrainerSatisfaction:        "4.5/5",
			TraineeSatisfaction:        "4.2/5",
			BehaviorIncidentsPerMonth:  15,
		},
		Statistics: reports.Statistics{
			TotalTrainees: 1425,
			TotalTrainers: 48,
			TraineesBySpecialization: map[string]int{
				"Programming":       443,
				"Technical Support": 455,
				"Networking":        527,
			},
			CriticalCoursesEnrollment: map[string]int{
				"Operating Systems 1":  300,
				"Algorithms and Logic": 250,
			},
		},
		QualityReports: []reports.QualityReport{
			{ID: 1, TemplateID: 1, Title: "Semester quality summary", Description: "KPI values for the semester", Status: "completed", GeneratedBy: 1, GeneratedAt: at(2024, 12, 20), CompletedAt: at(2024, 12, 20)},
			{ID: 2, TemplateID: 2, Title: "Accreditation evidence", Status: "pending", GeneratedBy: 1, GeneratedAt: at(2025, 1, 5)},
		},
		Initiatives: []reports.Initiative{
			{ID: 1, Title: "Peer tutoring programme", Description: "Second year trainees tutor first year", Type: "academic", Status: "in_progress", ProgressPercentage: 40, StartDate: at(2024, 10, 1)},
			{ID: 2, Title: "Lab network refresh", Type: "technical", Status: "approved", Budget: 25000},
		},
		BehaviorRecords: []reports.BehaviorRecord{
			{ID: 1, TraineeID: 4411, BehaviorType: "late attendance", Description: "Arrived 30 minutes late", DateRecorded: at(2024, 11, 3), RecordedByTrainerID: 2},
		},
		Surveys: []reports.Survey{
			{ID: 1, Title: "Trainer satisfaction", Description: "End of semester survey", CreatedAt: at(2024, 12, 1), IsActive: true},
			{ID: 2, Title: "Course evaluation", CreatedAt: at(2024, 6, 1), IsActive: false},
		},
	}
}
