package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/dept-console/reports"
	"github.com/rs/zerolog/log"
)

// ListPageData is shared by the list views: either Rows or Error is set.
type ListPageData[T any] struct {
	Rows  []T
	Error string
}

type DashboardPageData struct {
	KPIs       *reports.KPIs
	Statistics *reports.Statistics
	Error      string
}

func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := DashboardPageData{}
		status := http.StatusOK

		kpis, err := s.reports.KPIs(r.Context())
		if err == nil {
			data.KPIs = kpis
			data.Statistics, err = s.reports.Statistics(r.Context())
		}
		if err != nil {
			log.Err(err).Msg("Dashboard: fetch failed")
			data.Error = fetchErrorMessage(err)
			status = statusFor(err)
		}

		s.renderPage(w, status, "dashboard", "Dashboard", dashboardContent, data)
	}
}

func (s *Server) QualityReportsHandler() http.HandlerFunc {
	return listHandler(s, "quality-reports", "Quality reports", qualityReportsContent, s.reports.QualityReports)
}

func (s *Server) InitiativesHandler() http.HandlerFunc {
	return listHandler(s, "initiatives", "Initiatives", initiativesContent, s.reports.Initiatives)
}

func (s *Server) BehaviorManagementHandler() http.HandlerFunc {
	return listHandler(s, "behavior-management", "Behavior management", behaviorRecordsContent, s.reports.BehaviorRecords)
}

func (s *Server) SurveysHandler() http.HandlerFunc {
	return listHandler(s, "surveys", "Surveys", surveysContent, s.reports.Surveys)
}

func listHandler[T any](s *Server, activePage, title, contentTemplate string, fetch func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := fetch(r.Context())
		if err != nil {
			log.Err(err).Str("page", activePage).Msg("List fetch failed")
			s.renderPage(w, statusFor(err), activePage, title, contentTemplate, ListPageData[T]{Error: fetchErrorMessage(err)})
			return
		}
		s.renderPage(w, http.StatusOK, activePage, title, contentTemplate, ListPageData[T]{Rows: rows})
	}
}
