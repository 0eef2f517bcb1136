package fakeapi

import (
	"net/http"
)

func (s *Server) kpis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures().KPIs)
}

func (s *Server) statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures().Statistics)
}

// qualityReports answers with the paginated envelope.
func (s *Server) qualityReports(w http.ResponseWriter, r *http.Request) {
	rows := s.fixtures().QualityReports
	writeJSON(w, http.StatusOK, map[string]any{
		"reports":      nonNil(rows),
		"total":        len(rows),
		"pages":        1,
		"current_page": 1,
	})
}

func (s *Server) initiatives(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"initiatives": nonNil(s.fixtures().Initiatives)})
}

func (s *Server) behaviorRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.fixtures().BehaviorRecords))
}

func (s *Server) surveys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.fixtures().Surveys))
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
