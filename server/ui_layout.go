package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/jrsteele09/dept-console/users"
	"github.com/rs/zerolog/log"
)

type navItem struct {
	Key   string
	Path  string
	Label string
}

// navItems in display order. An empty permission means every signed in user
// sees the link.
var navItems = []struct {
	navItem
	permission users.Permission
}{
	{navItem{"dashboard", RouteDashboard, "Dashboard"}, ""},
	{navItem{"quality-reports", RouteQualityReports, "Quality reports"}, users.PermViewReports},
	{navItem{"initiatives", RouteInitiatives, "Initiatives"}, users.PermViewInitiatives},
	{navItem{"behavior-management", RouteBehaviorManagement, "Behavior management"}, users.PermViewTraineeBehavior},
	{navItem{"surveys", RouteSurveys, "Surveys"}, users.PermViewSurveys},
}

func navFor(user *users.User) []navItem {
	items := make([]navItem, 0, len(navItems))
	for _, item := range navItems {
		if item.permission == "" || user.HasPermission(string(item.permission)) {
			items = append(items, item.navItem)
		}
	}
	return items
}

// renderPage renders contentTemplate with content and wraps it in the layout
func (s *Server) renderPage(w http.ResponseWriter, status int, activePage, pageTitle, contentTemplate string, content any) {
	var contentBuf bytes.Buffer
	if err := s.templates[contentTemplate].Execute(&contentBuf, content); err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("Failed to render content")
		http.Error(w, "Failed to render content", http.StatusInternalServerError)
		return
	}

	user := s.session.User()
	data := map[string]any{
		"AppName":    s.config.GetAppName(),
		"UserName":   user.DisplayName(),
		"User":       user,
		"Nav":        navFor(user),
		"ActivePage": activePage,
		"PageTitle":  pageTitle,
		"Content":    template.HTML(contentBuf.String()),
	}
	s.renderTemplate(w, status, layoutTemplate, data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates[name].Execute(&buf, data); err != nil {
		log.Err(err).Str("template", name).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

const contentTypeHTML = "text/html; charset=utf-8"

// WaitingPageData drives the neutral indicator shown while resume runs
type WaitingPageData struct {
	AppName string
	WSPath  string
}

// renderWaiting answers 503 so clients and proxies know to retry.
func (s *Server) renderWaiting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	s.renderTemplate(w, http.StatusServiceUnavailable, waitingTemplate, WaitingPageData{
		AppName: s.config.GetAppName(),
		WSPath:  RouteSessionWS,
	})
}
