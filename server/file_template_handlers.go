package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*
var templateFiles embed.FS

const (
	layoutTemplate  = "layout.html"
	loginTemplate   = "login.html"
	waitingTemplate = "waiting.html"

	dashboardContent       = "dashboard_content.html"
	qualityReportsContent  = "quality_reports_content.html"
	initiativesContent     = "initiatives_content.html"
	behaviorRecordsContent = "behavior_records_content.html"
	surveysContent         = "surveys_content.html"
	profileContent         = "profile_content.html"
)

var pageTemplates = []string{
	layoutTemplate,
	loginTemplate,
	waitingTemplate,
	dashboardContent,
	qualityReportsContent,
	initiativesContent,
	behaviorRecordsContent,
	surveysContent,
	profileContent,
}

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Parse(string(content))
}

func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := ParseTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
