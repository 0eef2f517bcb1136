package server

// Route path constants
const (
	RouteIndex = "/"

	// Credential entry and exit
	RouteLogin      = "/login"
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"

	// Protected views
	RouteDashboard          = "/dashboard"
	RouteQualityReports     = "/quality-reports"
	RouteInitiatives        = "/initiatives"
	RouteBehaviorManagement = "/behavior-management"
	RouteSurveys            = "/surveys"
	RouteProfile            = "/profile"
	RouteChangePassword     = "/auth/change-password"

	// Session state
	RouteSessionState = "/api/session"
	RouteSessionWS    = "/ws/session"
	RouteHealth       = "/health"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
