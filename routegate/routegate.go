// Package routegate decides whether a navigation may render. It is a pure
// function of the session state and does no I/O.
package routegate

type State struct {
	Loading       bool
	Authenticated bool
}

type Action int

const (
	// Render the requested view.
	Render Action = iota
	// Wait shows the neutral waiting indicator until loading finishes.
	Wait
	// Redirect sends the visitor to Decision.Location.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Render:
		return "render"
	case Wait:
		return "wait"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

type Decision struct {
	Action   Action
	Location string
}

type Gate struct {
	LoginPath   string // credential-entry view
	DefaultPath string // where an authenticated visitor lands
}

// Protected gates a view that needs a session.
func (g Gate) Protected(s State) Decision {
	switch {
	case s.Loading:
		return Decision{Action: Wait}
	case !s.Authenticated:
		return Decision{Action: Redirect, Location: g.LoginPath}
	default:
		return Decision{Action: Render}
	}
}

// CredentialEntry gates the login view: an authenticated visitor is sent away.
func (g Gate) CredentialEntry(s State) Decision {
	if s.Authenticated {
		return Decision{Action: Redirect, Location: g.DefaultPath}
	}
	return Decision{Action: Render}
}
