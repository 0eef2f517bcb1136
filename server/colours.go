package server

import "github.com/jrsteele09/dept-console/routegate"

// ANSI escapes for the DEV route log
const (
	Red        = "\033[31m"
	Green      = "\033[32m"
	Yellow     = "\033[33m"
	Blue       = "\033[34m"
	Magenta    = "\033[35m"
	Cyan       = "\033[36m"
	Gray       = "\033[90m"
	ResetColor = "\033[0m"
)

var methodColors = map[string]string{
	"GET":     Green,
	"POST":    Blue,
	"PUT":     Cyan,
	"OPTIONS": Magenta,
}

var actionColors = map[routegate.Action]string{
	routegate.Render:   Green,
	routegate.Wait:     Yellow,
	routegate.Redirect: Cyan,
}

func colourAction(a routegate.Action) string {
	if colour, ok := actionColors[a]; ok {
		return colour + a.String() + ResetColor
	}
	return Gray + a.String() + ResetColor
}
