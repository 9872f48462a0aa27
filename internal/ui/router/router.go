// Package router maps navigation paths to the views the terminal UI hosts.
package router

import (
	"fmt"
	"strings"

	apperrors "sabibi/internal/platform/errors"
)

type ViewID string

const (
	ViewTimer ViewID = "timer"
	ViewStats ViewID = "stats"
)

const (
	PathRoot  = "/"
	PathHome  = "/home"
	PathStats = "/stats"
)

var routes = map[string]ViewID{
	PathRoot:  ViewTimer,
	PathHome:  ViewTimer,
	PathStats: ViewStats,
}

// Views lists every view in tab order.
func Views() []ViewID {
	return []ViewID{ViewTimer, ViewStats}
}

// Resolve returns the view for path. Empty input is the root; a trailing
// slash and letter case are ignored.
func Resolve(path string) (ViewID, error) {
	normalized := strings.ToLower(strings.TrimSpace(path))
	if normalized == "" {
		normalized = PathRoot
	}
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	if len(normalized) > 1 {
		normalized = strings.TrimRight(normalized, "/")
		if normalized == "" {
			normalized = PathRoot
		}
	}
	view, ok := routes[normalized]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownRoute, path)
	}
	return view, nil
}

// Path is the canonical path of view.
func Path(view ViewID) string {
	switch view {
	case ViewStats:
		return PathStats
	default:
		return PathRoot
	}
}

func (v ViewID) Title() string {
	switch v {
	case ViewStats:
		return "Stats"
	case ViewTimer:
		return "Timer"
	default:
		return string(v)
	}
}
