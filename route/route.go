// Package route maps navigation paths to views.
package route

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/philtim/zoneclock/zones"
)

// View is one of the navigable screens
type View int

const (
	Overview View = iota
	Brasilia
	StLouis
	Zone
)

// HandoffParam is the query parameter carrying the hand-off id
const HandoffParam = "handoff"

// Route is a parsed navigation target
type Route struct {
	View    View
	Segment string
	Handoff string
}

// Home is the overview route
func Home() Route {
	return Route{View: Overview}
}

// ForZone returns the dynamic view route for a zone, optionally carrying
// a hand-off id
func ForZone(zoneID, handoff string) Route {
	return Route{View: Zone, Segment: zones.Segment(zoneID), Handoff: handoff}
}

// Parse reads paths such as "/", "/brasilia" or
// "/zone/america_lima?handoff=<id>"
func Parse(path string) (Route, error) {
	u, err := url.Parse(strings.TrimSpace(path))
	if err != nil {
		return Route{}, fmt.Errorf("invalid route %q: %w", path, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "":
		return Home(), nil
	case len(parts) == 1 && parts[0] == zones.Brasilia:
		return Route{View: Brasilia}, nil
	case len(parts) == 1 && parts[0] == zones.StLouis:
		return Route{View: StLouis}, nil
	case len(parts) == 2 && parts[0] == "zone" && parts[1] != "":
		return Route{
			View:    Zone,
			Segment: strings.ToLower(parts[1]),
			Handoff: u.Query().Get(HandoffParam),
		}, nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// String renders the route as a path
func (r Route) String() string {
	switch r.View {
	case Brasilia:
		return "/" + zones.Brasilia
	case StLouis:
		return "/" + zones.StLouis
	case Zone:
		p := "/zone/" + r.Segment
		if r.Handoff != "" {
			p += "?" + url.Values{HandoffParam: {r.Handoff}}.Encode()
		}
		return p
	}
	return "/"
}
