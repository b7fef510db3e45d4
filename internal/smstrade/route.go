package smstrade

import "strings"

// Route is the provider delivery tier.
type Route string

const (
	RouteBasic  Route = "basic"
	RouteGold   Route = "gold"
	RouteDirect Route = "direct"
)

// DefaultRoute is used when no route is given.
const DefaultRoute = RouteBasic

// ParseRoute maps a route token to a Route. Unknown tokens fail with ErrInvalidRoute.
func ParseRoute(value string) (Route, error) {
	switch r := Route(strings.TrimSpace(value)); r {
	case RouteBasic, RouteGold, RouteDirect:
		return r, nil
	default:
		return "", &FieldError{Field: "route", Value: value, Err: ErrInvalidRoute}
	}
}

func (r Route) String() string {
	return string(r)
}

// AllowsSender reports whether a custom sender id may be used on the route.
func (r Route) AllowsSender() bool {
	return r == RouteGold || r == RouteDirect
}
