// Package nav declares the application's route table and the guard that
// gates every transition on session state. The guard is pure: it returns a
// decision, and whoever sits at the application boundary performs it.
package nav

import "strings"

// Route metadata flags mirror what each screen demands of the session. A
// route may declare any subset; the guard's fixed priority order resolves
// combinations.
type Route struct {
	Path          string
	Name          string
	RequiresAuth  bool
	RequiresAdmin bool
	RequiresGuest bool
}

// Route names used as redirect targets.
const (
	RouteLogin     = "login"
	RouteDashboard = "dashboard"
)

// Routes is the full route table. Dashboard is the default authenticated
// landing page.
var Routes = []Route{
	{Path: "/login", Name: RouteLogin, RequiresGuest: true},
	{Path: "/register", Name: "register", RequiresGuest: true},
	{Path: "/forgot-password", Name: "forgot-password", RequiresGuest: true},
	{Path: "/dashboard", Name: RouteDashboard, RequiresAuth: true},
	{Path: "/reports", Name: "reports", RequiresAuth: true},
	{Path: "/reports/new", Name: "report-new", RequiresAuth: true},
	{Path: "/reports/:id", Name: "report-details", RequiresAuth: true},
	{Path: "/users", Name: "users", RequiresAuth: true, RequiresAdmin: true},
	{Path: "/weather", Name: "weather", RequiresAuth: true},
	{Path: "/analytics", Name: "analytics", RequiresAuth: true},
	{Path: "/settings", Name: "settings", RequiresAuth: true},
}

// Lookup finds a route by name. ok is false for unknown names.
func Lookup(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Match resolves a concrete path against the table, treating ":param"
// segments as wildcards. Unknown paths return ok=false (the not-found
// screen; the guard never sees them).
func Match(path string) (Route, bool) {
	for _, r := range Routes {
		if matchPath(r.Path, path) {
			return r, true
		}
	}
	return Route{}, false
}

func matchPath(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
