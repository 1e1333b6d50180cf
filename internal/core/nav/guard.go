package nav

import (
	"net/url"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

// Decision is the guard's verdict on one transition. When Allow is false,
// RedirectName names the route to go to instead; RedirectQuery carries the
// originally intended path for post-login return when applicable.
type Decision struct {
	Allow         bool
	RedirectName  string
	RedirectQuery url.Values
}

// Guard evaluates a transition to route under the given session. Rules are
// checked in fixed priority order; the first match wins:
//
//  1. auth required, session anonymous      → login (carrying the return path)
//  2. admin required, session not admin     → dashboard
//  3. guest-only, session authenticated     → dashboard
//  4. otherwise                             → allow
//
// Rule 1 runs before rule 2, so rule 2 only ever fires for authenticated
// non-admins even on a route that declared RequiresAdmin alone.
func Guard(route Route, session domain.Session) Decision {
	if route.RequiresAuth && session.Anonymous() {
		return Decision{
			RedirectName:  RouteLogin,
			RedirectQuery: url.Values{"redirect": {route.Path}},
		}
	}
	if route.RequiresAdmin && !session.Admin() {
		return Decision{RedirectName: RouteDashboard}
	}
	if route.RequiresGuest && !session.Anonymous() {
		return Decision{RedirectName: RouteDashboard}
	}
	return Decision{Allow: true}
}
