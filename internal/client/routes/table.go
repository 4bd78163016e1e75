package routes

import "github.com/dmitrijs2005/udharoguru/internal/client/models"

// Kind says how a route is gated.
type Kind int

const (
	// KindProtected routes need a session and pass the route's Guard.
	KindProtected Kind = iota
	// KindAuthOnly routes are for visitors without a session.
	KindAuthOnly
	// KindHome routes only redirect to the landing route.
	KindHome
)

type Route struct {
	Path  string
	Kind  Kind
	Guard Guard
}

// Decide gates r for the given session state.
func (r Route) Decide(loading bool, p *models.Profile) Decision {
	switch r.Kind {
	case KindAuthOnly:
		return AuthOnly(loading, p)
	case KindHome:
		return Home(loading, p)
	default:
		return Protect(loading, p, r.Guard)
	}
}

// Table lists every known route.
var Table = []Route{
	{Path: "/", Kind: KindHome},
	{Path: Login, Kind: KindAuthOnly},
	{Path: Signup, Kind: KindAuthOnly},
	{Path: PrivateDashboard, Kind: KindProtected, Guard: EnsurePrivate},
	{Path: BusinessPayment, Kind: KindProtected, Guard: EnsureBusinessPending},
	{Path: BusinessKYC, Kind: KindProtected, Guard: EnsureBusinessPending},
	{Path: BusinessPending, Kind: KindProtected, Guard: EnsureBusinessPending},
	{Path: BusinessRejected, Kind: KindProtected, Guard: EnsureBusiness},
	{Path: BusinessDashboard, Kind: KindProtected, Guard: EnsureBusinessApproved},
	{Path: BusinessLedger, Kind: KindProtected, Guard: EnsureBusinessApproved},
	{Path: BusinessOCR, Kind: KindProtected, Guard: EnsureBusinessApproved},
	{Path: Customers, Kind: KindProtected},
	{Path: Transactions, Kind: KindProtected},
}

// Lookup finds the route for path. Unknown paths, including the bare
// /auth entry, fall back to the home redirect, matching a catch-all.
func Lookup(path string) Route {
	if path == Auth {
		return Route{Path: Auth, Kind: KindAuthOnly}
	}
	for _, r := range Table {
		if r.Path == path {
			return r
		}
	}
	return Route{Path: path, Kind: KindHome}
}
