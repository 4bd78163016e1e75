package routes

import "github.com/dmitrijs2005/udharoguru/internal/client/models"

// Decision is the outcome of gating a route. Exactly one of Allow, Wait or
// a non-empty Redirect is set.
type Decision struct {
	Allow    bool
	Redirect string
	// Wait means the session is still bootstrapping.
	Wait bool
}

func allow() Decision { return Decision{Allow: true} }

func redirect(path string) Decision { return Decision{Redirect: path} }

// Denied reports whether the route must not be entered.
func (d Decision) Denied() bool { return !d.Allow && !d.Wait }

func (d Decision) String() string {
	switch {
	case d.Wait:
		return "wait"
	case d.Allow:
		return "allow"
	default:
		return "redirect " + d.Redirect
	}
}

// Guard decides whether an authenticated profile may enter a route.
// It is never called with a nil profile.
type Guard func(p *models.Profile) Decision

func EnsurePrivate(p *models.Profile) Decision {
	if !p.IsPrivate() {
		return redirect(ResolveHome(p))
	}
	return allow()
}

func EnsureBusiness(p *models.Profile) Decision {
	if !p.IsBusiness() {
		return redirect(ResolveHome(p))
	}
	return allow()
}

// EnsureBusinessApproved admits approved business accounts. The account
// type is checked before the status.
func EnsureBusinessApproved(p *models.Profile) Decision {
	if !p.IsBusiness() {
		return redirect(ResolveHome(p))
	}
	if p.Stage() != models.StatusApproved {
		return redirect(BusinessKYC)
	}
	return allow()
}

// EnsureBusinessPending admits business accounts that are not approved yet.
func EnsureBusinessPending(p *models.Profile) Decision {
	if !p.IsBusiness() {
		return redirect(ResolveHome(p))
	}
	if p.Stage() == models.StatusApproved {
		return redirect(BusinessDashboard)
	}
	return allow()
}

// Protect gates a route that needs a session. A nil guard admits any
// authenticated profile.
func Protect(loading bool, p *models.Profile, guard Guard) Decision {
	if loading {
		return Decision{Wait: true}
	}
	if p == nil {
		return redirect(Auth)
	}
	if guard == nil {
		return allow()
	}
	return guard(p)
}

// AuthOnly gates the login and signup pages: a logged-in user is sent home.
func AuthOnly(loading bool, p *models.Profile) Decision {
	if loading {
		return Decision{Wait: true}
	}
	if p != nil {
		return redirect(ResolveHome(p))
	}
	return allow()
}

// Home always redirects to the landing route once loading is over.
func Home(loading bool, p *models.Profile) Decision {
	if loading {
		return Decision{Wait: true}
	}
	return redirect(ResolveHome(p))
}
