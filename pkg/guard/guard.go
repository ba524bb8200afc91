// Package guard decides whether protected content may render. It is a
// pure state machine: callers translate Decisions into a redirect, a
// spinner, or the protected handler.
package guard

import "github.com/eventfold/eventfold/pkg/api"

const (
	LoginPath       = "/login"
	DefaultFallback = "/dashboard"
)

type State struct {
	Loading       bool
	Authenticated bool
	Manifest      *api.Manifest
}

// Requirements declares at most one required route and one required
// feature per guard instance. Both must pass when both are set.
type Requirements struct {
	Route    string
	Feature  string
	Fallback string
}

type Kind int

const (
	Loading Kind = iota
	Redirect
	Authorized
)

type Decision struct {
	Kind   Kind
	Target string
}

// Decide evaluates the gate conditions in order; the first match wins.
//
//  1. loading, or authenticated with a declared requirement and no
//     manifest yet -> Loading
//  2. not authenticated -> Redirect to login
//  3. required route or feature missing from the manifest -> Redirect
//     to the fallback
//  4. otherwise Authorized
func Decide(s State, r Requirements) Decision {
	declared := r.Route != "" || r.Feature != ""

	if s.Loading || (s.Authenticated && declared && s.Manifest == nil) {
		return Decision{Kind: Loading}
	}
	if !s.Authenticated {
		return Decision{Kind: Redirect, Target: LoginPath}
	}
	if r.Route != "" && !s.Manifest.HasRoute(r.Route) {
		return Decision{Kind: Redirect, Target: fallback(r)}
	}
	if r.Feature != "" && !s.Manifest.HasFeature(r.Feature) {
		return Decision{Kind: Redirect, Target: fallback(r)}
	}
	return Decision{Kind: Authorized}
}

func fallback(r Requirements) string {
	if r.Fallback != "" {
		return r.Fallback
	}
	return DefaultFallback
}
