package inbuilt

import (
	"errors"
	"slices"

	"github.com/indigo-web/pathway/http/method"
	"github.com/indigo-web/pathway/router/inbuilt/pattern"
)

var ErrFrozen = errors.New("router is frozen: routes can't be added after the start")

type Route struct {
	Method  method.Method
	Pattern pattern.Pattern
	Handler Handler
	State   State
}

// Route is a base method for registering handlers. The state is optional, only the first
// one is used. It panics if the pattern is invalid or the router is already frozen.
func (r *Router) Route(m method.Method, path string, handler Handler, state ...State) *Router {
	p, err := pattern.Parse(path)
	if err != nil {
		panic(err)
	}

	var st State
	if len(state) > 0 {
		st = state[0]
	}

	return r.add(m, p, handler, st)
}

func (r *Router) add(m method.Method, p pattern.Pattern, handler Handler, state State) *Router {
	r.mustNotBeFrozen()

	r.routes = append(r.routes, Route{
		Method:  m,
		Pattern: p,
		Handler: handler,
		State:   state,
	})
	slices.SortStableFunc(r.routes, func(a, b Route) int {
		return pattern.Compare(a.Pattern, b.Pattern)
	})

	return r
}
