package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opencourse/enroll/http/middleware"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// An empty Method matches every method.
// Additional [middleware.Adapter] can be called when the server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router dispatches requests across the enroll app's route table.
type Router struct {
	Env           string
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
func New(env string) *Router {
	return &Router{Env: env, r: mux.NewRouter()}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
//
// A known path hit with the wrong method answers the same way as an unknown
// path; the application has no 405 responses.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	wrapped := middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.everyReqStack...,
	)
	r.r.NotFoundHandler = wrapped
	r.r.MethodNotAllowedHandler = wrapped
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to
// middlewares, so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(r.everyReqStack, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)

		registered := r.r.Handle(route.Path, handler)
		if route.Method != "" {
			registered.Methods(route.Method)
		}
	}
}

// ProtectedRoutes registers the set of Routes as those requiring a resolved
// token, applying the given middlewares before that check runs.
func (r *Router) ProtectedRoutes(routes []Route, middlewares ...middleware.Adapter) {
	mws := append(middlewares, middleware.RequireToken())
	r.HandleRoutes(routes, mws...)
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}
