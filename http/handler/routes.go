package handler

import (
	"net/http"

	"github.com/opencourse/enroll/http/router"
)

// Routes is the open half of the dispatch table: fixed paths, first match
// wins, an empty Method answering any verb.
//
// /myPage and /addCourse both need a user yet sit here, outside the token
// gate; each handler covers for that on its own. The split between gated and
// self-guarding routes is deliberate (see DESIGN.md).
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Path: "/", Handler: h.Home},
		{Path: "/register", Method: http.MethodGet, Handler: h.RegisterForm},
		{Path: "/register", Method: http.MethodPost, Handler: h.Register},
		{Path: "/login", Method: http.MethodPost, Handler: h.Login},
		{Path: "/myPage", Handler: h.MyPage},
		{Path: "/addCourse", Method: http.MethodGet, Handler: h.AddCourseForm},
		{Path: "/addCourse", Method: http.MethodPost, Handler: h.AddCourse},
	}
}

// ProtectedRoutes is the gated half of the table: each path bounces to
// /?error=invalid_token unless the request's token resolved to a user.
//
// /courses is gated but has no page behind it, so a valid token buys a 404.
func (h *Handler) ProtectedRoutes() []router.Route {
	return []router.Route{
		{Path: "/courses", Handler: h.NotFound},
		{Path: "/subscriptions", Handler: h.Subscriptions},
		{Path: "/subscribe", Handler: h.Subscribe},
		{Path: "/unsubscribe", Handler: h.Unsubscribe},
	}
}
