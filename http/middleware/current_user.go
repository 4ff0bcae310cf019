package middleware

import (
	"context"
	"net/http"

	"github.com/opencourse/enroll"
)

// InvalidTokenURL is where RequireToken sends requests whose token did not
// resolve to a User.
const InvalidTokenURL = "/?error=invalid_token"

// UserStorer defines how to resolve a token into a User in the context of middleware.
type UserStorer func(token string) (enroll.User, error)

// CurrentUser pulls the "token" value out of the request's query string and,
// when non-empty, resolves it through storer into a User stashed in the
// *http.Request.Context under enroll.CurrentUserKey.
//
// The token is matched against the user's name, exactly and case-sensitively.
// Login hands the client its numeric ID as the token, so a freshly logged-in
// user generally does not resolve here; the mismatch is a known defect,
// kept rather than corrected (see DESIGN.md).
//
// A token that resolves to nothing is not an error at this layer:
// request may be accessing an unauthenticated endpoint,
// maybe not, something for RequireToken or the handler to determine.
//
// If storer is nil, NoopAdapter returns and this middleware does nothing.
func CurrentUser(storer UserStorer) Adapter {
	if storer == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get("token")
			if token == "" {
				handler.ServeHTTP(w, r)
				return
			}

			user, err := storer(token)
			if err != nil {
				handler.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), enroll.CurrentUserKey, user)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// RequireToken guards a protected route: when no User was resolved by
// CurrentUser, it redirects to the root URL with error=invalid_token and the
// route's handler never runs.
//
// Authorization failures deliberately travel as a redirect with an error
// query parameter rather than a 401/403; clients of this application read
// errors out of the URL.
func RequireToken() Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				http.Redirect(w, r, InvalidTokenURL, http.StatusFound)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// UserFromContext retrieves the User stashed by CurrentUser.
//
// Handlers must branch on ok before touching the User; several routes are
// reachable without a resolved token.
func UserFromContext(ctx context.Context) (enroll.User, bool) {
	user, ok := ctx.Value(enroll.CurrentUserKey).(enroll.User)
	return user, ok
}
