package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencourse/enroll"
	"github.com/opencourse/enroll/http/middleware"
)

func newTestUserStore(found bool) middleware.UserStorer {
	return func(token string) (enroll.User, error) {
		if !found {
			return enroll.User{}, enroll.ErrNotFound
		}

		u := enroll.User{Name: token, Email: token + "@example.com"}
		u.ID = 7
		return u, nil
	}
}

func TestCurrentUser(t *testing.T) {
	// Arrange + Act
	actual := middleware.CurrentUser(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/myPage?token=sam", nil)

	// Act + Assert
	middleware.CurrentUser(newTestUserStore(true))(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		user, ok := middleware.UserFromContext(rx.Context())
		require.True(t, ok)
		require.Equal(t, "sam", user.Name)
	})).ServeHTTP(w, r)

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/myPage?token=nobody", nil)

	// Act + Assert
	middleware.CurrentUser(newTestUserStore(false))(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		_, ok := middleware.UserFromContext(rx.Context())
		require.False(t, ok)
	})).ServeHTTP(w, r)

	// Arrange: no token at all
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/", nil)

	// Act + Assert
	middleware.CurrentUser(newTestUserStore(true))(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		_, ok := middleware.UserFromContext(rx.Context())
		require.False(t, ok)
	})).ServeHTTP(w, r)
}

func TestRequireToken(t *testing.T) {
	// Arrange: token missing entirely
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/subscriptions", nil)

	// Act
	middleware.Chain(
		teapotHandler(),
		middleware.CurrentUser(newTestUserStore(true)),
		middleware.RequireToken(),
	).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/?error=invalid_token", w.Header().Get("Location"))

	// Arrange: token present but unresolvable
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/subscriptions?token=ghost", nil)

	// Act
	middleware.Chain(
		teapotHandler(),
		middleware.CurrentUser(newTestUserStore(false)),
		middleware.RequireToken(),
	).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/?error=invalid_token", w.Header().Get("Location"))

	// Arrange: token resolves
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/subscriptions?token=sam", nil)

	// Act
	middleware.Chain(
		teapotHandler(),
		middleware.CurrentUser(newTestUserStore(true)),
		middleware.RequireToken(),
	).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}
