package resp_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencourse/enroll/http/resp"
)

func TestResponderHtml(t *testing.T) {
	// Arrange
	d := resp.NewResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	d.Html(w, r, "<h1>hello</h1>")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	require.Equal(t, "<h1>hello</h1>", w.Body.String())
}

func TestResponderRedirect(t *testing.T) {
	// Arrange
	d := resp.NewResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	d.Redirect(w, r, "/myPage?token=7")

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/myPage?token=7", w.Header().Get("Location"))
}

func TestResponderNotFound(t *testing.T) {
	// Arrange
	d := resp.NewResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/nope", nil)

	// Act
	d.NotFound(w, r, "<h1>404</h1>")

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotEmpty(t, w.Body.String())
}

func TestResponderErr(t *testing.T) {
	// Arrange
	d := resp.NewResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/myPage", nil)

	// Act
	d.Err(w, r, errors.New("no user resolved"))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
