package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/opencourse/enroll"
	"github.com/opencourse/enroll/http/middleware"
	"github.com/opencourse/enroll/http/resp"
	"github.com/opencourse/enroll/postgres"
	"github.com/opencourse/enroll/templates"
)

// dateFormat matches the value an <input type='date'> submits.
const dateFormat = "2006-01-02"

// Handler owns every page and form endpoint of the enroll app.
//
// Identity arrives on the request context, placed there by
// middleware.CurrentUser. Handlers that need a user branch on
// middleware.UserFromContext explicitly; none assume upstream gating
// resolved one.
type Handler struct {
	store     postgres.EnrollmentStore
	responder *resp.Responder
}

func New(store postgres.EnrollmentStore, responder *resp.Responder) *Handler {
	return &Handler{store: store, responder: responder}
}

// Home renders the login page. It answers any method on /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	markup, err := templates.LoginPage()
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Html(w, r, markup)
}

// RegisterForm renders the registration form.
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	markup, err := templates.RegisterPage()
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Html(w, r, markup)
}

// Register creates a User from the posted form.
//
// Empty name, email or password sends the client back to the form with
// error=invalid_data. An email already on file redirects to the login page
// without creating anything; the check is a read followed by a write, so two
// racing registrations can both pass it. The unique index on email makes the
// second insert fail, and that failure surfaces as a 500 rather than the
// redirect; the race itself is left in place.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	phone := r.PostFormValue("phone")
	password := r.PostFormValue("password")

	if name == "" || email == "" || password == "" {
		h.responder.Redirect(w, r, "/register?error=invalid_data")
		return
	}

	if _, err := h.store.FindUserByEmail(email); err == nil {
		h.responder.Redirect(w, r, "/")
		return
	} else if !errors.Is(err, enroll.ErrNotFound) {
		h.responder.Err(w, r, err)
		return
	}

	user := enroll.User{Name: name, Email: email, Phone: phone, Password: password}
	if err := h.store.CreateUser(&user); err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Redirect(w, r, "/")
}

// Login checks the posted email and password against the store and, on a
// match, redirects to /myPage with token set to the user's numeric ID.
//
// Tokens are resolved elsewhere by name, so the ID issued here generally
// fails to resolve; see middleware.CurrentUser. Credentials that match
// nothing redirect to the login page with error=invalid_credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.store.FindUserByEmailAndPassword(email, password)
	if errors.Is(err, enroll.ErrNotFound) {
		h.responder.Redirect(w, r, "/?error=invalid_credentials")
		return
	} else if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Redirect(w, r, fmt.Sprintf("/myPage?token=%d", user.ID))
}

// MyPage lists every Course under the current user's name.
//
// The path is not in the protected set, so it is reachable without a resolved
// user; in that case there is no name to render and the request fails with a
// 500.
func (h *Handler) MyPage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.responder.Err(w, r, fmt.Errorf("%w: no user resolved on %s", enroll.ErrMissingData, r.URL.Path))
		return
	}

	courses, err := h.store.ListCourses()
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	markup, err := templates.CoursesPage(courses, user.Name)
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Html(w, r, markup)
}

// Subscriptions lists the Courses the current user is registered for.
func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.responder.Err(w, r, fmt.Errorf("%w: no user resolved on %s", enroll.ErrMissingData, r.URL.Path))
		return
	}

	courses, err := h.store.ListRegistrationsForUser(user.ID)
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	markup, err := templates.SubscriptionsPage(courses, user.Name)
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Html(w, r, markup)
}

// AddCourseForm renders the course-creation form, or redirects to /login when
// no user resolved. The path is unprotected; it does its own (redirect-based)
// gating instead of the invalid_token one.
func (h *Handler) AddCourseForm(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.responder.Redirect(w, r, "/login")
		return
	}

	markup, err := templates.AddCourseForm(user.Name)
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Html(w, r, markup)
}

// AddCourse creates a Course from the posted form.
//
// The redirect to /myPage fires whether or not validation passed; an invalid
// form silently creates nothing. The token on that redirect is the user's
// name, not the ID issued at login. Start/end ordering is never checked.
func (h *Handler) AddCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.responder.Redirect(w, r, "/login")
		return
	}

	title := r.PostFormValue("title")
	description := r.PostFormValue("description")
	startDate, _ := time.Parse(dateFormat, r.PostFormValue("startDate"))
	endDate, _ := time.Parse(dateFormat, r.PostFormValue("endDate"))

	if title != "" && description != "" && !startDate.IsZero() && !endDate.IsZero() {
		course := enroll.Course{
			Title:       title,
			Description: description,
			StartDate:   startDate,
			EndDate:     endDate,
		}
		if err := h.store.CreateCourse(&course); err != nil {
			h.responder.Err(w, r, err)
			return
		}
	}

	h.responder.Redirect(w, r, "/myPage?token="+user.Name)
}

// Subscribe registers the current user for the courseId in the query, then
// redirects to /subscriptions. Subscribing to a course the user already holds
// is a no-op with the same redirect.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.responder.Err(w, r, fmt.Errorf("%w: no user resolved on %s", enroll.ErrMissingData, r.URL.Path))
		return
	}

	courseID, err := strconv.Atoi(r.URL.Query().Get("courseId"))
	if err != nil {
		h.responder.Redirect(w, r, "/subscriptions?token="+user.Name+"&error=invalid_course")
		return
	}

	_, err = h.store.FindRegistration(user.ID, uint(courseID))
	if errors.Is(err, enroll.ErrNotFound) {
		reg := enroll.Registration{UserID: user.ID, CourseID: uint(courseID)}
		if err := h.store.CreateRegistration(&reg); err != nil {
			h.responder.Err(w, r, err)
			return
		}
	} else if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Redirect(w, r, "/subscriptions?token="+user.Name)
}

// Unsubscribe deletes the current user's Registration for the courseId in the
// query, then redirects to /subscriptions. A registration that is already
// gone is a no-op with the same redirect; an unparseable courseId redirects
// with error=invalid_course.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.responder.Err(w, r, fmt.Errorf("%w: no user resolved on %s", enroll.ErrMissingData, r.URL.Path))
		return
	}

	courseID, err := strconv.Atoi(r.URL.Query().Get("courseId"))
	if err != nil {
		h.responder.Redirect(w, r, "/subscriptions?token="+user.Name+"&error=invalid_course")
		return
	}

	reg, err := h.store.FindRegistration(user.ID, uint(courseID))
	if err == nil {
		err = h.store.DeleteRegistration(&reg)
	}
	if err != nil && !errors.Is(err, enroll.ErrNotFound) {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.Redirect(w, r, "/subscriptions?token="+user.Name)
}

// NotFound answers any unmatched path with a 404 and a minimal body. It also
// backs /courses: that path sits in the protected set but never got a page,
// so a valid token earns a 404 where an invalid one earns the
// invalid_token redirect.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	markup, err := templates.NotFoundPage()
	if err != nil {
		h.responder.Err(w, r, err)
		return
	}

	h.responder.NotFound(w, r, markup)
}
