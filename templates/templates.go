// Package templates is the view layer of the enroll app: pure functions
// mapping page data to a complete HTML document string.
//
// Rendering goes through text/template, not html/template, on purpose:
// stored fields (titles, descriptions, names) interpolate into markup
// without escaping, and auto-escaping would silently change every rendered
// page. The injection risk that choice carries is a documented defect of the
// application, not of this package (see DESIGN.md).
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
	"time"

	"github.com/opencourse/enroll"
)

//go:embed tmpl/*.tmpl
var files embed.FS

var pages = template.Must(
	template.New("").Funcs(template.FuncMap{
		"fmtdate": func(t time.Time) string { return t.Format("2006-01-02") },
	}).ParseFS(files, "tmpl/*.tmpl"),
)

// coursePageData feeds the course table pages and the header nav, whose links
// carry token={{.UserName}}.
type coursePageData struct {
	Courses  []enroll.Course
	UserName string
}

// LoginPage renders the login form with a link to registration.
func LoginPage() (string, error) {
	return render("login.tmpl", nil)
}

// RegisterPage renders the registration form.
func RegisterPage() (string, error) {
	return render("register.tmpl", nil)
}

// CoursesPage renders every course with a subscribe button, under the nav
// header greeting userName.
func CoursesPage(courses []enroll.Course, userName string) (string, error) {
	return render("courses.tmpl", coursePageData{Courses: courses, UserName: userName})
}

// SubscriptionsPage renders the courses userName is registered for, each with
// an unsubscribe button.
func SubscriptionsPage(courses []enroll.Course, userName string) (string, error) {
	return render("subscriptions.tmpl", coursePageData{Courses: courses, UserName: userName})
}

// AddCourseForm renders the course-creation form. The form posts back with
// userName as the token, both in the action URL and a hidden input.
func AddCourseForm(userName string) (string, error) {
	return render("add_course.tmpl", coursePageData{UserName: userName})
}

// NotFoundPage renders the minimal body accompanying a 404.
func NotFoundPage() (string, error) {
	return render("not_found.tmpl", nil)
}

func render(name string, data any) (string, error) {
	b := new(bytes.Buffer)
	if err := pages.ExecuteTemplate(b, name, data); err != nil {
		return "", fmt.Errorf("%w: rendering %s: %s", enroll.ErrUnexpected, name, err)
	}

	return b.String(), nil
}
