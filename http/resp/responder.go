package resp

import (
	"net/http"

	"github.com/opencourse/enroll"
	"github.com/opencourse/enroll/logger"
)

// responderFrames is the number of call frames between a Responder method's
// log call and the handler that invoked it.
const responderFrames = 1

const htmlContentType = "text/html; charset=utf-8"

// Responder maintains reusable pieces for responding to HTTP requests.
type Responder struct {
	logger  logger.Logger
	rootURL string
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{rootURL: "/"}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Html writes markup as a complete text/html response body.
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, markup string) {
	w.Header().Set("Content-Type", htmlContentType)
	if _, err := w.Write([]byte(markup)); err != nil {
		doer.logger.Error("failed writing response body", &logger.LogContext{Error: err, Request: r})
	}
}

// Redirect sends the client to url with a 302.
//
// Every validation and authorization failure travels this way, via an
// "error" query parameter on the target URL, never a 4xx status.
func (doer *Responder) Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}

// NotFound writes markup with a 404 status.
func (doer *Responder) NotFound(w http.ResponseWriter, r *http.Request, markup string) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusNotFound)
	if _, err := w.Write([]byte(markup)); err != nil {
		doer.logger.Error("failed writing response body", &logger.LogContext{Error: err, Request: r})
	}
}

// Err wraps http.Error, logging the error causing the failure state.
//
// Use in exceptional circumstances when no Redirect or Html can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	ctx := &logger.LogContext{Error: err, Request: r}
	if user, ok := r.Context().Value(enroll.CurrentUserKey).(enroll.User); ok {
		ctx.User = user
	}

	doer.logger.Error(http.StatusText(http.StatusInternalServerError), ctx)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// RootURL exposes the root URL the Responder redirects to in error states.
func (doer *Responder) RootURL() string { return doer.rootURL }
