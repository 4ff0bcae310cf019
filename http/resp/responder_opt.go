package resp

import "github.com/opencourse/enroll/logger"

// A ResponderOptFn is a functional option configuring a Responder when constructing a new one.
type ResponderOptFn func(*Responder)

// WithLogger sets the logger.Logger the Responder logs failure states with.
func WithLogger(l logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = l
	}
}

// WithRootUrl sets the root URL of the application.
func WithRootUrl(u string) ResponderOptFn {
	return func(d *Responder) {
		d.rootURL = u
	}
}
