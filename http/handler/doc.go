/*
Package handler implements every endpoint of the enroll app: login and
registration, the course listing and creation pages, and the
subscribe/unsubscribe actions, plus the 404 fallback.

Handlers pull their dependencies from a Handler value and never touch GORM or
templates' internals directly: reads and writes go through
postgres.EnrollmentStore, page bodies come from the templates package, and
every response leaves through a resp.Responder.
*/
package handler
