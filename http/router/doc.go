/*
Package router routes requests to the fixed set of handlers making up the
enroll app.

Dispatch is a static table: each [Route] binds an exact path and HTTP method
to an [http.HandlerFunc], evaluated in registration order, first match wins,
no pattern params. A Route with an empty Method matches any method; several
of the application's paths dispatch regardless of method.
*/
package router
