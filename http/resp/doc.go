/*
Package resp writes HTTP responses for the enroll app.

Every response the application produces is one of: a server-rendered HTML
document, a 302 redirect, a 404, or a 500. [Responder] exposes exactly those
forms and logs the error paths. One instance of a Responder suffices for the
application.
*/
package resp
