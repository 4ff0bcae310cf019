/*
Package logger provides logging functionality to the enroll app by defining
the required behavior in [Logger] and providing an implementation of it with
[AppLogger].

The Logger interface outputs messages at certain levels of importance.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.

Log messages emitted by [AppLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [DEBUG] handler/courses.go:43 'such fun!' log_context: {"user":{"id":1,"email":"student@example.com"}}

The log context is a JSON-encoded [*LogContext], carrying additional data
inessential to the message proper but giving a fuller picture of application
state at the time of logging.

When the SENTRY_DSN environment variable is set, [New] wraps the AppLogger in
a [SentryLogger] which additionally ships Warn, Error and Fatal logs to
Sentry.
*/
package logger
