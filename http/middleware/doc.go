/*
The middleware package defines what a middleware is in enroll and the set of
basic middlewares the application stacks on every request.

The available middlewares are:
  - CurrentUser
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID
  - RequireToken

CurrentUser resolves the "token" query-string value into a User for every
request; RequireToken is applied only to protected routes and turns an
unresolved token into a redirect carrying error=invalid_token.
*/
package middleware
