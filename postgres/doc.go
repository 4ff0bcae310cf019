/*
Package postgres manages the enroll database connection. As part of the
connection process, we also ensure that all migrations have been run on the
proper database.

The [EnrollmentStore] interface exposes the straightforward reads and writes
the HTTP handlers need. It exists so handlers can be tested against a stub
without an actual database running in the environment; the GORM-backed
implementation is tested directly against a mocked driver.
*/
package postgres
