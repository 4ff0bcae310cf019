package postgres_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/opencourse/enroll"
	"github.com/opencourse/enroll/postgres"
)

// newMockedStore stands up a *postgres.Store over a mocked database/sql
// driver so no live database is needed.
func newMockedStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return postgres.NewStore(postgres.NewDB(db)), mock
}

func TestStoreFindUserByName(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	cols := []string{"id", "name", "email", "phone", "password"}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WithArgs("sam").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "sam", "sam@example.com", "555-0199", "hunter2"))

	// Act
	user, err := store.FindUserByName("sam")

	// Assert
	require.NoError(t, err)
	require.Equal(t, uint(7), user.ID)
	require.Equal(t, "sam", user.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFindUserByNameNotFound(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	_, err := store.FindUserByName("nobody")

	// Assert
	require.ErrorIs(t, err, enroll.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFindUserByEmailAndPassword(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	cols := []string{"id", "name", "email", "password"}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WithArgs("sam@example.com", "hunter2").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "sam", "sam@example.com", "hunter2"))

	// Act
	user, err := store.FindUserByEmailAndPassword("sam@example.com", "hunter2")

	// Assert
	require.NoError(t, err)
	require.Equal(t, uint(7), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreateUserUniqueViolation(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

	// Act
	err := store.CreateUser(&enroll.User{Name: "sam", Email: "sam@example.com", Password: "hunter2"})

	// Assert
	require.ErrorIs(t, err, enroll.ErrExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListCoursesEmpty(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	courses, err := store.ListCourses()

	// Assert
	require.NoError(t, err)
	require.Empty(t, courses)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListRegistrationsForUser(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	cols := []string{"id", "title", "description"}
	mock.ExpectQuery(`SELECT .* FROM "courses" INNER JOIN registrations`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, "Go 101", "An introduction"))

	// Act
	courses, err := store.ListRegistrationsForUser(7)

	// Assert
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Go 101", courses[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreDeleteRegistration(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "registrations"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := store.DeleteRegistration(&enroll.Registration{UserID: 7, CourseID: 3})

	// Assert
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreDeleteRegistrationGone(t *testing.T) {
	// Arrange
	store, mock := newMockedStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "registrations"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err := store.DeleteRegistration(&enroll.Registration{UserID: 7, CourseID: 3})

	// Assert
	require.ErrorIs(t, err, enroll.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
