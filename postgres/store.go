package postgres

import (
	"errors"

	"github.com/opencourse/enroll"
)

// EnrollmentStore sets up the interface to be used at the handler/middleware
// level. These are straightforward calls covering every read and write the
// application performs. Handlers are tested against a stub of this interface,
// while the GORM-backed implementation is tested directly.
//
// Reads that match nothing return enroll.ErrNotFound,
// except the List methods, which return empty slices.
// Writes violating a unique constraint return enroll.ErrExists.
type EnrollmentStore interface {
	FindUserByName(name string) (enroll.User, error)
	FindUserByEmail(email string) (enroll.User, error)
	FindUserByEmailAndPassword(email, password string) (enroll.User, error)
	CreateUser(user *enroll.User) error

	ListCourses() ([]enroll.Course, error)
	CreateCourse(course *enroll.Course) error

	ListRegistrationsForUser(userID uint) ([]enroll.Course, error)
	FindRegistration(userID, courseID uint) (enroll.Registration, error)
	CreateRegistration(reg *enroll.Registration) error
	DeleteRegistration(reg *enroll.Registration) error
}

// Store implements EnrollmentStore on top of *DB.
type Store struct {
	db *DB
}

func NewStore(db *DB) *Store { return &Store{db: db} }

// FindUserByName retrieves the User whose name matches name exactly.
//
// Tokens are resolved with this lookup. Note the application issues the token
// at login as the user's numeric ID; matching it here against the name column
// is a known mismatch, kept deliberately (see DESIGN.md).
func (s *Store) FindUserByName(name string) (enroll.User, error) {
	var user enroll.User
	err := s.db.Where("name = ?", name).First(&user)
	return user, err
}

// FindUserByEmail retrieves the User whose email matches email exactly.
func (s *Store) FindUserByEmail(email string) (enroll.User, error) {
	var user enroll.User
	err := s.db.Where("email = ?", email).First(&user)
	return user, err
}

// FindUserByEmailAndPassword retrieves the User matching both credentials.
//
// The password is compared in clear text against the stored column; the
// credential check is knowingly weak (see DESIGN.md).
func (s *Store) FindUserByEmailAndPassword(email, password string) (enroll.User, error) {
	var user enroll.User
	err := s.db.Where("email = ?", email).Where("password = ?", password).First(&user)
	return user, err
}

// CreateUser inserts user, filling in its ID.
func (s *Store) CreateUser(user *enroll.User) error {
	return s.db.Create(user)
}

// ListCourses retrieves every Course.
func (s *Store) ListCourses() ([]enroll.Course, error) {
	var courses []enroll.Course
	err := s.db.Find(&courses)
	if errors.Is(err, enroll.ErrNotFound) {
		return []enroll.Course{}, nil
	}

	return courses, err
}

// CreateCourse inserts course, filling in its ID.
func (s *Store) CreateCourse(course *enroll.Course) error {
	return s.db.Create(course)
}

// ListRegistrationsForUser retrieves the Courses the user is registered for,
// joining registrations to courses.
func (s *Store) ListRegistrationsForUser(userID uint) ([]enroll.Course, error) {
	var courses []enroll.Course
	err := s.db.
		Model(new(enroll.Course)).
		Joins("INNER JOIN registrations ON registrations.course_id = courses.id").
		Where("registrations.user_id = ?", userID).
		Find(&courses)
	if errors.Is(err, enroll.ErrNotFound) {
		return []enroll.Course{}, nil
	}

	return courses, err
}

// FindRegistration retrieves the Registration matching the composite
// (userID, courseID) identity.
func (s *Store) FindRegistration(userID, courseID uint) (enroll.Registration, error) {
	var reg enroll.Registration
	err := s.db.Where("user_id = ?", userID).Where("course_id = ?", courseID).First(&reg)
	return reg, err
}

// CreateRegistration inserts reg. A true duplicate registration violates the
// composite primary key and returns enroll.ErrExists.
func (s *Store) CreateRegistration(reg *enroll.Registration) error {
	return s.db.Create(reg)
}

// DeleteRegistration removes reg's row. If the row is already gone,
// enroll.ErrNotFound returns.
func (s *Store) DeleteRegistration(reg *enroll.Registration) error {
	return s.db.Delete(reg)
}
