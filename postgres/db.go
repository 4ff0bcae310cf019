package postgres

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/opencourse/enroll"
)

// DB wraps a *gorm.DB with query methods that translate driver and GORM
// errors into the sentinel errors of the enroll package.
//
// Some *gorm.DB methods are not thread-safe and mutate the state of the
// *gorm.DB backing them; every DB method therefore returns a new *DB wrapping
// the fresh pointer GORM hands back.
type DB struct {
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// **************************************************************************
// FINISHER METHODS
//
// These methods close out a current query, executing it.
// They return any errors occurring within the query chain
// or when executing the query.
// **************************************************************************

// Count returns the number of records matching the current query or an error.
func (db *DB) Count() (int64, error) {
	if db.db.Error != nil {
		return 0, db.db.Error
	}

	var count int64
	if err := db.db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %s", enroll.ErrUnexpected, err)
	}

	return count, nil
}

// Create inserts value into the database, updating value with new data
// yielding from that insertion. Value is a pointer to a struct that is a
// database table.
//
// If value violates a foreign key constraint defined by the database, ErrNotValid returns.
// If value violates a unique constraint defined by the database, ErrExists returns.
func (db *DB) Create(value any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.Session(&gorm.Session{FullSaveAssociations: false}).Create(value).Error
	switch {
	case err == nil:
		return nil

	case strings.Contains(err.Error(), violatesFK):
		return fmt.Errorf("%w: %s", enroll.ErrNotValid, err)

	case errUniqViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", enroll.ErrExists, err)

	default:
		return fmt.Errorf("%w: failed creating %T: %s", enroll.ErrUnexpected, value, err)
	}
}

// Delete removes the database record for value.
//
// If no record matches value, Delete returns ErrNotFound.
func (db *DB) Delete(value any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Delete(value)
	if res.Error != nil {
		return fmt.Errorf("%w: failed deleting %T: %s", enroll.ErrUnexpected, value, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %T", enroll.ErrNotFound, value)
	}

	return nil
}

// Find retrieves all records matching the current query
// and stores them in dest.
//
// If no matches are found, Find returns ErrNotFound.
func (db *DB) Find(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Find(dest)
	if err := res.Error; err != nil {
		if errSQLSyntax.MatchString(err.Error()) {
			return fmt.Errorf("%w: %s", enroll.ErrNotValid, err)
		}

		return fmt.Errorf("%w: %s", enroll.ErrUnexpected, err)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w", enroll.ErrNotFound)
	}

	return nil
}

// First retrieves a single record from the database matching the query
// and stores it in dest.
//
// If no matches are found, First returns ErrNotFound.
func (db *DB) First(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w", enroll.ErrNotFound)
	}

	if err != nil && errSQLSyntax.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", enroll.ErrNotValid, err)
	}

	if err != nil {
		return fmt.Errorf("%w: %s", enroll.ErrUnexpected, err)
	}

	return nil
}

// **************************************************************************
// QUERY BUILDING METHODS
//
// Query building methods initiate a query and then add clauses to it
// until a finisher method is called.
// **************************************************************************

// Joins applies the JOIN statement query and args to the current query.
func (db *DB) Joins(query string, args ...any) *DB {
	return &DB{db: db.db.Joins(query, args...)}
}

// Limit applies a LIMIT clause to the current query.
func (db *DB) Limit(limit int) *DB { return &DB{db: db.db.Limit(limit)} }

// Model declares the table used for the query.
//
// Model computes the name for the database table from the type of model,
// taking the plural of the table, for example:
// - Course -> courses
// - User -> users
func (db *DB) Model(model any) *DB { return &DB{db: db.db.Model(model)} }

// Order applies an ORDER BY clause to the current query.
func (db *DB) Order(order string) *DB { return &DB{db: db.db.Order(order)} }

// Select applies a SELECT statement to the current query.
func (db *DB) Select(columns ...string) *DB { return &DB{db: db.db.Select(columns)} }

// Where applies the query fragment to the current query
// as a WHERE or AND clause.
func (db *DB) Where(query any, args ...any) *DB {
	return &DB{db: db.db.Where(query, args...)}
}
