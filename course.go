package enroll

import "time"

// A Course is an offering a User can enroll in.
//
// StartDate and EndDate are checked for being parseable, non-zero dates when
// a Course is created through the add-course form. Their ordering is never
// validated.
//
// A Course has many Registrations.
type Course struct {
	Model
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	StartDate   time.Time `db:"start_date" json:"startDate"`
	EndDate     time.Time `db:"end_date" json:"endDate"`

	// Associations
	Registrations []Registration `json:"registrations,omitempty"`
}
