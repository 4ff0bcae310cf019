package enroll

// A User is the core entity that interacts with the enroll application.
//
// An agent's first HTTP request is authenticated by email & password data
// matching credentials stored on a DB record for a User.
// Further requests carry a "token" query-string value the application
// resolves against the users table.
//
// The password is stored and compared in clear text, a known weakness
// documented in DESIGN.md rather than fixed.
//
// A User has many Registrations.
type User struct {
	Model
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email" gorm:"uniqueIndex"`
	Phone    string `db:"phone" json:"phone"`
	Password string `db:"password" json:"-"`

	// Associations
	Registrations []Registration `json:"registrations,omitempty"`
}

// GetID retrieves the application's identifier for the User.
//
// GetID implements logger.LogUser.
func (u User) GetID() uint { return u.ID }

// GetEmail retrieves the email address of the User.
//
// GetEmail implements logger.LogUser.
func (u User) GetEmail() string { return u.Email }
