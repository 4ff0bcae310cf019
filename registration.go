package enroll

// A Registration joins a User to a Course they are enrolled in.
//
// Its identity is the composite (UserID, CourseID) pair; a true duplicate is
// rejected by the primary key. A Registration has no lifecycle beyond
// create ("subscribe") and delete ("unsubscribe").
type Registration struct {
	UserID   uint `db:"user_id" json:"userId" gorm:"primaryKey"`
	CourseID uint `db:"course_id" json:"courseId" gorm:"primaryKey"`

	// Associations
	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}
