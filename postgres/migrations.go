package postgres

import "gorm.io/gorm"

// Migrations returns the full, ordered migration set for the enroll schema:
// users, courses and the registrations join table with its composite primary
// key.
func Migrations() []Migration {
	return []Migration{
		{
			Key: "1-create-users",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE users (
						id SERIAL PRIMARY KEY,
						created_at timestamptz,
						updated_at timestamptz,
						name text NOT NULL,
						email text NOT NULL,
						phone text,
						password text NOT NULL
					);
					CREATE UNIQUE INDEX idx_users_email ON users (email);
				`).Error
			},
		},
		{
			Key: "2-create-courses",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE courses (
						id SERIAL PRIMARY KEY,
						created_at timestamptz,
						updated_at timestamptz,
						title text NOT NULL,
						description text,
						start_date timestamptz,
						end_date timestamptz
					);
				`).Error
			},
		},
		{
			Key: "3-create-registrations",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE registrations (
						user_id integer NOT NULL REFERENCES users (id),
						course_id integer NOT NULL REFERENCES courses (id),
						PRIMARY KEY (user_id, course_id)
					);
				`).Error
			},
		},
	}
}
