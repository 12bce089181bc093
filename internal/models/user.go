package models

import "time"

// User is the session owner. The public API is anonymous, so one placeholder
// user is created per started interview.
type User struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Role            string    `bson:"role" json:"role"`
	ExperienceYears int       `bson:"experience_years" json:"experience_years"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
