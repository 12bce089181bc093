package models

import "time"

const (
	SessionStatusInProgress = "in_progress"
	SessionStatusEvaluated  = "evaluated"
)

// InterviewSession scopes one interview attempt: a fixed question set plus
// the answers and evaluations accumulated against it.
type InterviewSession struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	SessionToken    string    `bson:"session_token" json:"session_token"`
	Role            string    `bson:"role" json:"role"`
	ExperienceYears int       `bson:"experience_years" json:"experience_years"`
	Status          string    `bson:"status" json:"status"`
	OverallScore    float64   `bson:"overall_score" json:"overall_score"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	EvaluatedAt     time.Time `bson:"evaluated_at,omitempty" json:"evaluated_at,omitempty"`
}
