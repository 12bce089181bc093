package models

import "time"

// Answer is immutable once created. At most one answer exists per
// (session, question) pair; the service rejects duplicates.
type Answer struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	SessionID  string    `bson:"session_id" json:"session_id"`
	QuestionID string    `bson:"question_id" json:"question_id"`
	Answer     string    `bson:"answer" json:"answer"`
	AnsweredAt time.Time `bson:"answered_at" json:"answered_at"`
}
