package models

import "time"

// Evaluation holds the scoring oracle's verdict for one answer.
// Score is bounded to [0,10]; out-of-range oracle replies are rejected at
// parse time and never reach the store.
type Evaluation struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	SessionID  string    `bson:"session_id" json:"session_id"`
	QuestionID string    `bson:"question_id" json:"question_id"`
	AnswerID   string    `bson:"answer_id" json:"answer_id"`
	Score      int       `bson:"score" json:"score"`
	Feedback   string    `bson:"feedback" json:"feedback"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
