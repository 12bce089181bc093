package models

// Question is one generated interview question. Position preserves the
// generator's ordering; it drives display and evaluation order.
type Question struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	SessionID string `bson:"session_id" json:"session_id"`
	Question  string `bson:"question" json:"question"`
	Position  int    `bson:"position" json:"position"`
}
