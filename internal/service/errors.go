package service

import "errors"

// Sentinel errors for the interview lifecycle. Handlers map these onto HTTP
// status codes with errors.Is; everything else surfaces as a generic 500.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrQuestionGeneration = errors.New("failed to generate questions")
	ErrSessionNotFound    = errors.New("session not found")
	ErrQuestionNotFound   = errors.New("question not found in this session")
	ErrDuplicateAnswer    = errors.New("question has already been answered")
	ErrSessionEvaluated   = errors.New("session has already been evaluated")
	ErrNothingToEvaluate  = errors.New("no answers or questions found for this session")
	ErrSessionIncomplete  = errors.New("you have not answered all the questions")
)
