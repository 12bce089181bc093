package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"interview-service/internal/llm"
	"interview-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// Cap on in-flight oracle calls per evaluation batch.
const defaultScoringConcurrency = 4

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
}

type SessionStore interface {
	Create(ctx context.Context, session *models.InterviewSession) error
	FindByID(ctx context.Context, id string) (*models.InterviewSession, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type QuestionStore interface {
	CreateMany(ctx context.Context, questions []models.Question) error
	FindBySession(ctx context.Context, sessionID string) ([]models.Question, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type AnswerStore interface {
	Create(ctx context.Context, answer *models.Answer) error
	FindBySession(ctx context.Context, sessionID string) ([]models.Answer, error)
	ExistsForQuestion(ctx context.Context, sessionID, questionID string) (bool, error)
}

type EvaluationStore interface {
	Create(ctx context.Context, evaluation *models.Evaluation) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, role string, experienceYears int) ([]string, error)
}

type AnswerScorer interface {
	ScoreAnswer(ctx context.Context, question, answer string) (llm.Score, error)
}

// InterviewService drives the session lifecycle: start with a generated
// question set, accumulate answers, evaluate once complete.
type InterviewService struct {
	Users       UserStore
	Sessions    SessionStore
	Questions   QuestionStore
	Answers     AnswerStore
	Evaluations EvaluationStore
	Generator   QuestionGenerator
	Scorer      AnswerScorer

	ScoringConcurrency int
}

func NewInterviewService(
	users UserStore,
	sessions SessionStore,
	questions QuestionStore,
	answers AnswerStore,
	evaluations EvaluationStore,
	generator QuestionGenerator,
	scorer AnswerScorer,
) *InterviewService {
	return &InterviewService{
		Users:              users,
		Sessions:           sessions,
		Questions:          questions,
		Answers:            answers,
		Evaluations:        evaluations,
		Generator:          generator,
		Scorer:             scorer,
		ScoringConcurrency: defaultScoringConcurrency,
	}
}

// StartResult is the outcome of a successfully started interview.
type StartResult struct {
	Session   *models.InterviewSession
	Questions []models.Question
}

// StartInterview generates the question set first and only then persists the
// session and its questions, so a generation failure leaves nothing behind.
func (s *InterviewService) StartInterview(ctx context.Context, role string, experienceYears int) (*StartResult, error) {
	role = strings.TrimSpace(role)
	if role == "" || experienceYears < 0 {
		return nil, ErrMissingFields
	}

	texts, err := s.Generator.GenerateQuestions(ctx, role, experienceYears)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuestionGeneration, err)
	}
	if len(texts) == 0 {
		return nil, ErrQuestionGeneration
	}

	now := time.Now()
	user := &models.User{
		Name:            "Anonymous",
		Role:            role,
		ExperienceYears: experienceYears,
		CreatedAt:       now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session := &models.InterviewSession{
		UserID:          user.ID,
		SessionToken:    uuid.NewString(),
		Role:            role,
		ExperienceYears: experienceYears,
		Status:          models.SessionStatusInProgress,
		CreatedAt:       now,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	questions := make([]models.Question, len(texts))
	for i, text := range texts {
		questions[i] = models.Question{
			SessionID: session.ID,
			Question:  text,
			Position:  i,
		}
	}
	if err := s.Questions.CreateMany(ctx, questions); err != nil {
		// Roll back so a failed start never leaves a session without its
		// question set.
		_ = s.Questions.DeleteBySession(ctx, session.ID)
		_ = s.Sessions.Delete(ctx, session.ID)
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	return &StartResult{Session: session, Questions: questions}, nil
}

// SubmitAnswer records one answer for a question of the session. The
// question must belong to the session and must not have been answered yet.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID, questionID, answerText string) (*models.Answer, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(questionID) == "" || strings.TrimSpace(answerText) == "" {
		return nil, ErrMissingFields
	}

	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if session.Status == models.SessionStatusEvaluated {
		return nil, ErrSessionEvaluated
	}

	questions, err := s.Questions.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if !containsQuestion(questions, questionID) {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	answered, err := s.Answers.ExistsForQuestion(ctx, sessionID, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing answers: %w", err)
	}
	if answered {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAnswer, questionID)
	}

	answer := &models.Answer{
		SessionID:  sessionID,
		QuestionID: questionID,
		Answer:     answerText,
		AnsweredAt: time.Now(),
	}
	if err := s.Answers.Create(ctx, answer); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}
	return answer, nil
}

// AnswerEvaluation is one scored answer in an evaluation response.
type AnswerEvaluation struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

// EvaluationResult aggregates a full session evaluation.
type EvaluationResult struct {
	SessionID    string             `json:"session_id"`
	OverallScore float64            `json:"overall_score"`
	Evaluations  []AnswerEvaluation `json:"evaluations"`
}

// EvaluateInterview scores every answer of the session concurrently, persists
// the evaluations and aggregates the mean score rounded to one decimal.
// It requires every question to be answered and fails the whole batch on the
// first oracle or store error; evaluations of a failed batch are cleared on
// the next attempt.
func (s *InterviewService) EvaluateInterview(ctx context.Context, sessionID string) (*EvaluationResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingFields
	}

	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if session.Status == models.SessionStatusEvaluated {
		return nil, ErrSessionEvaluated
	}

	answers, err := s.Answers.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	questions, err := s.Questions.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	if len(answers) == 0 || len(questions) == 0 {
		return nil, ErrNothingToEvaluate
	}
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: %d of %d answered", ErrSessionIncomplete, len(answers), len(questions))
	}

	// A previous attempt may have persisted a partial batch before failing.
	if err := s.Evaluations.DeleteBySession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear stale evaluations: %w", err)
	}

	questionByID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}
	for _, a := range answers {
		if _, ok := questionByID[a.QuestionID]; !ok {
			return nil, fmt.Errorf("%w: answer %s references question %s", ErrQuestionNotFound, a.ID, a.QuestionID)
		}
	}

	// Fan out one oracle call per answer, join before assembling the
	// response. Results keep the store's answer read order.
	evaluations := make([]AnswerEvaluation, len(answers))
	g, gCtx := errgroup.WithContext(ctx)
	concurrency := s.ScoringConcurrency
	if concurrency <= 0 {
		concurrency = defaultScoringConcurrency
	}
	g.SetLimit(concurrency)

	for i, answer := range answers {
		i, answer := i, answer
		question := questionByID[answer.QuestionID]
		g.Go(func() error {
			result, err := s.Scorer.ScoreAnswer(gCtx, question.Question, answer.Answer)
			if err != nil {
				return fmt.Errorf("failed to score answer %s: %w", answer.ID, err)
			}
			evaluation := &models.Evaluation{
				SessionID:  sessionID,
				QuestionID: answer.QuestionID,
				AnswerID:   answer.ID,
				Score:      result.Score,
				Feedback:   result.Feedback,
				CreatedAt:  time.Now(),
			}
			if err := s.Evaluations.Create(gCtx, evaluation); err != nil {
				return fmt.Errorf("failed to save evaluation for answer %s: %w", answer.ID, err)
			}
			evaluations[i] = AnswerEvaluation{
				QuestionID: question.ID,
				Question:   question.Question,
				Answer:     answer.Answer,
				Score:      result.Score,
				Feedback:   result.Feedback,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, e := range evaluations {
		total += e.Score
	}
	overall := roundToOneDecimal(float64(total) / float64(len(evaluations)))

	update := bson.M{
		"status":        models.SessionStatusEvaluated,
		"overall_score": overall,
		"evaluated_at":  time.Now(),
	}
	if err := s.Sessions.Update(ctx, sessionID, update); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return &EvaluationResult{
		SessionID:    sessionID,
		OverallScore: overall,
		Evaluations:  evaluations,
	}, nil
}

// SessionProgress reports how far along a session is.
type SessionProgress struct {
	Session         *models.InterviewSession `json:"session"`
	QuestionCount   int                      `json:"question_count"`
	AnsweredCount   int                      `json:"answered_count"`
	ReadyToEvaluate bool                     `json:"ready_to_evaluate"`
}

// GetSessionProgress returns the session with its answer/question counts.
func (s *InterviewService) GetSessionProgress(ctx context.Context, sessionID string) (*SessionProgress, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	questions, err := s.Questions.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	answers, err := s.Answers.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	return &SessionProgress{
		Session:         session,
		QuestionCount:   len(questions),
		AnsweredCount:   len(answers),
		ReadyToEvaluate: len(questions) > 0 && len(answers) == len(questions) && session.Status != models.SessionStatusEvaluated,
	}, nil
}

func containsQuestion(questions []models.Question, questionID string) bool {
	for _, q := range questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
