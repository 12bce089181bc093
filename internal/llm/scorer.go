package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultFeedback is used when the oracle reply carries a score but no
// feedback line.
const DefaultFeedback = "No feedback."

// Score is one answer's verdict, parsed from the oracle reply.
type Score struct {
	Score    int
	Feedback string
}

// Scorer grades a single (question, answer) pair against a fixed rubric.
type Scorer struct {
	client Completer
}

func NewScorer(client Completer) *Scorer {
	return &Scorer{client: client}
}

var (
	scoreLine    = regexp.MustCompile(`Score:\s*(-?\d+)`)
	feedbackLine = regexp.MustCompile(`Feedback:\s*(.+)`)
)

const scoringPrompt = `Evaluate this answer out of 10 (clarity, technical depth, relevance). Give short constructive feedback.

Question: %s
Answer: %s

Respond with:
Score: <number out of 10>
Feedback: <short constructive feedback>`

// ScoreAnswer asks the oracle to grade the answer and parses the two-line
// "Score:" / "Feedback:" reply. A reply without a parseable in-range score
// is an error, not a zero: transport failures and malformed replies must
// stay distinguishable from a genuine zero score.
func (s *Scorer) ScoreAnswer(ctx context.Context, question, answer string) (Score, error) {
	reply, err := s.client.Complete(ctx, fmt.Sprintf(scoringPrompt, question, answer))
	if err != nil {
		return Score{}, fmt.Errorf("failed to score answer: %w", err)
	}
	return parseScoreReply(reply)
}

func parseScoreReply(reply string) (Score, error) {
	m := scoreLine.FindStringSubmatch(reply)
	if m == nil {
		return Score{}, fmt.Errorf("oracle reply has no score line: %q", firstLine(reply))
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return Score{}, fmt.Errorf("invalid score %q: %w", m[1], err)
	}
	if score < 0 || score > 10 {
		return Score{}, fmt.Errorf("score %d out of range [0,10]", score)
	}

	feedback := DefaultFeedback
	if fm := feedbackLine.FindStringSubmatch(reply); fm != nil {
		feedback = strings.TrimSpace(fm[1])
	}
	return Score{Score: score, Feedback: feedback}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
