package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Completer is the one oracle capability both adapters need.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator drafts interview questions for a role/experience pair.
type Generator struct {
	client Completer
}

func NewGenerator(client Completer) *Generator {
	return &Generator{client: client}
}

var numberingPrefix = regexp.MustCompile(`^\d+\.\s*`)

// GenerateQuestions asks the oracle for five questions and parses its
// free-form reply into an ordered list. The oracle may return fewer or more
// than five; callers must tolerate variable length. Oracle failures
// propagate as errors so they stay distinguishable from a legitimately
// empty reply.
func (g *Generator) GenerateQuestions(ctx context.Context, role string, experienceYears int) ([]string, error) {
	prompt := fmt.Sprintf("Generate 5 mock interview questions for a %s with %d years of experience.", role, experienceYears)

	text, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}
	return parseQuestionList(text), nil
}

// parseQuestionList splits the reply on line breaks, drops blank lines and
// strips a leading "N. " numbering prefix from each line.
func parseQuestionList(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, strings.TrimSpace(numberingPrefix.ReplaceAllString(line, "")))
	}
	return questions
}
