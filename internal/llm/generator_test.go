package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCompleter struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestParseQuestionList(t *testing.T) {
	testCases := []struct {
		name     string
		reply    string
		expected []string
	}{
		{
			name:     "numbered list",
			reply:    "1. What is X?\n2. Explain Y.\n\n",
			expected: []string{"What is X?", "Explain Y."},
		},
		{
			name:     "blank lines between questions",
			reply:    "1. First?\n\n2. Second?\n\n3. Third?",
			expected: []string{"First?", "Second?", "Third?"},
		},
		{
			name:     "no numbering",
			reply:    "What is a goroutine?\nExplain channels.",
			expected: []string{"What is a goroutine?", "Explain channels."},
		},
		{
			name:     "surrounding whitespace",
			reply:    "  1.   Tell me about yourself.  \n",
			expected: []string{"Tell me about yourself."},
		},
		{
			name:     "empty reply",
			reply:    "",
			expected: nil,
		},
		{
			name:     "only whitespace",
			reply:    "\n  \n\t\n",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseQuestionList(tc.reply)
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d questions, got %d: %v", len(tc.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("question %d: expected %q, got %q", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestGenerateQuestionsPrompt(t *testing.T) {
	client := &fakeCompleter{reply: "1. Q one\n2. Q two"}
	gen := NewGenerator(client)

	questions, err := gen.GenerateQuestions(context.Background(), "Backend Engineer", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if !strings.Contains(client.lastPrompt, "Backend Engineer") {
		t.Errorf("prompt does not mention the role: %q", client.lastPrompt)
	}
	if !strings.Contains(client.lastPrompt, "3 years") {
		t.Errorf("prompt does not mention the experience: %q", client.lastPrompt)
	}
}

func TestGenerateQuestionsOracleError(t *testing.T) {
	oracleErr := errors.New("connection refused")
	gen := NewGenerator(&fakeCompleter{err: oracleErr})

	_, err := gen.GenerateQuestions(context.Background(), "Backend Engineer", 3)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, oracleErr) {
		t.Errorf("expected wrapped oracle error, got %v", err)
	}
}

func TestGenerateQuestionsEmptyReply(t *testing.T) {
	gen := NewGenerator(&fakeCompleter{reply: ""})

	questions, err := gen.GenerateQuestions(context.Background(), "Backend Engineer", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("expected no questions from empty reply, got %v", questions)
	}
}
