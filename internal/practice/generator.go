package practice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/minhngdev/lingopad/internal/llm"
)

// ErrUnknownVariant marks a request for a speaking part, writing task or
// listening part that has no prompt template. Callers treat it as client
// error, not a backend failure.
var ErrUnknownVariant = errors.New("unknown practice variant")

// Generator produces validated practice content through a text backend.
type Generator struct {
	completer llm.Completer

	// Overridable for deterministic tests.
	pickSpeakingPart func() string
	pickWritingTask  func() (ieltsType, taskNumber string)
	pickListening    func() string
}

func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{
		completer: completer,
		pickSpeakingPart: func() string {
			return []string{"part1", "part2"}[rand.IntN(2)]
		},
		pickWritingTask: func() (string, string) {
			t := []string{"academic", "general"}[rand.IntN(2)]
			n := []string{"task1", "task2"}[rand.IntN(2)]
			return t, n
		},
		pickListening: func() string {
			return []string{"part2", "part3", "part4"}[rand.IntN(3)]
		},
	}
}

func (g *Generator) Conversation(ctx context.Context, topic string) (*ConversationQuestion, error) {
	prompt := llm.BuildQuestionPrompt(conversationDescription, topic, conversationFormat)
	var q ConversationQuestion
	if err := llm.GenerateInto(ctx, g.completer, prompt, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Speaking generates an IELTS speaking set. When part is empty one of part1
// and part2 is chosen at random.
func (g *Generator) Speaking(ctx context.Context, topic, part string) (*SpeakingQuestion, error) {
	if part == "" {
		part = g.pickSpeakingPart()
	}
	tmpl, ok := speakingPrompts[part]
	if !ok {
		return nil, fmt.Errorf("%w: speaking part %q", ErrUnknownVariant, part)
	}
	prompt := llm.BuildQuestionPrompt(tmpl, topic, speakingFormat)
	var q SpeakingQuestion
	if err := llm.GenerateInto(ctx, g.completer, prompt, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Writing generates an IELTS writing task. Unspecified exam type and task
// number are chosen at random. Task 2 shares one prompt across both exam
// types.
func (g *Generator) Writing(ctx context.Context, topic, ieltsType, taskNumber string) (*WritingQuestion, error) {
	if ieltsType == "" || taskNumber == "" {
		randType, randTask := g.pickWritingTask()
		if ieltsType == "" {
			ieltsType = randType
		}
		if taskNumber == "" {
			taskNumber = randTask
		}
	}
	key := taskNumber
	if taskNumber == "task1" {
		key = ieltsType + "_task1"
	}
	tmpl, ok := writingPrompts[key]
	if !ok {
		return nil, fmt.Errorf("%w: writing task %q/%q", ErrUnknownVariant, ieltsType, taskNumber)
	}
	prompt := llm.BuildQuestionPrompt(tmpl, topic, writingFormat)
	var q WritingQuestion
	if err := llm.GenerateInto(ctx, g.completer, prompt, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (g *Generator) Reading(ctx context.Context, topic string) (*ReadingPractice, error) {
	prompt := llm.BuildQuestionPrompt(readingPrompt, topic, readingFormat)
	var q ReadingPractice
	if err := llm.GenerateInto(ctx, g.completer, prompt, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Listening generates a TOEIC listening set. When part is empty one of
// part2, part3 and part4 is chosen at random.
func (g *Generator) Listening(ctx context.Context, topic, part string) (*ListeningPractice, error) {
	if part == "" {
		part = g.pickListening()
	}
	tmpl, ok := listeningPrompts[part]
	if !ok {
		return nil, fmt.Errorf("%w: listening part %q", ErrUnknownVariant, part)
	}
	prompt := llm.BuildQuestionPrompt(tmpl, topic, listeningFormat)
	var q ListeningPractice
	if err := llm.GenerateInto(ctx, g.completer, prompt, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
