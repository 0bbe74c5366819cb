package practice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/minhngdev/lingopad/internal/llm"
)

type scriptedCompleter struct {
	lastPrompt string
	output     string
	err        error
}

func (s *scriptedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.output, s.err
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

func TestGeneratorConversation(t *testing.T) {
	fixture := validConversation()
	c := &scriptedCompleter{output: "```json\n" + mustJSON(t, fixture) + "\n```"}
	g := NewGenerator(c)

	q, err := g.Conversation(context.Background(), "travel")
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if q.Metadata.Topic != "travel" {
		t.Errorf("topic = %q, want %q", q.Metadata.Topic, "travel")
	}
	if !strings.Contains(c.lastPrompt, "travel") {
		t.Error("prompt does not mention the topic")
	}
	if !strings.Contains(c.lastPrompt, "two-person dialogue") {
		t.Error("prompt does not carry the conversation task description")
	}
}

func TestGeneratorSpeakingPart(t *testing.T) {
	fixture := SpeakingQuestion{
		Metadata: SpeakingMetadata{PracticeType: "speaking", QuestionType: "speaking", IELTSPart: "part2", Topic: "travel"},
		Content: SpeakingContent{
			Introduction:  "Part 2 cue card task.",
			Questions:     []SpeakingPrompt{{QuestionText: "Describe a journey you remember well."}},
			Hint:          "Structure with past tenses.",
			ExampleAnswer: "Last year I travelled to...",
		},
	}
	c := &scriptedCompleter{output: mustJSON(t, &fixture)}
	g := NewGenerator(c)

	if _, err := g.Speaking(context.Background(), "travel", "part2"); err != nil {
		t.Fatalf("Speaking failed: %v", err)
	}
	if !strings.Contains(c.lastPrompt, "Cue Card") {
		t.Error("part2 prompt not selected")
	}

	if _, err := g.Speaking(context.Background(), "travel", "part9"); err == nil {
		t.Error("accepted unknown speaking part")
	}
}

func TestGeneratorSpeakingRandomPart(t *testing.T) {
	fixture := SpeakingQuestion{
		Metadata: SpeakingMetadata{PracticeType: "speaking", QuestionType: "speaking", IELTSPart: "part1", Topic: "food"},
		Content: SpeakingContent{
			Introduction:  "Interview about familiar topics.",
			Questions:     []SpeakingPrompt{{QuestionText: "What is your favourite dish?"}},
			Hint:          "Keep answers conversational.",
			ExampleAnswer: "I really enjoy...",
		},
	}
	c := &scriptedCompleter{output: mustJSON(t, &fixture)}
	g := NewGenerator(c)
	g.pickSpeakingPart = func() string { return "part1" }

	if _, err := g.Speaking(context.Background(), "food", ""); err != nil {
		t.Fatalf("Speaking with random part failed: %v", err)
	}
	if !strings.Contains(c.lastPrompt, "Introduction and Interview") {
		t.Error("random part1 prompt not selected")
	}
}

func TestGeneratorWritingPromptSelection(t *testing.T) {
	fixture := WritingQuestion{
		Metadata: WritingMetadata{PracticeType: "writing", IELTSType: "general", TaskNumber: "task1", Topic: "housing"},
		Content: WritingContent{
			TaskDescription: "Write a letter to your landlord...",
			Hints:           []string{"State the purpose early."},
			StructureGuide:  "Opening, body, closing.",
		},
	}
	c := &scriptedCompleter{output: mustJSON(t, &fixture)}
	g := NewGenerator(c)

	if _, err := g.Writing(context.Background(), "housing", "general", "task1"); err != nil {
		t.Fatalf("Writing failed: %v", err)
	}
	if !strings.Contains(c.lastPrompt, "General Training Writing Task 1") {
		t.Error("general_task1 prompt not selected")
	}

	fixture.Metadata.IELTSType = "academic"
	fixture.Metadata.TaskNumber = "task2"
	c.output = mustJSON(t, &fixture)
	if _, err := g.Writing(context.Background(), "housing", "academic", "task2"); err != nil {
		t.Fatalf("Writing task2 failed: %v", err)
	}
	if !strings.Contains(c.lastPrompt, "Writing Task 2") {
		t.Error("shared task2 prompt not selected")
	}
}

func TestGeneratorListening(t *testing.T) {
	fixture := validListening("part3", 4)
	c := &scriptedCompleter{output: mustJSON(t, &fixture)}
	g := NewGenerator(c)

	q, err := g.Listening(context.Background(), "work", "part3")
	if err != nil {
		t.Fatalf("Listening failed: %v", err)
	}
	if q.Metadata.TOEICPart != "part3" {
		t.Errorf("toeic part = %q, want part3", q.Metadata.TOEICPart)
	}
}

func TestGeneratorPropagatesGenerationErrors(t *testing.T) {
	c := &scriptedCompleter{err: errors.New("backend down")}
	g := NewGenerator(c)

	_, err := g.Reading(context.Background(), "science")
	if !errors.Is(err, llm.ErrGeneration) {
		t.Errorf("err = %v, want to match llm.ErrGeneration", err)
	}

	// Schema violations surface the same umbrella error.
	bad := validListening("part3", 3)
	c.err = nil
	c.output = mustJSON(t, &bad)
	_, err = g.Listening(context.Background(), "work", "part3")
	if !errors.Is(err, llm.ErrInvalidSchema) {
		t.Errorf("err = %v, want llm.ErrInvalidSchema", err)
	}
}
