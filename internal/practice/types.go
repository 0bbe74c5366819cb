package practice

import (
	"fmt"
	"slices"
)

// Practice type names as stored in the questions table and used in API paths.
const (
	TypeConversation = "conversation"
	TypeSpeaking     = "speaking"
	TypeWriting      = "writing"
	TypeReading      = "reading"
	TypeListening    = "listening"
)

var Types = []string{TypeConversation, TypeSpeaking, TypeWriting, TypeReading, TypeListening}

func IsValidType(t string) bool {
	return slices.Contains(Types, t)
}

// --- Conversation ---

type ConversationMetadata struct {
	PracticeType        string `json:"practice_type"`
	QuestionType        string `json:"question_type"`
	Topic               string `json:"topic"`
	ConversationContext string `json:"conversation_context"`
	DifficultyLevel     string `json:"difficulty_level"`
}

type ConversationContent struct {
	QuestionText  string `json:"question_text"`
	CorrectAnswer string `json:"correct_answer"`
	Hint          string `json:"hint"`
}

// ConversationQuestion is a short dialogue with one blanked-out turn the
// learner fills in.
type ConversationQuestion struct {
	Metadata ConversationMetadata `json:"metadata"`
	Content  ConversationContent  `json:"content"`
}

func (q *ConversationQuestion) Validate() error {
	if q.Metadata.PracticeType != TypeConversation {
		return fmt.Errorf("practice_type must be %q, got %q", TypeConversation, q.Metadata.PracticeType)
	}
	if q.Metadata.QuestionType != "fill_in" {
		return fmt.Errorf("question_type must be \"fill_in\", got %q", q.Metadata.QuestionType)
	}
	if q.Metadata.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if q.Metadata.ConversationContext == "" {
		return fmt.Errorf("conversation_context is required")
	}
	if !slices.Contains([]string{"Easy", "Medium", "Hard"}, q.Metadata.DifficultyLevel) {
		return fmt.Errorf("invalid difficulty_level %q", q.Metadata.DifficultyLevel)
	}
	if q.Content.QuestionText == "" {
		return fmt.Errorf("question_text is required")
	}
	if q.Content.CorrectAnswer == "" {
		return fmt.Errorf("correct_answer is required")
	}
	if q.Content.Hint == "" {
		return fmt.Errorf("hint is required")
	}
	return nil
}

// --- Speaking ---

type SpeakingMetadata struct {
	PracticeType string `json:"practice_type"`
	QuestionType string `json:"question_type"`
	IELTSPart    string `json:"ielts_part"`
	Topic        string `json:"topic"`
}

type SpeakingPrompt struct {
	QuestionText      string   `json:"question_text"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

type SpeakingContent struct {
	Introduction  string           `json:"introduction"`
	Questions     []SpeakingPrompt `json:"questions"`
	Hint          string           `json:"hint"`
	ExampleAnswer string           `json:"example_answer"`
}

type SpeakingQuestion struct {
	Metadata SpeakingMetadata `json:"metadata"`
	Content  SpeakingContent  `json:"content"`
}

func (q *SpeakingQuestion) Validate() error {
	if q.Metadata.PracticeType != TypeSpeaking {
		return fmt.Errorf("practice_type must be %q, got %q", TypeSpeaking, q.Metadata.PracticeType)
	}
	if q.Metadata.IELTSPart != "part1" && q.Metadata.IELTSPart != "part2" {
		return fmt.Errorf("invalid ielts_part %q", q.Metadata.IELTSPart)
	}
	if q.Metadata.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if len(q.Content.Questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}
	for i, p := range q.Content.Questions {
		if p.QuestionText == "" {
			return fmt.Errorf("question %d: question_text is required", i+1)
		}
	}
	if q.Content.Hint == "" {
		return fmt.Errorf("hint is required")
	}
	if q.Content.ExampleAnswer == "" {
		return fmt.Errorf("example_answer is required")
	}
	return nil
}

// --- Writing ---

type WritingMetadata struct {
	PracticeType string `json:"practice_type"`
	IELTSType    string `json:"ielts_type"`
	TaskNumber   string `json:"task_number"`
	Topic        string `json:"topic"`
}

type WritingContent struct {
	TaskDescription       string   `json:"task_description"`
	DataSource            *string  `json:"data_source"`
	Hints                 []string `json:"hints"`
	StructureGuide        string   `json:"structure_guide"`
	VocabularySuggestions []string `json:"vocabulary_suggestions"`
}

type WritingQuestion struct {
	Metadata WritingMetadata `json:"metadata"`
	Content  WritingContent  `json:"content"`
}

func (q *WritingQuestion) Validate() error {
	if q.Metadata.PracticeType != TypeWriting {
		return fmt.Errorf("practice_type must be %q, got %q", TypeWriting, q.Metadata.PracticeType)
	}
	if q.Metadata.IELTSType != "academic" && q.Metadata.IELTSType != "general" {
		return fmt.Errorf("invalid ielts_type %q", q.Metadata.IELTSType)
	}
	if q.Metadata.TaskNumber != "task1" && q.Metadata.TaskNumber != "task2" {
		return fmt.Errorf("invalid task_number %q", q.Metadata.TaskNumber)
	}
	if q.Metadata.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if q.Content.TaskDescription == "" {
		return fmt.Errorf("task_description is required")
	}
	if q.Content.StructureGuide == "" {
		return fmt.Errorf("structure_guide is required")
	}
	if len(q.Content.Hints) == 0 {
		return fmt.Errorf("at least one hint is required")
	}
	return nil
}

// --- Reading ---

type ReadingMetadata struct {
	PracticeType    string `json:"practice_type"`
	SourceType      string `json:"source_type"`
	Topic           string `json:"topic"`
	DifficultyLevel string `json:"difficulty_level"`
}

type ChoiceOption struct {
	Option    string `json:"option"`
	IsCorrect bool   `json:"is_correct"`
}

// ReadingQuestionContent is a single question about the passage. Options are
// present for multiple_choice and true_false, absent for short_answer.
type ReadingQuestionContent struct {
	Options      []ChoiceOption `json:"options"`
	QuestionText string         `json:"question_text"`
	SampleAnswer *string        `json:"sample_answer"`
	Explanation  string         `json:"explanation"`
	QuestionType string         `json:"question_type"`
}

func (q *ReadingQuestionContent) Validate() error {
	if q.QuestionText == "" {
		return fmt.Errorf("question_text is required")
	}
	if q.Explanation == "" {
		return fmt.Errorf("explanation is required")
	}
	switch q.QuestionType {
	case "multiple_choice", "true_false":
		want := 4
		if q.QuestionType == "true_false" {
			want = 2
		}
		if len(q.Options) != want {
			return fmt.Errorf("%s questions must have exactly %d options, got %d", q.QuestionType, want, len(q.Options))
		}
		correct := 0
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("exactly one option must be marked correct, got %d", correct)
		}
	case "short_answer":
		if len(q.Options) != 0 {
			return fmt.Errorf("short_answer questions must not have options")
		}
		if q.SampleAnswer == nil || *q.SampleAnswer == "" {
			return fmt.Errorf("sample_answer is required for short_answer questions")
		}
	default:
		return fmt.Errorf("invalid question_type %q", q.QuestionType)
	}
	return nil
}

type ReadingContent struct {
	Title     string                   `json:"title"`
	Passage   string                   `json:"passage"`
	Questions []ReadingQuestionContent `json:"questions"`
}

type ReadingPractice struct {
	Metadata ReadingMetadata `json:"metadata"`
	Content  ReadingContent  `json:"content"`
}

func (q *ReadingPractice) Validate() error {
	if q.Metadata.PracticeType != TypeReading {
		return fmt.Errorf("practice_type must be %q, got %q", TypeReading, q.Metadata.PracticeType)
	}
	if !slices.Contains([]string{"article", "document", "story", "news", "user_provided"}, q.Metadata.SourceType) {
		return fmt.Errorf("invalid source_type %q", q.Metadata.SourceType)
	}
	if q.Metadata.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if !slices.Contains([]string{"Beginner", "Intermediate", "Advanced"}, q.Metadata.DifficultyLevel) {
		return fmt.Errorf("invalid difficulty_level %q", q.Metadata.DifficultyLevel)
	}
	if q.Content.Title == "" {
		return fmt.Errorf("title is required")
	}
	if q.Content.Passage == "" {
		return fmt.Errorf("passage is required")
	}
	if len(q.Content.Questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}
	for i := range q.Content.Questions {
		if err := q.Content.Questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// --- Listening ---

type ListeningMetadata struct {
	PracticeType    string `json:"practice_type"`
	QuestionType    string `json:"question_type"`
	TOEICPart       string `json:"toeic_part"`
	Topic           string `json:"topic"`
	DifficultyLevel string `json:"difficulty_level"`
}

type ListeningQuestionContent struct {
	QuestionText string         `json:"question_text"`
	Options      []ChoiceOption `json:"options"`
}

type ListeningContent struct {
	Context         string                     `json:"context"`
	AudioTranscript string                     `json:"audio_transcript"`
	Questions       []ListeningQuestionContent `json:"questions"`
	Hint            string                     `json:"hint"`
}

type ListeningPractice struct {
	Metadata ListeningMetadata `json:"metadata"`
	Content  ListeningContent  `json:"content"`
}

func (q *ListeningPractice) Validate() error {
	if q.Metadata.PracticeType != TypeListening {
		return fmt.Errorf("practice_type must be %q, got %q", TypeListening, q.Metadata.PracticeType)
	}
	if q.Metadata.QuestionType != "multiple_choice" {
		return fmt.Errorf("question_type must be \"multiple_choice\", got %q", q.Metadata.QuestionType)
	}
	if !slices.Contains([]string{"part2", "part3", "part4"}, q.Metadata.TOEICPart) {
		return fmt.Errorf("invalid toeic_part %q", q.Metadata.TOEICPart)
	}
	if q.Metadata.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if !slices.Contains([]string{"Easy", "Medium", "Hard"}, q.Metadata.DifficultyLevel) {
		return fmt.Errorf("invalid difficulty_level %q", q.Metadata.DifficultyLevel)
	}
	if q.Content.AudioTranscript == "" {
		return fmt.Errorf("audio_transcript is required")
	}
	if len(q.Content.Questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}
	// Part 2 options are spoken responses (A, B, C); parts 3 and 4 are the
	// standard four-option printed format.
	wantOptions := 4
	if q.Metadata.TOEICPart == "part2" {
		wantOptions = 3
	}
	for i, question := range q.Content.Questions {
		if question.QuestionText == "" {
			return fmt.Errorf("question %d: question_text is required", i+1)
		}
		if len(question.Options) != wantOptions {
			return fmt.Errorf("question %d: %s requires exactly %d options, got %d",
				i+1, q.Metadata.TOEICPart, wantOptions, len(question.Options))
		}
		correct := 0
		for _, opt := range question.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("question %d: exactly one option must be marked correct, got %d", i+1, correct)
		}
	}
	return nil
}
