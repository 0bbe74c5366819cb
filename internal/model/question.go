package model

import "time"

// Question is one row of the question aggregate. A reading passage or a
// listening audio script is stored as a root question; its sub-questions
// reference it through ParentID (adjacency list, resolved by id lookups only).
type Question struct {
	ID              int64     `json:"question_id"`
	PracticeType    string    `json:"practice_type"`
	QuestionType    string    `json:"question_type"`
	Topic           string    `json:"topic"`
	DifficultyLevel string    `json:"difficulty_level"`
	ParentID        *int64    `json:"parent_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type QuestionContent struct {
	ID           int64   `json:"content_id"`
	QuestionID   int64   `json:"question_id"`
	QuestionText string  `json:"question_text"`
	Context      *string `json:"context"`
	AudioURL     *string `json:"audio_url"`
	ImageURL     *string `json:"image_url"`
	PassageText  *string `json:"passage_text"`
}

type Answer struct {
	ID          int64   `json:"answer_id"`
	QuestionID  int64   `json:"question_id"`
	Content     string  `json:"content"`
	IsCorrect   bool    `json:"is_correct"`
	OptionOrder int     `json:"option_order"`
	Hint        *string `json:"hint"`
	AnswerType  *string `json:"answer_type"`
	Explanation *string `json:"explanation"`
}

// FormattedQuestion is the API shape for a generated question joined with its
// content and answers, matching what practice clients render.
type FormattedQuestion struct {
	QuestionID      int64     `json:"question_id"`
	QuestionType    string    `json:"question_type"`
	QuestionText    string    `json:"question_text"`
	QuestionContext string    `json:"question_context"`
	CorrectAnswer   []bool    `json:"correct_answer"`
	Options         []string  `json:"options"`
	Hint            []*string `json:"hint"`
	Audio           *string   `json:"audio"`
	QuestionImage   *string   `json:"question_image"`
	Explanation     []*string `json:"explanation"`
	PracticeType    string    `json:"practice_type"`
	Difficulty      string    `json:"difficulty"`
	PassageText     *string   `json:"passage_text"`
	ParentID        *int64    `json:"parent_id"`
}
