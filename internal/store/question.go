package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/minhngdev/lingopad/internal/model"
	"github.com/minhngdev/lingopad/internal/practice"
)

// QuestionStore persists generated practice content. Every Save method writes
// the whole aggregate (questions, content, answers, metadata) in a single
// transaction and returns the root question id.
type QuestionStore struct {
	db *sql.DB
}

func NewQuestionStore(db *sql.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

func insertQuestion(tx *sql.Tx, practiceType, questionType, topic, difficulty string, parentID *int64) (int64, error) {
	result, err := tx.Exec(
		`INSERT INTO questions (practice_type, question_type, topic, difficulty_level, parent_id)
		 VALUES (?, ?, ?, ?, ?)`,
		practiceType, questionType, topic, difficulty, parentID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func insertContent(tx *sql.Tx, questionID int64, questionText string, context, passageText *string) error {
	_, err := tx.Exec(
		`INSERT INTO question_content (question_id, question_text, context, passage_text)
		 VALUES (?, ?, ?, ?)`,
		questionID, questionText, context, passageText,
	)
	if err != nil {
		return fmt.Errorf("insert question content: %w", err)
	}
	return nil
}

func insertAnswer(tx *sql.Tx, questionID int64, content string, isCorrect bool, optionOrder int, hint *string, answerType string, explanation *string) error {
	_, err := tx.Exec(
		`INSERT INTO answers (question_id, content, is_correct, option_order, hint, answer_type, explanation)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		questionID, content, isCorrect, optionOrder, hint, answerType, explanation,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func insertMetadata(tx *sql.Tx, questionID int64, key, value string) error {
	_, err := tx.Exec(
		`INSERT INTO question_metadata (question_id, key, value) VALUES (?, ?, ?)`,
		questionID, key, value,
	)
	if err != nil {
		return fmt.Errorf("insert question metadata: %w", err)
	}
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SaveConversation stores a fill-in dialogue as one question with the blanked
// dialogue as content and the expected response as a single text answer.
func (s *QuestionStore) SaveConversation(q *practice.ConversationQuestion) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id, err := insertQuestion(tx, q.Metadata.PracticeType, q.Metadata.QuestionType, q.Metadata.Topic, q.Metadata.DifficultyLevel, nil)
	if err != nil {
		return 0, err
	}
	if err := insertContent(tx, id, q.Content.QuestionText, strPtr(q.Metadata.ConversationContext), nil); err != nil {
		return 0, err
	}
	if err := insertAnswer(tx, id, q.Content.CorrectAnswer, true, 1, strPtr(q.Content.Hint), "text", nil); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit conversation question: %w", err)
	}
	return id, nil
}

// formatWithFollowUps renders a main speaking question followed by its
// numbered follow-up questions.
func formatWithFollowUps(p practice.SpeakingPrompt) string {
	if len(p.FollowUpQuestions) == 0 {
		return p.QuestionText
	}
	var b strings.Builder
	b.WriteString(p.QuestionText)
	b.WriteString("\n\nFollow-up Questions:\n")
	for i, q := range p.FollowUpQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return b.String()
}

// SaveSpeaking stores one question row per speaking prompt, each carrying the
// shared introduction, hint and example answer. All rows go in one
// transaction and the first question's id is returned as the root.
func (s *QuestionStore) SaveSpeaking(q *practice.SpeakingQuestion) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	context := q.Content.Introduction
	if context == "" {
		context = fmt.Sprintf("IELTS Speaking %s", q.Metadata.IELTSPart)
	}

	var rootID int64
	for i, prompt := range q.Content.Questions {
		id, err := insertQuestion(tx, q.Metadata.PracticeType, q.Metadata.QuestionType, q.Metadata.Topic, "Medium", nil)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			rootID = id
		}
		if err := insertContent(tx, id, formatWithFollowUps(prompt), &context, nil); err != nil {
			return 0, err
		}
		if err := insertAnswer(tx, id, q.Content.ExampleAnswer, true, 1, strPtr(q.Content.Hint), "text", nil); err != nil {
			return 0, err
		}
		if err := insertMetadata(tx, id, "ielts_part", q.Metadata.IELTSPart); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit speaking questions: %w", err)
	}
	return rootID, nil
}

// formatWritingHint folds the hint list and vocabulary suggestions into the
// single hint column.
func formatWritingHint(hints, vocabulary []string) string {
	var b strings.Builder
	for i, hint := range hints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, hint)
	}
	if len(hints) > 0 {
		b.WriteString("\n")
	}
	if len(vocabulary) > 0 {
		b.WriteString("VOCABULARY SUGGESTIONS:\n")
		b.WriteString(strings.Join(vocabulary, ", "))
	}
	return b.String()
}

// SaveWriting stores a writing task as one question whose answer row carries
// the structure guide, with hints and vocabulary folded into the hint column.
func (s *QuestionStore) SaveWriting(q *practice.WritingQuestion) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id, err := insertQuestion(tx, q.Metadata.PracticeType, "writing", q.Metadata.Topic, "Medium", nil)
	if err != nil {
		return 0, err
	}

	context := fmt.Sprintf("IELTS %s - %s", q.Metadata.IELTSType, q.Metadata.TaskNumber)
	if err := insertContent(tx, id, q.Content.TaskDescription, &context, q.Content.DataSource); err != nil {
		return 0, err
	}

	hint := formatWritingHint(q.Content.Hints, q.Content.VocabularySuggestions)
	if err := insertAnswer(tx, id, q.Content.StructureGuide, true, 1, strPtr(hint), "text", nil); err != nil {
		return 0, err
	}
	if err := insertMetadata(tx, id, "ielts_type", q.Metadata.IELTSType); err != nil {
		return 0, err
	}
	if err := insertMetadata(tx, id, "task_number", q.Metadata.TaskNumber); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit writing question: %w", err)
	}
	return id, nil
}

// SaveReading stores the passage as a root "passage" question and every
// comprehension question as a child referencing it. A failure anywhere rolls
// back the whole aggregate.
func (s *QuestionStore) SaveReading(q *practice.ReadingPractice) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rootID, err := insertQuestion(tx, q.Metadata.PracticeType, "passage", q.Metadata.Topic, q.Metadata.DifficultyLevel, nil)
	if err != nil {
		return 0, err
	}
	if err := insertContent(tx, rootID, "Reading Passage", strPtr(q.Content.Title), strPtr(q.Content.Passage)); err != nil {
		return 0, err
	}
	if err := insertMetadata(tx, rootID, "source_type", q.Metadata.SourceType); err != nil {
		return 0, err
	}

	for _, question := range q.Content.Questions {
		childID, err := insertQuestion(tx, q.Metadata.PracticeType, question.QuestionType, q.Metadata.Topic, q.Metadata.DifficultyLevel, &rootID)
		if err != nil {
			return 0, err
		}
		if err := insertContent(tx, childID, question.QuestionText, strPtr(q.Content.Title), nil); err != nil {
			return 0, err
		}

		if question.QuestionType == "short_answer" {
			var sample string
			if question.SampleAnswer != nil {
				sample = *question.SampleAnswer
			}
			if err := insertAnswer(tx, childID, sample, true, 1, nil, "text", strPtr(question.Explanation)); err != nil {
				return 0, err
			}
			continue
		}
		for i, opt := range question.Options {
			if err := insertAnswer(tx, childID, opt.Option, opt.IsCorrect, i+1, nil, "option", strPtr(question.Explanation)); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reading aggregate: %w", err)
	}
	return rootID, nil
}

// SaveListening stores the audio transcript as a root "audio_script" question
// and each comprehension question as a multiple-choice child.
func (s *QuestionStore) SaveListening(q *practice.ListeningPractice) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rootID, err := insertQuestion(tx, q.Metadata.PracticeType, "audio_script", q.Metadata.Topic, q.Metadata.DifficultyLevel, nil)
	if err != nil {
		return 0, err
	}
	if err := insertContent(tx, rootID, "Listening Audio", strPtr(q.Content.Context), strPtr(q.Content.AudioTranscript)); err != nil {
		return 0, err
	}
	if err := insertMetadata(tx, rootID, "toeic_part", q.Metadata.TOEICPart); err != nil {
		return 0, err
	}

	for _, question := range q.Content.Questions {
		childID, err := insertQuestion(tx, q.Metadata.PracticeType, q.Metadata.QuestionType, q.Metadata.Topic, q.Metadata.DifficultyLevel, &rootID)
		if err != nil {
			return 0, err
		}
		if err := insertContent(tx, childID, question.QuestionText, strPtr(q.Content.Context), nil); err != nil {
			return 0, err
		}
		for i, opt := range question.Options {
			if err := insertAnswer(tx, childID, opt.Option, opt.IsCorrect, i+1, strPtr(q.Content.Hint), "option", nil); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit listening aggregate: %w", err)
	}
	return rootID, nil
}

// ListGenerated returns the root question and its children, joined with
// content and answers, shaped for the practice API.
func (s *QuestionStore) ListGenerated(practiceType string, rootID int64) ([]model.FormattedQuestion, error) {
	rows, err := s.db.Query(
		`SELECT q.question_id, q.question_type, q.difficulty_level, q.parent_id,
		        c.question_text, c.context, c.audio_url, c.image_url, c.passage_text
		 FROM questions q
		 JOIN question_content c ON c.question_id = q.question_id
		 WHERE q.practice_type = ? AND (q.question_id = ? OR q.parent_id = ?)
		 ORDER BY q.question_id ASC`,
		practiceType, rootID, rootID,
	)
	if err != nil {
		return nil, fmt.Errorf("list generated questions: %w", err)
	}
	defer rows.Close()

	var questions []model.FormattedQuestion
	for rows.Next() {
		var fq model.FormattedQuestion
		var context sql.NullString
		err := rows.Scan(&fq.QuestionID, &fq.QuestionType, &fq.Difficulty, &fq.ParentID,
			&fq.QuestionText, &context, &fq.Audio, &fq.QuestionImage, &fq.PassageText)
		if err != nil {
			return nil, fmt.Errorf("scan generated question: %w", err)
		}
		fq.QuestionContext = context.String
		fq.PracticeType = practiceType
		questions = append(questions, fq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		if err := s.attachAnswers(&questions[i]); err != nil {
			return nil, err
		}
	}
	return questions, nil
}

func (s *QuestionStore) attachAnswers(fq *model.FormattedQuestion) error {
	rows, err := s.db.Query(
		`SELECT content, is_correct, hint, explanation
		 FROM answers WHERE question_id = ? ORDER BY option_order ASC`,
		fq.QuestionID,
	)
	if err != nil {
		return fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var content string
		var isCorrect bool
		var hint, explanation *string
		if err := rows.Scan(&content, &isCorrect, &hint, &explanation); err != nil {
			return fmt.Errorf("scan answer: %w", err)
		}
		fq.Options = append(fq.Options, content)
		fq.CorrectAnswer = append(fq.CorrectAnswer, isCorrect)
		fq.Hint = append(fq.Hint, hint)
		fq.Explanation = append(fq.Explanation, explanation)
	}
	return rows.Err()
}
