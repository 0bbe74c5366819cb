package store

import (
	"database/sql"
	"fmt"

	"github.com/minhngdev/lingopad/internal/model"
)

type VocabStore struct {
	db *sql.DB
}

func NewVocabStore(db *sql.DB) *VocabStore {
	return &VocabStore{db: db}
}

func scanVocabList(scanner interface{ Scan(...any) error }) (*model.VocabList, error) {
	var l model.VocabList
	err := scanner.Scan(&l.ID, &l.UserID, &l.Title, &l.Category, &l.Description,
		&l.TotalWords, &l.Progress, &l.Image, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const vocabListCols = `list_id, user_id, title, category, description, total_words, progress, image, created_at, updated_at`

func scanVocabItem(scanner interface{ Scan(...any) error }) (*model.VocabItem, error) {
	var i model.VocabItem
	err := scanner.Scan(&i.ID, &i.ListID, &i.Word, &i.Definition, &i.Example, &i.IPA,
		&i.AudioURLUS, &i.AudioURLUK, &i.ImageURL, &i.DifficultyLevel, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

const vocabItemCols = `item_id, list_id, word, definition, example, ipa, audio_url_us, audio_url_uk, image_url, difficulty_level, created_at`

// --- List methods ---

func (s *VocabStore) CreateList(userID int64, title, category, description, image string) (*model.VocabList, error) {
	result, err := s.db.Exec(
		`INSERT INTO vocab_lists (user_id, title, category, description, image)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, title, category, description, image,
	)
	if err != nil {
		return nil, fmt.Errorf("insert vocab list: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetList(id)
}

func (s *VocabStore) GetList(id int64) (*model.VocabList, error) {
	row := s.db.QueryRow(`SELECT `+vocabListCols+` FROM vocab_lists WHERE list_id = ?`, id)
	l, err := scanVocabList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vocab list: %w", err)
	}
	return l, nil
}

// ListsForUser returns the user's own lists; public starter lists come from
// PublicLists.
func (s *VocabStore) ListsForUser(userID int64) ([]model.VocabList, error) {
	return s.queryLists(`SELECT `+vocabListCols+` FROM vocab_lists WHERE user_id = ? AND list_id > 0 ORDER BY created_at DESC`, userID)
}

func (s *VocabStore) PublicLists() ([]model.VocabList, error) {
	return s.queryLists(`SELECT ` + vocabListCols + ` FROM vocab_lists WHERE list_id < 0 ORDER BY list_id DESC`)
}

func (s *VocabStore) queryLists(query string, args ...any) ([]model.VocabList, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vocab lists: %w", err)
	}
	defer rows.Close()

	var lists []model.VocabList
	for rows.Next() {
		l, err := scanVocabList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocab list: %w", err)
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func (s *VocabStore) UpdateList(id int64, title, category, description, image string) (*model.VocabList, error) {
	_, err := s.db.Exec(
		`UPDATE vocab_lists
		 SET title = ?, category = ?, description = ?, image = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE list_id = ?`,
		title, category, description, image, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update vocab list: %w", err)
	}
	return s.GetList(id)
}

func (s *VocabStore) DeleteList(id int64) error {
	_, err := s.db.Exec(`DELETE FROM vocab_lists WHERE list_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete vocab list: %w", err)
	}
	return nil
}

// --- Item methods ---

// CreateItem inserts the item and bumps the owning list's word count in one
// transaction.
func (s *VocabStore) CreateItem(item *model.VocabItem) (*model.VocabItem, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO vocab_items (list_id, word, definition, example, ipa, audio_url_us, audio_url_uk, image_url, difficulty_level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ListID, item.Word, item.Definition, item.Example, item.IPA,
		item.AudioURLUS, item.AudioURLUK, item.ImageURL, item.DifficultyLevel,
	)
	if err != nil {
		return nil, fmt.Errorf("insert vocab item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE vocab_lists SET total_words = total_words + 1, updated_at = CURRENT_TIMESTAMP WHERE list_id = ?`,
		item.ListID,
	)
	if err != nil {
		return nil, fmt.Errorf("increment word count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit vocab item: %w", err)
	}
	return s.GetItem(id)
}

func (s *VocabStore) GetItem(id int64) (*model.VocabItem, error) {
	row := s.db.QueryRow(`SELECT `+vocabItemCols+` FROM vocab_items WHERE item_id = ?`, id)
	i, err := scanVocabItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vocab item: %w", err)
	}
	return i, nil
}

func (s *VocabStore) ListItems(listID int64) ([]model.VocabItem, error) {
	rows, err := s.db.Query(`SELECT `+vocabItemCols+` FROM vocab_items WHERE list_id = ? ORDER BY item_id ASC`, listID)
	if err != nil {
		return nil, fmt.Errorf("list vocab items: %w", err)
	}
	defer rows.Close()

	var items []model.VocabItem
	for rows.Next() {
		i, err := scanVocabItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocab item: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (s *VocabStore) UpdateItem(item *model.VocabItem) (*model.VocabItem, error) {
	_, err := s.db.Exec(
		`UPDATE vocab_items
		 SET word = ?, definition = ?, example = ?, ipa = ?, audio_url_us = ?, audio_url_uk = ?, image_url = ?, difficulty_level = ?
		 WHERE item_id = ?`,
		item.Word, item.Definition, item.Example, item.IPA,
		item.AudioURLUS, item.AudioURLUK, item.ImageURL, item.DifficultyLevel, item.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update vocab item: %w", err)
	}
	return s.GetItem(item.ID)
}

// DeleteItem removes the item and decrements the owning list's word count in
// one transaction.
func (s *VocabStore) DeleteItem(id, listID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vocab_items WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("delete vocab item: %w", err)
	}
	_, err = tx.Exec(
		`UPDATE vocab_lists
		 SET total_words = CASE WHEN total_words > 0 THEN total_words - 1 ELSE 0 END,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE list_id = ?`,
		listID,
	)
	if err != nil {
		return fmt.Errorf("decrement word count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vocab item delete: %w", err)
	}
	return nil
}
