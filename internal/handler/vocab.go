package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/model"
	"github.com/minhngdev/lingopad/internal/store"
)

type VocabHandler struct {
	vocab    *store.VocabStore
	imageDir string
	logger   *slog.Logger
}

// NewVocabHandler stores uploaded list and item images under imageDir, which
// is served at /static/images/.
func NewVocabHandler(vocab *store.VocabStore, imageDir string, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{
		vocab:    vocab,
		imageDir: imageDir,
		logger:   logger.With("component", "vocabulary"),
	}
}

// saveImage decodes a base64 payload (with or without a data: prefix) to a
// uniquely named PNG under the image directory and returns its public URL.
func (h *VocabHandler) saveImage(encoded string) (string, error) {
	if i := strings.Index(encoded, "base64,"); i >= 0 {
		encoded = encoded[i+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	name := uuid.NewString() + ".png"
	if err := os.MkdirAll(h.imageDir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(h.imageDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return "/static/images/" + name, nil
}

// Lists returns the user's own lists and the public starter lists.
func (h *VocabHandler) Lists(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	own, err := h.vocab.ListsForUser(userID)
	if err != nil {
		h.logger.Error("list user vocab failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "failed to list vocabulary")
		return
	}
	public, err := h.vocab.PublicLists()
	if err != nil {
		h.logger.Error("list public vocab failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list vocabulary")
		return
	}
	if own == nil {
		own = []model.VocabList{}
	}
	if public == nil {
		public = []model.VocabList{}
	}

	writeData(w, http.StatusOK, "Vocabulary list retrieved successfully", map[string]any{
		"vocab_list_user":   own,
		"vocab_list_public": public,
	})
}

type vocabListRequest struct {
	ListID      int64  `json:"list_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

func (h *VocabHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req vocabListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	var imageURL string
	if req.ImageBase64 != "" {
		url, err := h.saveImage(req.ImageBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image data")
			return
		}
		imageURL = url
	}

	list, err := h.vocab.CreateList(userID, req.Title, req.Category, req.Description, imageURL)
	if err != nil {
		h.logger.Error("create vocab list failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "failed to create vocabulary list")
		return
	}
	writeData(w, http.StatusOK, "Vocabulary list created successfully", list)
}

// ownedList loads a list and enforces the write rules: public lists (negative
// ids) are never editable, and users only touch their own lists.
func (h *VocabHandler) ownedList(w http.ResponseWriter, r *http.Request, listID int64) *model.VocabList {
	if listID < 0 {
		writeError(w, http.StatusForbidden, "public vocabulary lists cannot be modified")
		return nil
	}
	list, err := h.vocab.GetList(listID)
	if err != nil {
		h.logger.Error("get vocab list failed", "error", err, "list_id", listID)
		writeError(w, http.StatusInternalServerError, "failed to load vocabulary list")
		return nil
	}
	if list == nil || list.UserID != auth.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "vocabulary list not found")
		return nil
	}
	return list
}

func (h *VocabHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	var req vocabListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	list := h.ownedList(w, r, req.ListID)
	if list == nil {
		return
	}

	imageURL := list.Image
	if req.ImageBase64 != "" {
		url, err := h.saveImage(req.ImageBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image data")
			return
		}
		imageURL = url
	}

	updated, err := h.vocab.UpdateList(req.ListID, req.Title, req.Category, req.Description, imageURL)
	if err != nil {
		h.logger.Error("update vocab list failed", "error", err, "list_id", req.ListID)
		writeError(w, http.StatusInternalServerError, "failed to update vocabulary list")
		return
	}
	writeData(w, http.StatusOK, "Vocabulary list updated successfully", updated)
}

func (h *VocabHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	if h.ownedList(w, r, listID) == nil {
		return
	}
	if err := h.vocab.DeleteList(listID); err != nil {
		h.logger.Error("delete vocab list failed", "error", err, "list_id", listID)
		writeError(w, http.StatusInternalServerError, "failed to delete vocabulary list")
		return
	}
	writeData(w, http.StatusOK, "Vocabulary list deleted successfully", nil)
}

// Items returns the items of one list. Public lists are readable by everyone.
func (h *VocabHandler) Items(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	list, err := h.vocab.GetList(listID)
	if err != nil {
		h.logger.Error("get vocab list failed", "error", err, "list_id", listID)
		writeError(w, http.StatusInternalServerError, "failed to load vocabulary list")
		return
	}
	if list == nil || (list.ID > 0 && list.UserID != auth.UserID(r.Context())) {
		writeError(w, http.StatusNotFound, "vocabulary list not found")
		return
	}

	items, err := h.vocab.ListItems(listID)
	if err != nil {
		h.logger.Error("list vocab items failed", "error", err, "list_id", listID)
		writeError(w, http.StatusInternalServerError, "failed to list vocabulary items")
		return
	}
	if items == nil {
		items = []model.VocabItem{}
	}
	writeData(w, http.StatusOK, "Vocabulary items retrieved successfully", items)
}

type vocabItemRequest struct {
	ItemID      int64  `json:"item_id"`
	ListID      int64  `json:"list_id"`
	Word        string `json:"word"`
	Definition  string `json:"definition"`
	Example     string `json:"example"`
	IPA         string `json:"ipa"`
	ImageBase64 string `json:"image_base64"`
}

func (h *VocabHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req vocabItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Word = strings.TrimSpace(req.Word)
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	if h.ownedList(w, r, req.ListID) == nil {
		return
	}

	item := &model.VocabItem{
		ListID:     req.ListID,
		Word:       req.Word,
		Definition: req.Definition,
		Example:    req.Example,
		IPA:        req.IPA,
	}
	if req.ImageBase64 != "" {
		url, err := h.saveImage(req.ImageBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image data")
			return
		}
		item.ImageURL = &url
	}

	created, err := h.vocab.CreateItem(item)
	if err != nil {
		h.logger.Error("create vocab item failed", "error", err, "list_id", req.ListID)
		writeError(w, http.StatusInternalServerError, "failed to create vocabulary item")
		return
	}
	writeData(w, http.StatusOK, "Vocabulary item created successfully", created)
}

func (h *VocabHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req vocabItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if h.ownedList(w, r, req.ListID) == nil {
		return
	}

	item, err := h.vocab.GetItem(req.ItemID)
	if err != nil {
		h.logger.Error("get vocab item failed", "error", err, "item_id", req.ItemID)
		writeError(w, http.StatusInternalServerError, "failed to load vocabulary item")
		return
	}
	if item == nil || item.ListID != req.ListID {
		writeError(w, http.StatusNotFound, "vocabulary item not found")
		return
	}

	item.Word = req.Word
	item.Definition = req.Definition
	item.Example = req.Example
	item.IPA = req.IPA
	if req.ImageBase64 != "" {
		url, err := h.saveImage(req.ImageBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image data")
			return
		}
		item.ImageURL = &url
	}

	updated, err := h.vocab.UpdateItem(item)
	if err != nil {
		h.logger.Error("update vocab item failed", "error", err, "item_id", req.ItemID)
		writeError(w, http.StatusInternalServerError, "failed to update vocabulary item")
		return
	}
	writeData(w, http.StatusOK, "Vocabulary item updated successfully", updated)
}

func (h *VocabHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseIDParam(r, "item_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.vocab.GetItem(itemID)
	if err != nil {
		h.logger.Error("get vocab item failed", "error", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "failed to load vocabulary item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "vocabulary item not found")
		return
	}
	if h.ownedList(w, r, item.ListID) == nil {
		return
	}

	if err := h.vocab.DeleteItem(item.ID, item.ListID); err != nil {
		h.logger.Error("delete vocab item failed", "error", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "failed to delete vocabulary item")
		return
	}
	writeData(w, http.StatusOK, "Vocabulary item deleted successfully", nil)
}
