package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inotebook/server/internal/api/middleware"
	"github.com/inotebook/server/internal/domain"
	"github.com/inotebook/server/internal/service"
	"github.com/inotebook/server/internal/validation"
)

type NotesHandler struct {
	noteService *service.NoteService
	validate    *validation.Validator
}

func NewNotesHandler(noteService *service.NoteService, validate *validation.Validator) *NotesHandler {
	return &NotesHandler{
		noteService: noteService,
		validate:    validate,
	}
}

type AddNoteRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=5"`
	Tag         string `json:"tag"`
}

type UpdateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

func (h *NotesHandler) FetchAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Please authenticate using a valid token"})
		return
	}

	notes, err := h.noteService.List(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("ERROR [NotesHandler.FetchAll] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	if notes == nil {
		notes = []*domain.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NotesHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Please authenticate using a valid token"})
		return
	}

	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid request body"})
		return
	}

	if fieldErrors := h.validate.Validate(req); fieldErrors != nil {
		writeValidationErrors(w, fieldErrors)
		return
	}

	note, err := h.noteService.Add(r.Context(), identity.UserID, service.AddNoteInput{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		log.Printf("ERROR [NotesHandler.Add] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Please authenticate using a valid token"})
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid request body"})
		return
	}

	note, err := h.noteService.Update(r.Context(), noteID, identity.UserID, service.NotePatch{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		h.writeNoteError(w, "NotesHandler.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"note": note})
}

func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Please authenticate using a valid token"})
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if err := h.noteService.Delete(r.Context(), noteID, identity.UserID); err != nil {
		h.writeNoteError(w, "NotesHandler.Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

func (h *NotesHandler) writeNoteError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNoteNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrNotOwner):
		http.Error(w, "Not Allowed", http.StatusUnauthorized)
	default:
		log.Printf("ERROR [%s] %v", op, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
}
