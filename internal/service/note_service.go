package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inotebook/server/internal/domain"
	"github.com/inotebook/server/internal/repository"
	"gorm.io/gorm"
)

type NoteService struct {
	noteRepo repository.NoteRepository
}

func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

type AddNoteInput struct {
	Title       string
	Description string
	Tag         string
}

// NotePatch applies only its non-empty fields.
type NotePatch struct {
	Title       string
	Description string
	Tag         string
}

func (s *NoteService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error) {
	return s.noteRepo.GetByUserID(ctx, ownerID)
}

func (s *NoteService) Add(ctx context.Context, ownerID uuid.UUID, input AddNoteInput) (*domain.Note, error) {
	note := &domain.Note{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Tag:         input.Tag,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) Update(ctx context.Context, noteID, ownerID uuid.UUID, patch NotePatch) (*domain.Note, error) {
	note, err := s.getOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		note.Title = patch.Title
	}
	if patch.Description != "" {
		note.Description = patch.Description
	}
	if patch.Tag != "" {
		note.Tag = patch.Tag
	}
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, noteID, ownerID uuid.UUID) error {
	if _, err := s.getOwned(ctx, noteID, ownerID); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, noteID)
}

func (s *NoteService) getOwned(ctx context.Context, noteID, ownerID uuid.UUID) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}

	if note.UserID != ownerID {
		return nil, domain.ErrNotOwner
	}

	return note, nil
}
