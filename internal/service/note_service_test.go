package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inotebook/server/internal/domain"
	"github.com/inotebook/server/internal/repository/postgres"
	"github.com/inotebook/server/internal/service"
	"github.com/inotebook/server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T) (*service.NoteService, *testutil.TestDB) {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewNoteService(repos.Note), testDB
}

func TestNoteService_AddAndList(t *testing.T) {
	notes, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	created, err := notes.Add(ctx, owner.ID, service.AddNoteInput{
		Title:       "Shopping",
		Description: "buy milk",
		Tag:         "home",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.UserID)
	assert.Equal(t, "Shopping", created.Title)

	owned, err := notes.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, created.ID, owned[0].ID)

	// Listing is scoped to the owner
	othersNotes, err := notes.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, othersNotes)
}

func TestNoteService_Update(t *testing.T) {
	notes, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	note := testutil.NewNoteBuilder(owner.ID).
		WithTitle("Original title").
		WithDescription("Original description").
		WithTag("work").
		Build(t, testDB.DB)

	t.Run("not found", func(t *testing.T) {
		_, err := notes.Update(ctx, uuid.New(), owner.ID, service.NotePatch{Title: "anything"})
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		_, err := notes.Update(ctx, note.ID, other.ID, service.NotePatch{Title: "hijacked"})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("partial patch leaves other fields", func(t *testing.T) {
		updated, err := notes.Update(ctx, note.ID, owner.ID, service.NotePatch{Tag: "x"})
		require.NoError(t, err)
		assert.Equal(t, "Original title", updated.Title)
		assert.Equal(t, "Original description", updated.Description)
		assert.Equal(t, "x", updated.Tag)
	})

	t.Run("full patch", func(t *testing.T) {
		updated, err := notes.Update(ctx, note.ID, owner.ID, service.NotePatch{
			Title:       "New title",
			Description: "New description",
			Tag:         "personal",
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "New description", updated.Description)
		assert.Equal(t, "personal", updated.Tag)
		assert.Equal(t, owner.ID, updated.UserID)
	})
}

func TestNoteService_Delete(t *testing.T) {
	notes, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	note := testutil.NewNoteBuilder(owner.ID).Build(t, testDB.DB)

	err := notes.Delete(ctx, uuid.New(), owner.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	err = notes.Delete(ctx, note.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	require.NoError(t, notes.Delete(ctx, note.ID, owner.ID))

	remaining, err := notes.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
