package repository

import (
	"context"

	"github.com/m-mizutani/kiroku/pkg/model"
)

// Repository defines the interface for note persistence. All implementations
// treat the collection as one snapshot: a mutation is applied to the whole
// collection and persisted as a unit, so a reader never observes a partial
// write.
type Repository interface {
	// PutNote inserts a note, or replaces the note with the same ID
	PutNote(ctx context.Context, note *model.Note) error

	// GetNote retrieves a note by ID. Returns model.ErrNoteNotFound if absent.
	GetNote(ctx context.Context, id model.NoteID) (*model.Note, error)

	// ListNotes retrieves all notes in natural store order
	ListNotes(ctx context.Context) ([]*model.Note, error)

	// DeleteNote removes a note by ID. Deleting an absent ID is a no-op.
	DeleteNote(ctx context.Context, id model.NoteID) error

	// ReplaceAll replaces the whole collection, used when adopting a pulled
	// remote snapshot
	ReplaceAll(ctx context.Context, notes []*model.Note) error
}
