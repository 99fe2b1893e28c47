package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
)

// Memory is an in-memory Repository for tests and ephemeral sessions.
type Memory struct {
	mu    sync.Mutex
	notes []*model.Note
}

func NewMemory() *Memory {
	return &Memory{}
}

func (r *Memory) PutNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notes {
		if n.ID == note.ID {
			r.notes[i] = note
			return nil
		}
	}
	r.notes = append(r.notes, note)
	return nil
}

func (r *Memory) GetNote(ctx context.Context, id model.NoteID) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, goerr.Wrap(model.ErrNoteNotFound, "no such note", goerr.Value("id", id))
}

func (r *Memory) ListNotes(ctx context.Context) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]*model.Note, len(r.notes))
	copy(notes, r.notes)
	return notes, nil
}

func (r *Memory) DeleteNote(ctx context.Context, id model.NoteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	remaining := r.notes[:0]
	for _, n := range r.notes {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}
	r.notes = remaining
	return nil
}

func (r *Memory) ReplaceAll(ctx context.Context, notes []*model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = make([]*model.Note, len(notes))
	copy(r.notes, notes)
	return nil
}
