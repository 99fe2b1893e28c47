package note

import (
	"context"
	"sort"

	"github.com/m-mizutani/kiroku/pkg/model"
)

// Get retrieves a single note by ID
func (u *UseCase) Get(ctx context.Context, id model.NoteID) (*model.Note, error) {
	return u.repo.GetNote(ctx, id)
}

// List returns all notes ordered by descending creation time. The ordering is
// applied at retrieval; the store itself keeps no order.
func (u *UseCase) List(ctx context.Context) ([]*model.Note, error) {
	notes, err := u.repo.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}
