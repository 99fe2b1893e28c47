package note

import (
	"context"

	"github.com/m-mizutani/kiroku/pkg/model"
)

// Delete removes a note. Deleting an ID that does not exist is a no-op, so
// repeated deletes settle on the same state.
func (u *UseCase) Delete(ctx context.Context, id model.NoteID) error {
	return u.repo.DeleteNote(ctx, id)
}
