package note

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
)

// Update merges the patch into the existing note and persists it. Fields not
// present in the patch are preserved, and the creation timestamp is never
// refreshed.
func (u *UseCase) Update(ctx context.Context, id model.NoteID, patch model.NotePatch) (*model.Note, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	n, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *n
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Tags != nil {
		updated.Tags = patch.Tags
	}

	if err := u.repo.PutNote(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to save note", goerr.Value("id", id))
	}

	return &updated, nil
}
