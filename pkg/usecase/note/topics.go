package note

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
)

// SuggestTopics returns related topic suggestions for an existing note's
// content. Unlike creation-time enrichment this is on demand, so failures are
// reported to the caller instead of being swallowed.
func (u *UseCase) SuggestTopics(ctx context.Context, id model.NoteID) (string, error) {
	if u.ai == nil {
		return "", goerr.New("no enrichment backend for topic suggestion")
	}

	n, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return "", err
	}

	topics, err := u.ai.SuggestTopics(ctx, n.Content)
	if err != nil {
		return "", goerr.Wrap(err, "failed to suggest topics", goerr.Value("id", id))
	}

	return topics, nil
}
