package note

import (
	"context"

	"github.com/m-mizutani/kiroku/pkg/model"
)

// Search returns the notes whose title, content or tags contain the query,
// case-insensitively. An empty query returns everything. Results keep the
// natural store order; there is no ranking.
func (u *UseCase) Search(ctx context.Context, query string) ([]*model.Note, error) {
	notes, err := u.repo.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*model.Note
	for _, n := range notes {
		if n.Matches(query) {
			matched = append(matched, n)
		}
	}

	return matched, nil
}
