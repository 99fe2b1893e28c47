package note

import (
	"github.com/m-mizutani/kiroku/pkg/adapter"
	"github.com/m-mizutani/kiroku/pkg/repository"
)

// UseCase provides the note store operations
type UseCase struct {
	repo repository.Repository
	ai   adapter.AI
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithAI enables enrichment of new notes. Without it notes are stored as
// written.
func WithAI(ai adapter.AI) Option {
	return func(uc *UseCase) {
		uc.ai = ai
	}
}

// New creates a new note UseCase instance
func New(repo repository.Repository, opts ...Option) *UseCase {
	uc := &UseCase{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
