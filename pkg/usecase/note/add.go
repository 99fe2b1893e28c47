package note

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/utils/logging"
)

// Add validates the draft, assigns identity and creation time, optionally
// enriches the note, and persists it. Enrichment failures never block the
// save.
func (u *UseCase) Add(ctx context.Context, draft model.NoteDraft) (*model.Note, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	n := &model.Note{
		ID:        model.NewNoteID(),
		Title:     strings.TrimSpace(draft.Title),
		Content:   strings.TrimSpace(draft.Content),
		Type:      draft.Type,
		AudioRef:  draft.AudioRef,
		CreatedAt: time.Now(),
	}
	if n.Title == "" {
		n.Title = model.DefaultTitle
	}
	if n.Type == "" {
		n.Type = model.NoteTypeText
	}

	u.enrich(ctx, n)

	if err := u.repo.PutNote(ctx, n); err != nil {
		return nil, goerr.Wrap(err, "failed to save note")
	}

	return n, nil
}

// AddVoice transcribes recorded audio and stores the transcript as a voice
// note. Unlike tag or summary enrichment the transcript is the note content,
// so a transcription failure fails the save.
func (u *UseCase) AddVoice(ctx context.Context, title string, audio []byte, audioRef string) (*model.Note, error) {
	if u.ai == nil {
		return nil, goerr.New("no enrichment backend for transcription")
	}

	transcript, err := u.ai.Transcribe(ctx, audio)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to transcribe audio")
	}

	return u.Add(ctx, model.NoteDraft{
		Title:    title,
		Content:  transcript,
		Type:     model.NoteTypeVoice,
		AudioRef: audioRef,
	})
}

// enrich merges derived fields into a new note. Failures are logged and
// swallowed so that core note taking works without AI configured.
func (u *UseCase) enrich(ctx context.Context, n *model.Note) {
	if u.ai == nil {
		return
	}
	logger := logging.From(ctx)

	tags, err := u.ai.GenerateTags(ctx, n.Content)
	if err != nil {
		logger.Warn("tag generation failed, saving without tags", "error", err)
	} else {
		n.Tags = tags
	}

	summary, err := u.ai.Summarize(ctx, n.Content)
	if err != nil {
		logger.Warn("summarization failed, saving without summary", "error", err)
	} else if strings.TrimSpace(summary) != "" {
		n.Summary = summary
	}
}
