package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidNote  = goerr.New("invalid note")
	ErrNoteNotFound = goerr.New("note not found")
)

type NoteID string

// NewNoteID generates a new unique NoteID
func NewNoteID() NoteID {
	return NoteID(uuid.New().String())
}

type NoteType string

const (
	NoteTypeText  NoteType = "text"
	NoteTypeVoice NoteType = "voice"
)

// DefaultTitle is assigned when a draft is saved without a title.
const DefaultTitle = "Untitled Note"

// MaxContentLength is the maximum content length in runes.
const MaxContentLength = 10000

// Note is the sole persisted entity. Content is never empty after trimming;
// AudioRef weakly references externally stored audio, the store does not own
// the audio bytes.
type Note struct {
	ID       NoteID   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Type     NoteType `json:"type"`
	AudioRef string   `json:"audio_ref,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`

	CreatedAt time.Time `json:"timestamp"`
}

// Matches reports whether the note matches the query by case-insensitive
// substring against title, content, or any tag. An empty query matches all.
func (n *Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// NoteDraft is the user input to create a note, before an ID and timestamp
// are assigned.
type NoteDraft struct {
	Title    string
	Content  string
	Type     NoteType
	AudioRef string
}

// Validate checks if the draft can be persisted
func (d *NoteDraft) Validate() error {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Content,
			validation.By(requireNonBlank),
			validation.RuneLength(0, MaxContentLength),
		),
		validation.Field(&d.Type,
			validation.In(NoteTypeText, NoteTypeVoice),
		),
	); err != nil {
		return goerr.Wrap(ErrInvalidNote, err.Error())
	}
	return nil
}

func requireNonBlank(v any) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return goerr.New("content must not be blank")
	}
	return nil
}

// NotePatch carries the fields of an update. Nil fields are preserved on the
// existing note (shallow merge).
type NotePatch struct {
	Title   *string
	Content *string
	Tags    []string
}

// Validate checks if the patch can be applied
func (p *NotePatch) Validate() error {
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return goerr.Wrap(ErrInvalidNote, "content must not be blank")
	}
	return nil
}
