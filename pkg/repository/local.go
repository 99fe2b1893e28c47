package repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/utils/logging"
)

// SnapshotFileName is the fixed storage key of the local snapshot.
const SnapshotFileName = "notes.json"

// Local persists the collection as a single JSON snapshot file. Every
// mutation loads the whole snapshot, applies the change in memory, and writes
// the whole snapshot back via a temp file rename. Safe only for a single
// process, which is the intended deployment.
type Local struct {
	path string
}

// NewLocal creates a Local repository rooted at dir. The directory is created
// if it does not exist.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, goerr.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.Value("dir", dir))
	}

	return &Local{
		path: filepath.Join(dir, SnapshotFileName),
	}, nil
}

// load reads the snapshot. A missing or unreadable snapshot degrades to an
// empty collection so that note taking keeps working.
func (r *Local) load(ctx context.Context) []*model.Note {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.From(ctx).Warn("failed to read snapshot, starting empty", "path", r.path, "error", err)
		}
		return []*model.Note{}
	}

	notes, err := model.DecodeSnapshot(data)
	if err != nil {
		logging.From(ctx).Warn("snapshot is corrupt, starting empty", "path", r.path, "error", err)
		return []*model.Note{}
	}

	return notes
}

func (r *Local) save(notes []*model.Note) error {
	data, err := model.EncodeSnapshot(notes)
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write snapshot", goerr.Value("path", tmp))
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return goerr.Wrap(err, "failed to replace snapshot", goerr.Value("path", r.path))
	}

	return nil
}

func (r *Local) PutNote(ctx context.Context, note *model.Note) error {
	notes := r.load(ctx)

	replaced := false
	for i, n := range notes {
		if n.ID == note.ID {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, note)
	}

	return r.save(notes)
}

func (r *Local) GetNote(ctx context.Context, id model.NoteID) (*model.Note, error) {
	for _, n := range r.load(ctx) {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, goerr.Wrap(model.ErrNoteNotFound, "no such note", goerr.Value("id", id))
}

func (r *Local) ListNotes(ctx context.Context) ([]*model.Note, error) {
	return r.load(ctx), nil
}

func (r *Local) DeleteNote(ctx context.Context, id model.NoteID) error {
	notes := r.load(ctx)

	remaining := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) == len(notes) {
		return nil
	}

	return r.save(remaining)
}

func (r *Local) ReplaceAll(ctx context.Context, notes []*model.Note) error {
	return r.save(notes)
}
