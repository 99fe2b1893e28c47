package sync

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/utils/logging"
)

// Pull fetches the remote snapshot and returns the decoded notes. The local
// store is not modified; use Adopt to replace it.
//
// ErrNotAuthenticated and ErrInFlight are returned before any remote call.
func (u *UseCase) Pull(ctx context.Context) ([]*model.Note, error) {
	if err := u.begin(); err != nil {
		return nil, err
	}
	defer u.end()

	folder, err := u.drive.EnsureFolder(ctx, u.folder)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to locate remote folder")
	}

	file, err := u.drive.EnsureFile(ctx, folder, RemoteFileName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to locate remote file")
	}

	data, err := u.drive.ReadFile(ctx, file)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download snapshot")
	}

	notes, err := model.DecodeSnapshot(data)
	if err != nil {
		return nil, goerr.Wrap(err, "remote snapshot is corrupt")
	}

	u.markSynced()
	logging.From(ctx).Info("pulled snapshot", "notes", len(notes), "folder", u.folder)
	return notes, nil
}

// Adopt replaces the local collection with a pulled snapshot
func (u *UseCase) Adopt(ctx context.Context, notes []*model.Note) error {
	if err := u.repo.ReplaceAll(ctx, notes); err != nil {
		return goerr.Wrap(err, "failed to adopt remote snapshot")
	}
	return nil
}
