package sync

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/utils/logging"
)

// Push overwrites the remote snapshot with the local collection. The remote
// folder and file are created if absent. The remote state is not consulted:
// last writer wins.
//
// ErrNotAuthenticated and ErrInFlight are returned before any remote call.
func (u *UseCase) Push(ctx context.Context) error {
	if err := u.begin(); err != nil {
		return err
	}
	defer u.end()

	notes, err := u.repo.ListNotes(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load local notes")
	}

	data, err := model.EncodeSnapshot(notes)
	if err != nil {
		return err
	}

	folder, err := u.drive.EnsureFolder(ctx, u.folder)
	if err != nil {
		return goerr.Wrap(err, "failed to locate remote folder")
	}

	file, err := u.drive.EnsureFile(ctx, folder, RemoteFileName)
	if err != nil {
		return goerr.Wrap(err, "failed to locate remote file")
	}

	if err := u.drive.WriteFile(ctx, file, data); err != nil {
		return goerr.Wrap(err, "failed to upload snapshot")
	}

	u.markSynced()
	logging.From(ctx).Info("pushed snapshot", "notes", len(notes), "folder", u.folder)
	return nil
}
