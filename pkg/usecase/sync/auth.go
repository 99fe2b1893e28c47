package sync

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// Authenticate verifies that the remote folder is reachable with the current
// credentials. It is idempotent: once it succeeds, later calls return
// immediately.
func (u *UseCase) Authenticate(ctx context.Context) error {
	if u.authed.Load() {
		return nil
	}
	if u.drive == nil {
		return goerr.Wrap(ErrNotAuthenticated, "no drive configured")
	}

	if _, err := u.drive.EnsureFolder(ctx, u.folder); err != nil {
		return goerr.Wrap(err, "failed to authenticate against drive")
	}

	u.authed.Store(true)
	return nil
}

// Authenticated reports whether Authenticate has succeeded
func (u *UseCase) Authenticated() bool {
	return u.authed.Load()
}
