package sync

import (
	"sync/atomic"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/adapter"
	"github.com/m-mizutani/kiroku/pkg/repository"
)

var (
	// ErrNotAuthenticated is returned before any remote call when the drive
	// has not been authenticated
	ErrNotAuthenticated = goerr.New("drive is not authenticated")
	// ErrInFlight is returned when a push or pull is already running on this
	// instance
	ErrInFlight = goerr.New("sync already in progress")
)

// Default remote names. The folder is well known so that every client of the
// same account converges on the same file.
const (
	DefaultFolderName = "kiroku"
	RemoteFileName    = "notes.json"
)

// UseCase mirrors the local snapshot to a remote drive file. It performs no
// merge and no retry: push is last-writer-wins, pull adopts the remote as is.
type UseCase struct {
	repo   repository.Repository
	drive  adapter.Drive
	folder string

	authed   atomic.Bool
	inFlight atomic.Bool
	lastSync atomic.Pointer[time.Time]
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithFolder overrides the remote folder name
func WithFolder(name string) Option {
	return func(uc *UseCase) {
		uc.folder = name
	}
}

// New creates a new sync UseCase instance
func New(repo repository.Repository, drive adapter.Drive, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:   repo,
		drive:  drive,
		folder: DefaultFolderName,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// LastSync returns the time of the last successful push or pull, or zero if
// none happened yet.
func (u *UseCase) LastSync() time.Time {
	if t := u.lastSync.Load(); t != nil {
		return *t
	}
	return time.Time{}
}

func (u *UseCase) markSynced() {
	now := time.Now()
	u.lastSync.Store(&now)
}

// begin acquires the single-flight guard. Overlapping attempts are rejected,
// not queued.
func (u *UseCase) begin() error {
	if !u.authed.Load() {
		return ErrNotAuthenticated
	}
	if !u.inFlight.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	return nil
}

func (u *UseCase) end() {
	u.inFlight.Store(false)
}
