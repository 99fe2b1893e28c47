package sync_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kiroku/pkg/adapter"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/repository"
	syncuc "github.com/m-mizutani/kiroku/pkg/usecase/sync"
)

// mockDrive is a mock implementation of adapter.Drive for testing
type mockDrive struct {
	calls     atomic.Int64
	writeFunc func(ctx context.Context, file adapter.FileID, data []byte) error
	readFunc  func(ctx context.Context, file adapter.FileID) ([]byte, error)
}

func (m *mockDrive) EnsureFolder(ctx context.Context, name string) (adapter.FolderID, error) {
	m.calls.Add(1)
	return adapter.FolderID(name), nil
}

func (m *mockDrive) EnsureFile(ctx context.Context, folder adapter.FolderID, name string) (adapter.FileID, error) {
	m.calls.Add(1)
	return adapter.FileID(string(folder) + "/" + name), nil
}

func (m *mockDrive) WriteFile(ctx context.Context, file adapter.FileID, data []byte) error {
	m.calls.Add(1)
	if m.writeFunc != nil {
		return m.writeFunc(ctx, file, data)
	}
	return nil
}

func (m *mockDrive) ReadFile(ctx context.Context, file adapter.FileID) ([]byte, error) {
	m.calls.Add(1)
	if m.readFunc != nil {
		return m.readFunc(ctx, file)
	}
	return nil, errors.New("not implemented")
}

func seedRepo(t *testing.T, titles ...string) *repository.Memory {
	t.Helper()
	repo := repository.NewMemory()
	for _, title := range titles {
		n := &model.Note{
			ID:      model.NewNoteID(),
			Title:   title,
			Content: "content of " + title,
			Type:    model.NoteTypeText,
		}
		gt.NoError(t, repo.PutNote(context.Background(), n))
	}
	return repo
}

func TestPushUploadsSnapshot(t *testing.T) {
	repo := seedRepo(t, "First", "Second")
	ctx := context.Background()

	var uploaded []byte
	drive := &mockDrive{
		writeFunc: func(ctx context.Context, file adapter.FileID, data []byte) error {
			gt.Equal(t, file, adapter.FileID("kiroku/notes.json"))
			uploaded = data
			return nil
		},
	}

	uc := syncuc.New(repo, drive)
	gt.NoError(t, uc.Authenticate(ctx))
	gt.NoError(t, uc.Push(ctx))

	notes, err := model.DecodeSnapshot(uploaded)
	gt.NoError(t, err)
	gt.A(t, notes).Length(2)
	gt.False(t, uc.LastSync().IsZero())
}

func TestPushUnauthenticated(t *testing.T) {
	repo := seedRepo(t, "First")
	drive := &mockDrive{}

	uc := syncuc.New(repo, drive)

	err := uc.Push(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, syncuc.ErrNotAuthenticated))
	gt.Equal(t, drive.calls.Load(), int64(0)) // no remote call was made
}

func TestPushSingleFlight(t *testing.T) {
	repo := seedRepo(t, "First")
	ctx := context.Background()

	writing := make(chan struct{})
	release := make(chan struct{})
	drive := &mockDrive{
		writeFunc: func(ctx context.Context, file adapter.FileID, data []byte) error {
			close(writing)
			<-release
			return nil
		},
	}

	uc := syncuc.New(repo, drive)
	gt.NoError(t, uc.Authenticate(ctx))
	authCalls := drive.calls.Load()

	done := make(chan error, 1)
	go func() {
		done <- uc.Push(ctx)
	}()
	<-writing

	// A second push while the first is in flight is rejected without any
	// remote call
	before := drive.calls.Load()
	err := uc.Push(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, syncuc.ErrInFlight))
	gt.Equal(t, drive.calls.Load(), before)

	close(release)
	gt.NoError(t, <-done)

	// And once the first completes, pushing works again
	drive.writeFunc = nil
	gt.NoError(t, uc.Push(ctx))
	gt.True(t, drive.calls.Load() > authCalls)
}

func TestPullAdoptsRemoteSnapshot(t *testing.T) {
	repo := seedRepo(t, "Stale")
	ctx := context.Background()

	remote := []*model.Note{
		{ID: model.NewNoteID(), Title: "Remote A", Content: "aaa", Type: model.NoteTypeText},
		{ID: model.NewNoteID(), Title: "Remote B", Content: "bbb", Type: model.NoteTypeText},
	}
	data, err := model.EncodeSnapshot(remote)
	gt.NoError(t, err)

	drive := &mockDrive{
		readFunc: func(ctx context.Context, file adapter.FileID) ([]byte, error) {
			return data, nil
		},
	}

	uc := syncuc.New(repo, drive)
	gt.NoError(t, uc.Authenticate(ctx))

	pulled, err := uc.Pull(ctx)
	gt.NoError(t, err)
	gt.Equal(t, pulled, remote)

	gt.NoError(t, uc.Adopt(ctx, pulled))

	local, err := repo.ListNotes(ctx)
	gt.NoError(t, err)
	gt.Equal(t, local, remote)
}

func TestPullUnauthenticated(t *testing.T) {
	repo := seedRepo(t)
	drive := &mockDrive{}

	uc := syncuc.New(repo, drive)

	_, err := uc.Pull(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, syncuc.ErrNotAuthenticated))
	gt.Equal(t, drive.calls.Load(), int64(0))
}

func TestPullCorruptRemote(t *testing.T) {
	repo := seedRepo(t, "Local")
	ctx := context.Background()

	drive := &mockDrive{
		readFunc: func(ctx context.Context, file adapter.FileID) ([]byte, error) {
			return []byte("{broken"), nil
		},
	}

	uc := syncuc.New(repo, drive)
	gt.NoError(t, uc.Authenticate(ctx))

	_, err := uc.Pull(ctx)
	gt.Error(t, err)

	// Local state is untouched by a failed pull
	local, err := repo.ListNotes(ctx)
	gt.NoError(t, err)
	gt.A(t, local).Length(1)
}

func TestPushRemoteFailure(t *testing.T) {
	repo := seedRepo(t, "Local")
	ctx := context.Background()

	drive := &mockDrive{
		writeFunc: func(ctx context.Context, file adapter.FileID, data []byte) error {
			return errors.New("remote exploded")
		},
	}

	uc := syncuc.New(repo, drive)
	gt.NoError(t, uc.Authenticate(ctx))

	err := uc.Push(ctx)
	gt.Error(t, err)
	gt.True(t, uc.LastSync().IsZero())

	// The guard is released after a failure
	drive.writeFunc = nil
	gt.NoError(t, uc.Push(ctx))
}

func TestCustomFolder(t *testing.T) {
	repo := seedRepo(t, "First")
	ctx := context.Background()

	drive := &mockDrive{
		writeFunc: func(ctx context.Context, file adapter.FileID, data []byte) error {
			gt.Equal(t, file, adapter.FileID("my-notes/notes.json"))
			return nil
		},
	}

	uc := syncuc.New(repo, drive, syncuc.WithFolder("my-notes"))
	gt.NoError(t, uc.Authenticate(ctx))
	gt.NoError(t, uc.Push(ctx))
}

func TestWatchPushesPeriodically(t *testing.T) {
	repo := seedRepo(t, "First")

	pushed := make(chan struct{}, 16)
	drive := &mockDrive{
		writeFunc: func(ctx context.Context, file adapter.FileID, data []byte) error {
			pushed <- struct{}{}
			return nil
		},
	}

	uc := syncuc.New(repo, drive)
	gt.NoError(t, uc.Authenticate(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- uc.Watch(ctx, time.Millisecond)
	}()

	<-pushed
	cancel()
	gt.True(t, errors.Is(<-done, context.Canceled))
}

func TestAuthenticateIsIdempotent(t *testing.T) {
	repo := seedRepo(t)
	drive := &mockDrive{}

	uc := syncuc.New(repo, drive)
	gt.False(t, uc.Authenticated())

	gt.NoError(t, uc.Authenticate(context.Background()))
	gt.True(t, uc.Authenticated())
	calls := drive.calls.Load()

	gt.NoError(t, uc.Authenticate(context.Background()))
	gt.Equal(t, drive.calls.Load(), calls) // no second remote call
}
