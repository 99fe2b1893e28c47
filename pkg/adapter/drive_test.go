package adapter_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kiroku/pkg/adapter"
)

func setupDrive(t *testing.T) adapter.Drive {
	bucket := os.Getenv("TEST_KIROKU_BUCKET")
	if bucket == "" {
		t.Skip("TEST_KIROKU_BUCKET is not set")
	}

	drive, err := adapter.NewDrive(context.Background(), bucket, "")
	gt.NoError(t, err)

	return drive
}

func TestDriveRoundTrip(t *testing.T) {
	drive := setupDrive(t)
	ctx := context.Background()

	folder, err := drive.EnsureFolder(ctx, "kiroku-test")
	gt.NoError(t, err)

	file, err := drive.EnsureFile(ctx, folder, "notes.json")
	gt.NoError(t, err)

	payload := []byte(`[{"id":"test"}]`)
	gt.NoError(t, drive.WriteFile(ctx, file, payload))

	data, err := drive.ReadFile(ctx, file)
	gt.NoError(t, err)
	gt.Equal(t, data, payload)
}

func TestDriveEnsureFolderIdempotent(t *testing.T) {
	drive := setupDrive(t)
	ctx := context.Background()

	first, err := drive.EnsureFolder(ctx, "kiroku-test")
	gt.NoError(t, err)

	second, err := drive.EnsureFolder(ctx, "kiroku-test")
	gt.NoError(t, err)
	gt.Equal(t, first, second)
}
