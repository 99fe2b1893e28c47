package adapter

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FolderID and FileID are opaque remote locators returned by a Drive.
type (
	FolderID string
	FileID   string
)

// Drive is the interface for cloud file storage used by sync. Any provider
// offering find-by-name, create, overwrite and read can implement it.
type Drive interface {
	// EnsureFolder finds a folder by name, creating it if absent
	EnsureFolder(ctx context.Context, name string) (FolderID, error)
	// EnsureFile finds a file by name inside a folder, creating an empty one
	// if absent
	EnsureFile(ctx context.Context, folder FolderID, name string) (FileID, error)
	// WriteFile overwrites the file content as a whole
	WriteFile(ctx context.Context, file FileID, data []byte) error
	// ReadFile reads the whole file content
	ReadFile(ctx context.Context, file FileID) ([]byte, error)
}

// driveClient implements Drive on Cloud Storage. A folder maps to an object
// prefix with a zero-byte marker object; a file maps to an object under that
// prefix.
type driveClient struct {
	bucketName string
	client     *storage.Client
}

// NewDrive creates a Cloud Storage backed Drive. credentialsFile may be empty
// to use application default credentials.
func NewDrive(ctx context.Context, bucketName, credentialsFile string) (Drive, error) {
	if bucketName == "" {
		return nil, goerr.New("bucket name is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &driveClient{
		bucketName: bucketName,
		client:     client,
	}, nil
}

func (d *driveClient) EnsureFolder(ctx context.Context, name string) (FolderID, error) {
	bucket := d.client.Bucket(d.bucketName)
	marker := name + "/"

	it := bucket.Objects(ctx, &storage.Query{Prefix: marker})
	if _, err := it.Next(); err == nil {
		return FolderID(name), nil
	} else if !errors.Is(err, iterator.Done) {
		return "", goerr.Wrap(err, "failed to list folder", goerr.Value("folder", name))
	}

	w := bucket.Object(marker).NewWriter(ctx)
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to create folder marker", goerr.Value("folder", name))
	}

	return FolderID(name), nil
}

func (d *driveClient) EnsureFile(ctx context.Context, folder FolderID, name string) (FileID, error) {
	key := string(folder) + "/" + name
	obj := d.client.Bucket(d.bucketName).Object(key)

	_, err := obj.Attrs(ctx)
	if err == nil {
		return FileID(key), nil
	}
	if !errors.Is(err, storage.ErrObjectNotExist) {
		return "", goerr.Wrap(err, "failed to stat file", goerr.Value("key", key))
	}

	w := obj.NewWriter(ctx)
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to create file", goerr.Value("key", key))
	}

	return FileID(key), nil
}

func (d *driveClient) WriteFile(ctx context.Context, file FileID, data []byte) error {
	w := d.client.Bucket(d.bucketName).Object(string(file)).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.Value("key", file))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize file", goerr.Value("key", file))
	}
	return nil
}

func (d *driveClient) ReadFile(ctx context.Context, file FileID) ([]byte, error) {
	r, err := d.client.Bucket(d.bucketName).Object(string(file)).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file", goerr.Value("key", file))
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read file", goerr.Value("key", file))
	}
	return data, nil
}
