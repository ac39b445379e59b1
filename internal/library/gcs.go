package library

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSMirror copies library files into a GCS bucket so the ad library
// survives local disk loss. Mirroring is best effort: callers log upload
// failures instead of failing the generation pipeline.
type GCSMirror struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSMirror(ctx context.Context, bucket, prefix string) (*GCSMirror, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSMirror{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (m *GCSMirror) Close() error {
	return m.client.Close()
}

// Upload copies a local library file to {prefix}/{relPath} in the bucket.
func (m *GCSMirror) Upload(ctx context.Context, localPath, relPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open local file: %w", err)
	}
	defer func() { _ = f.Close() }()

	obj := m.client.Bucket(m.bucket).Object(path.Join(m.prefix, filepath.ToSlash(relPath)))
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload to gs://%s: %w", m.bucket, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload to gs://%s: %w", m.bucket, err)
	}

	return nil
}

// List returns the object names currently mirrored under the prefix.
func (m *GCSMirror) List(ctx context.Context) ([]string, error) {
	bkt := m.client.Bucket(m.bucket)
	query := &storage.Query{Prefix: m.prefix}

	var names []string
	it := bkt.Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}

// Clear deletes every mirrored object under the prefix.
func (m *GCSMirror) Clear(ctx context.Context) error {
	names, err := m.List(ctx)
	if err != nil {
		return err
	}

	bkt := m.client.Bucket(m.bucket)
	for _, name := range names {
		if err := bkt.Object(name).Delete(ctx); err != nil {
			return fmt.Errorf("delete gs://%s/%s: %w", m.bucket, name, err)
		}
	}

	return nil
}
