package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsScope = storage.ScopeReadWrite

// GCSStore uploads blobs to a Cloud Storage bucket. Objects are expected to be
// publicly readable through bucket-level IAM.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creando cliente de Cloud Storage: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// PublicURL is the https address Cloud Storage serves an object from.
func PublicURL(bucket, object string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "storage.googleapis.com",
		Path:   "/" + bucket + "/" + object,
	}
	return u.String()
}

func (s *GCSStore) Save(ctx context.Context, name, contentType string, r io.Reader) (Blob, error) {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return Blob{}, fmt.Errorf("error subiendo %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return Blob{}, fmt.Errorf("error subiendo %s: %w", name, err)
	}

	return Blob{Key: name, Location: PublicURL(s.bucket, name)}, nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("error borrando %s: %w", key, err)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
