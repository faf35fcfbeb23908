package storage

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveStore uploads blobs into a Google Drive folder shared with the
// service account, and opens each file for anonymous reading.
type DriveStore struct {
	service  *drive.Service
	folderID string
}

func NewDriveStore(ctx context.Context, folderID string, opts ...option.ClientOption) (*DriveStore, error) {
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creando servicio de Google Drive: %w", err)
	}
	return &DriveStore{service: service, folderID: folderID}, nil
}

// DriveViewURL is the direct-view address for a Drive file id.
func DriveViewURL(fileID string) string {
	return "https://drive.google.com/uc?export=view&id=" + fileID
}

func (s *DriveStore) Save(ctx context.Context, name, contentType string, r io.Reader) (Blob, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: contentType,
		Parents:  []string{s.folderID},
	}

	file, err := s.service.Files.Create(meta).Media(r).Fields("id", "name").Context(ctx).Do()
	if err != nil {
		return Blob{}, fmt.Errorf("error subiendo archivo a Google Drive: %w", err)
	}

	perm := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := s.service.Permissions.Create(file.Id, perm).Context(ctx).Do(); err != nil {
		// the file is useless without public access
		_ = s.Delete(ctx, file.Id)
		return Blob{}, fmt.Errorf("error compartiendo archivo de Google Drive: %w", err)
	}

	return Blob{Key: file.Id, Location: DriveViewURL(file.Id)}, nil
}

func (s *DriveStore) Delete(ctx context.Context, key string) error {
	if err := s.service.Files.Delete(key).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error borrando archivo de Google Drive: %w", err)
	}
	return nil
}
