// Package storage holds the blob stores where uploaded site photos live.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/especializacion-sena/sitios-backend/src/config"
	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Blob identifies a stored object. Key is what Delete expects; Location is
// what gets saved in the site row (a public URL, or a path relative to the
// local upload directory).
type Blob struct {
	Key      string
	Location string
}

type BlobStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (Blob, error)
	Delete(ctx context.Context, key string) error
}

// New builds the blob store selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (BlobStore, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		store, err := NewLocalStore(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		log.Info("[LOCAL] Almacenamiento en disco listo", zap.String("dir", store.Dir()))
		return store, nil

	case config.BackendGCS:
		var opts []option.ClientOption
		creds, err := LoadCredentials(ctx, cfg, gcsScope)
		if err != nil {
			return nil, err
		}
		if creds != nil {
			opts = append(opts, option.WithCredentials(creds))
		}
		store, err := NewGCSStore(ctx, cfg.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		log.Info("[GCS] Bucket inicializado correctamente", zap.String("bucket", cfg.Bucket))
		return store, nil

	case config.BackendDrive:
		creds, err := LoadCredentials(ctx, cfg, drive.DriveFileScope)
		if err != nil {
			return nil, err
		}
		if creds == nil {
			return nil, fmt.Errorf("GOOGLE_CREDENTIALS_PATH o GOOGLE_CREDENTIALS_JSON debe estar configurado")
		}
		store, err := NewDriveStore(ctx, cfg.DriveFolderID, option.WithCredentials(creds))
		if err != nil {
			return nil, err
		}
		log.Info("[GOOGLE_DRIVE] Servicio inicializado correctamente", zap.String("folder", cfg.DriveFolderID))
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}
