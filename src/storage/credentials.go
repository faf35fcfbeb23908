package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/especializacion-sena/sitios-backend/src/config"
	"golang.org/x/oauth2/google"
)

// LoadCredentials reads service account credentials from a file path or an
// inline JSON value. It returns nil, nil when neither is configured so the
// caller can fall back to application default credentials.
func LoadCredentials(ctx context.Context, cfg config.StorageConfig, scopes ...string) (*google.Credentials, error) {
	var raw []byte

	switch {
	case cfg.CredentialsPath != "":
		credsBytes, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("error leyendo archivo de credenciales: %w", err)
		}
		raw = credsBytes
	case cfg.CredentialsJSON != "":
		raw = []byte(cfg.CredentialsJSON)
	default:
		return nil, nil
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, scopes...)
	if err != nil {
		return nil, fmt.Errorf("error cargando credenciales: %w", err)
	}
	return creds, nil
}
