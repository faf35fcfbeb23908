package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/especializacion-sena/sitios-backend/src/middleware"
	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/especializacion-sena/sitios-backend/src/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memoryStore is a BlobStore that keeps blobs in a map.
type memoryStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	deleted []string
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{blobs: map[string][]byte{}}
}

func (m *memoryStore) Save(ctx context.Context, name, contentType string, r io.Reader) (storage.Blob, error) {
	if m.saveErr != nil {
		return storage.Blob{}, m.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.Blob{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = data
	return storage.Blob{Key: name, Location: storage.PublicURL("bucket", name)}, nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}

var errBucketDown = errors.New("bucket unavailable")

func openDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	if len(migrate) > 0 {
		require.NoError(t, db.AutoMigrate(migrate...))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupRouter(db *gorm.DB, store storage.BlobStore, opts SiteControllerOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))

	sites := NewSiteController(services.NewSiteService(db), store, log, opts)
	router.GET("/sitios", sites.GetSites)
	router.POST("/sitios", sites.CreateSite)
	router.POST("/sitios/upload", sites.CreateSiteWithUpload)
	router.POST("/sitios/import", sites.ImportSites)
	router.GET("/sitios/:id", sites.GetSiteByID)
	router.PUT("/sitios/:id", sites.UpdateSite)
	router.DELETE("/sitios/:id", sites.DeleteSite)

	comments := NewCommentController(services.NewCommentService(db))
	router.GET("/comentarios/:id_sitio", comments.GetComments)
	router.POST("/comentarios/:id_sitio", comments.CreateComment)

	users := NewUserController(services.NewUserService(db))
	router.GET("/usuarios", users.AuthenticateUser)

	return router
}

func perform(router http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performJSON(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return perform(router, method, target, reader, "application/json")
}

type filePart struct {
	field       string
	name        string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, file *filePart) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.field, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type envelope struct {
	Error   bool   `json:"error"`
	Codigo  int    `json:"codigo"`
	Mensaje string `json:"mensaje"`
}

type siteList struct {
	Info []models.SiteModel `json:"info"`
}

type commentList struct {
	Info []models.CommentModel `json:"info"`
}

type affectedRows struct {
	Status       string `json:"status"`
	AffectedRows int64  `json:"affected_rows"`
}
