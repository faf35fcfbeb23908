package controllers

import (
	"net/http"
	"testing"

	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentDefaultsToAnonymous(t *testing.T) {
	router := setupRouter(openDB(t, models.All()...), newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodPost, "/comentarios/42", `{"comment":"nice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())

	w = performJSON(router, http.MethodGet, "/comentarios/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[commentList](t, w)
	require.Len(t, got.Info, 1)
	assert.Equal(t, 42, got.Info[0].IdSitio)
	assert.Equal(t, "nice", got.Info[0].Comment)
	assert.Equal(t, "anonimo", got.Info[0].User)
}

func TestCreateCommentUsesPathSiteID(t *testing.T) {
	router := setupRouter(openDB(t, models.All()...), newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodPost, "/comentarios/3", `{"comment":"hermoso","user":"maria","id_sitio":99}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, decode[commentList](t, performJSON(router, http.MethodGet, "/comentarios/99", "")).Info)

	got := decode[commentList](t, performJSON(router, http.MethodGet, "/comentarios/3", ""))
	require.Len(t, got.Info, 1)
	assert.Equal(t, "maria", got.Info[0].User)
}

func TestCreateCommentRequiresComment(t *testing.T) {
	router := setupRouter(openDB(t, models.All()...), newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodPost, "/comentarios/3", `{"user":"maria"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, envelope{Error: true, Codigo: 400, Mensaje: "Hacen falta parametros"}, decode[envelope](t, w))

	assert.Empty(t, decode[commentList](t, performJSON(router, http.MethodGet, "/comentarios/3", "")).Info)
}

func TestCommentsRejectNonNumericSite(t *testing.T) {
	router := setupRouter(openDB(t, models.All()...), newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodGet, "/comentarios/uno", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodPost, "/comentarios/uno", `{"comment":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCommentsPersistenceError(t *testing.T) {
	router := setupRouter(openDB(t), newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodGet, "/comentarios/1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode[envelope](t, w).Mensaje, "tbcomentarios")
}
