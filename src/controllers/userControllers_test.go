package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUser(t *testing.T) {
	db := openDB(t, models.All()...)
	_, err := services.NewUserService(db).EnsureUser(context.Background(), "a", "b")
	require.NoError(t, err)
	router := setupRouter(db, newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodGet, "/usuarios?username=a&password=b", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","data":"a"}`, w.Body.String())

	w = performJSON(router, http.MethodGet, "/usuarios?username=a&password=B", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"unauthorized"}`, w.Body.String())

	w = performJSON(router, http.MethodGet, "/usuarios?username=b&password=a", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateUserMissingParams(t *testing.T) {
	router := setupRouter(openDB(t, models.All()...), newMemoryStore(), SiteControllerOptions{})

	for _, target := range []string{"/usuarios", "/usuarios?username=a", "/usuarios?password=b"} {
		w := performJSON(router, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, envelope{Error: true, Codigo: 400, Mensaje: "faltan parametros"}, decode[envelope](t, w))
	}
}

func TestAuthenticateUserPersistenceError(t *testing.T) {
	router := setupRouter(openDB(t), newMemoryStore(), SiteControllerOptions{})

	w := performJSON(router, http.MethodGet, "/usuarios?username=a&password=b", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
