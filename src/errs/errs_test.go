package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorEnvelope(t *testing.T) {
	err := NewValidationError(MsgMissingParams)

	body, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"error":true,"codigo":400,"mensaje":"Hacen falta parametros"}`, string(body))
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestPersistenceErrorWrapsCause(t *testing.T) {
	cause := errors.New("Table 'tbsitios' doesn't exist")
	err := NewPersistenceError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, cause.Error(), err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestErrorsAreIndependent(t *testing.T) {
	first := NewValidationError("a")
	second := NewValidationError("b")
	first.Message = "changed"

	assert.Equal(t, "b", second.Message)
}

func TestInternalErrorHidesCause(t *testing.T) {
	err := NewInternalError(errors.New("secret"))

	assert.Equal(t, "Internal Server Error", err.Message)
	assert.ErrorContains(t, err.Unwrap(), "secret")
}
