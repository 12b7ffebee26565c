package xerr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   int
	}{
		{ErrInvalidParams, http.StatusBadRequest, InvalidParamsCode},
		{ErrFileTooLarge, http.StatusRequestEntityTooLarge, FileTooLargeCode},
		{ErrInvalidCredentials, http.StatusUnauthorized, InvalidCredentialsCode},
		{ErrPermissionDenied, http.StatusForbidden, PermissionDeniedCode},
		{fmt.Errorf("file 7: %w", ErrFileNotFound), http.StatusNotFound, FileNotFoundCode},
		{ErrNoData, http.StatusNotFound, NoDataCode},
		{ErrEmailAlreadyExists, http.StatusConflict, EmailAlreadyExistsCode},
		{fmt.Errorf("put: %w", ErrStorageError), http.StatusInternalServerError, StorageErrorCode},
		{ErrActivityLog, http.StatusInternalServerError, DatabaseErrorCode},
		{NewCodeError(ForbiddenCode, fmt.Errorf("nope")), http.StatusForbidden, ForbiddenCode},
		{fmt.Errorf("unexpected"), http.StatusInternalServerError, InternalServerErrorCode},
	}
	for _, tc := range cases {
		status, code := statusOf(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestFromErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, ErrPermissionDenied)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, PermissionDeniedCode, resp.Code)
	assert.Equal(t, ErrPermissionDenied.Error(), resp.Message)
	assert.Nil(t, resp.Data)
}
