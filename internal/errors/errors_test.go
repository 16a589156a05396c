package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/ai_gen", nil)

	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestBadRequest(t *testing.T) {
	c, w := newContext()

	BadRequest(c, "prompt is too short")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "prompt is too short", decode(t, w).Detail)
	assert.True(t, c.IsAborted())
}

func TestBadRequest_DefaultDetail(t *testing.T) {
	c, w := newContext()

	BadRequest(c, "")

	assert.Equal(t, "invalid request", decode(t, w).Detail)
}

func TestInternalError_RawDetailOutsideProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	c, w := newContext()

	InternalError(c, "generation failed", stderrors.New("CUDA out of memory"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "CUDA out of memory", decode(t, w).Detail)
}

func TestInternalError_SanitizedInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	tests := []struct {
		err  error
		want string
	}{
		{stderrors.New("model not ready"), "model is not loaded"},
		{stderrors.New("dial tcp 10.0.0.1:8080: connection refused"), "connection error occurred"},
		{stderrors.New("context deadline exceeded"), "request timed out"},
		{stderrors.New("tensor shape mismatch"), "an error occurred"},
	}

	for _, tt := range tests {
		c, w := newContext()
		InternalError(c, "generation failed", tt.err)
		assert.Equal(t, tt.want, decode(t, w).Detail, tt.err.Error())
	}
}

func TestInternalError_NilErrorFallsBackToMessage(t *testing.T) {
	c, w := newContext()

	InternalError(c, "generation failed", nil)

	assert.Equal(t, "generation failed", decode(t, w).Detail)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	c, w := newContext()
	NotFound(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", decode(t, w).Detail)

	c, w = newContext()
	MethodNotAllowed(c)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", decode(t, w).Detail)
}
