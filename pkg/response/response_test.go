package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCtx() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "req-1")
	return c, rec
}

func TestSuccessWritesEnvelope(t *testing.T) {
	c, rec := newTestCtx()

	resp := Success(c, http.StatusOK, gin.H{"k": "v"}, "done")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "req-1", resp.RequestID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
}

func TestFailWritesEnvelope(t *testing.T) {
	c, rec := newTestCtx()

	Fail(c, http.StatusBadRequest, "nope", map[string]string{"field": "is required"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "nope", body["message"])
	assert.NotNil(t, body["error"])
}

func TestErrorBuildsWithoutWriting(t *testing.T) {
	c, rec := newTestCtx()

	resp := Error[any](c, http.StatusUnauthorized, "denied", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.False(t, resp.Success)
	// nothing written yet; caller decides via AbortWithStatusJSON
	assert.Empty(t, rec.Body.String())
}

func TestZeroStatusDefaults(t *testing.T) {
	c, _ := newTestCtx()
	assert.Equal(t, http.StatusOK, Success[any](c, 0, nil, "").Status)

	c2, _ := newTestCtx()
	assert.Equal(t, http.StatusBadRequest, Error[any](c2, 0, "", nil).Status)
}
