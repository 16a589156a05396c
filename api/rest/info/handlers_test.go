package info

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedUptime time.Duration

func (f fixedUptime) Uptime(_ time.Time) time.Duration { return time.Duration(f) }

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, fixedUptime(5*time.Minute+3*time.Second))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "MorozAI Core 🚀", resp.Msg)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "5m3s", resp.Uptime)
}
