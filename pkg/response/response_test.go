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

func TestSuccessAndError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) {
		c.Set("request_id", "rid-1")
		Success(c, 0, gin.H{"a": 1}, "fine", nil)
	})
	nextRan := false
	r.GET("/bad", func(c *gin.Context) {
		Error[any](c, 0, "nope", map[string]string{"field": "empty"})
	}, func(c *gin.Context) {
		nextRan = true
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var ok APIResponse[map[string]int]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.True(t, ok.Success)
	assert.Equal(t, "rid-1", ok.RequestID)
	assert.Equal(t, 1, ok.Data["a"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, nextRan, "handlers after Error must be skipped")
	assert.Contains(t, w.Body.String(), `"success":false`)
}
