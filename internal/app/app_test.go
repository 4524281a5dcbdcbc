package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gerhardt0011/gpt5-todo/internal/config"
	"github.com/Gerhardt0011/gpt5-todo/internal/repo/sqlite"
)

// End-to-end over the real durable adapter: router, handlers, service and
// an ephemeral sqlite store.
func TestAcceptance_CreateListGetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := gin.New()
	Setup(r, config.Config{}, db, nil)

	request := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// create
	w := request(http.MethodPost, "/api/v1/todos", gin.H{"title": "Test", "description": "First"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// list
	w = request(http.MethodGet, "/api/v1/todos", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// get
	w = request(http.MethodGet, "/api/v1/todos/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// update
	w = request(http.MethodPut, "/api/v1/todos/"+created.ID, gin.H{"status": "done"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// delete
	w = request(http.MethodDelete, "/api/v1/todos/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// gone
	w = request(http.MethodGet, "/api/v1/todos/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// service endpoints still answer
	w = request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
