package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventt-hub/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CorrelationID())
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	req, reqErr := http.NewRequest(http.MethodGet, "/boom", nil)
	require.NoError(t, reqErr)
	r.ServeHTTP(w, req)

	body := make(map[string]any)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorHandler_Validation(t *testing.T) {
	fields := map[string]string{"description": "description must be at least 10 characters"}
	w, body := serveWithError(t, errdef.NewValidation(fields))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation error", body["message"])
	errorField, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, fields["description"], errorField["description"])
}

func TestErrorHandler_InvalidIdentifier(t *testing.T) {
	w, body := serveWithError(t, errdef.NewInvalidIdentifier("invalid identifier %q", "abc"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid identifier", body["message"])
}

func TestErrorHandler_NotFound(t *testing.T) {
	w, body := serveWithError(t, errdef.NewNotFound("event not found by id: %d", 7))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "event not found by id: 7", body["message"])
}

func TestErrorHandler_Duplicated(t *testing.T) {
	w, body := serveWithError(t, errdef.NewDuplicated("you have already joined this event"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "you have already joined this event", body["message"])
}

func TestErrorHandler_Unexpected(t *testing.T) {
	w, body := serveWithError(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	// raw message is surfaced alongside the correlation id reference
	assert.Equal(t, assert.AnError.Error(), body["error"])
	assert.Contains(t, body["message"], "send us the id")
}

func TestErrorHandler_NoError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/ok", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
