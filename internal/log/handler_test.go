package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventt-hub/event-manager/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsContainCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CorrelationID())

	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))
	r.Use(middleware.RequestLogger(logger))

	var correlationID string
	r.GET("/events", func(c *gin.Context) {
		correlationID, _ = middleware.GetCorrelationID(c.Request.Context())
		// middleware.RequestLogger and our call to InfoContext should both add
		// log lines carrying attribute correlationId=<correlationID>
		logger.InfoContext(c.Request.Context(), "info")
		c.String(http.StatusOK, "success")
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/events", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, correlationID)

	lines := 0
	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		lines++
		got := make(map[string]any)
		require.NoError(t, json.Unmarshal(sc.Bytes(), &got))
		assert.Equal(t, correlationID, got[middleware.RequestLoggerKeyCorrelationID])
	}
	assert.Equal(t, 2, lines)
}

func TestLogsWithoutRequestContext(t *testing.T) {
	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))

	logger.Info("boot")

	got := make(map[string]any)
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	_, ok := got[middleware.RequestLoggerKeyCorrelationID]
	assert.False(t, ok)
}
