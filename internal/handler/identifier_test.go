package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/eventt-hub/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathParameter(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("eventId", "123")

	id, ok := GetPathParameter(ctx, "eventId")
	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
}

func TestGetPathParameter_Malformed(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("eventId", "not-an-id")

	id, ok := GetPathParameter(ctx, "eventId")
	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, errdef.IsInvalidIdentifier(ctx.Errors.Last()))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseID("64db1f2f9f1c2a0012345678")
	require.Error(t, err)
	assert.True(t, errdef.IsInvalidIdentifier(err))

	_, err = ParseID("-1")
	require.Error(t, err)
	assert.True(t, errdef.IsInvalidIdentifier(err))
}
