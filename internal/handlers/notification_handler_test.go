package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dastawez_backend/internal/notifications"
	"dastawez_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeed_LimitTruncatesItems(t *testing.T) {
	store, err := notifications.NewFileStore(t.TempDir())
	require.NoError(t, err)
	center := notifications.NewCenter(store, 100, 24*time.Hour)

	for _, title := range []string{"first", "second", "third"} {
		_, err := center.Notify("user-1", notifications.Notification{Type: "test", Title: title})
		require.NoError(t, err)
	}

	h := NewNotificationHandler(NewBaseHandler(validator.New()), center)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/notifications?limit=2", nil)
	c.Set("userID", "user-1")

	h.GetFeed(c)
	require.Equal(t, http.StatusOK, w.Code)

	var feed notifications.Feed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Items, 2)
	// Newest first, unread count reflects the full feed.
	assert.Equal(t, "third", feed.Items[0].Title)
	assert.Equal(t, 3, feed.UnreadCount)
}
