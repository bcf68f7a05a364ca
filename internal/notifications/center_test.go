package notifications

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter(t *testing.T, maxItems int, retention time.Duration) *Center {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewCenter(store, maxItems, retention)
}

func TestNotify_PrependsAndCountsUnread(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)

	_, err := center.Notify("u1", Notification{Title: "first"})
	require.NoError(t, err)
	_, err = center.Notify("u1", Notification{Title: "second"})
	require.NoError(t, err)

	feed, err := center.Feed("u1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "second", feed.Items[0].Title, "newest first")
	assert.Equal(t, 2, feed.UnreadCount)
}

func TestNotify_CapsFeedAtMax(t *testing.T) {
	center := newTestCenter(t, 3, 24*time.Hour)

	for i := 1; i <= 5; i++ {
		_, err := center.Notify("u1", Notification{Title: fmt.Sprintf("n%d", i)})
		require.NoError(t, err)
	}

	feed, err := center.Feed("u1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, "n5", feed.Items[0].Title)
	assert.Equal(t, "n3", feed.Items[2].Title)
	assert.Equal(t, 3, feed.UnreadCount)
}

func TestNotify_EvictsReadBeforeUnread(t *testing.T) {
	center := newTestCenter(t, 3, 24*time.Hour)

	first, err := center.Notify("u1", Notification{Title: "n1"})
	require.NoError(t, err)
	_, err = center.Notify("u1", Notification{Title: "n2"})
	require.NoError(t, err)
	_, err = center.Notify("u1", Notification{Title: "n3"})
	require.NoError(t, err)
	_, err = center.MarkRead("u1", first.ID)
	require.NoError(t, err)

	// n1 is the read one; it goes even though n2/n3 are older than n4.
	_, err = center.Notify("u1", Notification{Title: "n4"})
	require.NoError(t, err)

	feed, err := center.Feed("u1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 3)
	titles := []string{feed.Items[0].Title, feed.Items[1].Title, feed.Items[2].Title}
	assert.Equal(t, []string{"n4", "n3", "n2"}, titles)
	assert.Equal(t, 3, feed.UnreadCount)
}

func TestMarkRead_DecrementsByOneFlooredAtZero(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)

	n, err := center.Notify("u1", Notification{Title: "only"})
	require.NoError(t, err)

	feed, err := center.MarkRead("u1", n.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, feed.UnreadCount)
	assert.True(t, feed.Items[0].Read)

	// Marking again must not go negative.
	feed, err = center.MarkRead("u1", n.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, feed.UnreadCount)

	// Unknown IDs are a no-op.
	feed, err = center.MarkRead("u1", "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, feed.UnreadCount)
}

func TestMarkAllRead_ZeroesCounter(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)

	for i := 0; i < 4; i++ {
		_, err := center.Notify("u1", Notification{Title: "n"})
		require.NoError(t, err)
	}

	feed, err := center.MarkAllRead("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, feed.UnreadCount)
	for _, item := range feed.Items {
		assert.True(t, item.Read)
	}
}

func TestClear_RemovesOnlyReadEntries(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)

	read, err := center.Notify("u1", Notification{Title: "seen"})
	require.NoError(t, err)
	_, err = center.Notify("u1", Notification{Title: "unseen"})
	require.NoError(t, err)

	_, err = center.MarkRead("u1", read.ID)
	require.NoError(t, err)

	feed, err := center.Clear("u1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "unseen", feed.Items[0].Title)
	assert.Equal(t, 1, feed.UnreadCount)
}

func TestFeed_PrunesOldReadNeverUnread(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	center.now = func() time.Time { return base }

	oldRead, err := center.Notify("u1", Notification{Title: "old read"})
	require.NoError(t, err)
	_, err = center.Notify("u1", Notification{Title: "old unread"})
	require.NoError(t, err)
	_, err = center.MarkRead("u1", oldRead.ID)
	require.NoError(t, err)

	// Two days later, only the read entry is past retention.
	center.now = func() time.Time { return base.Add(48 * time.Hour) }

	feed, err := center.Feed("u1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "old unread", feed.Items[0].Title)
	assert.Equal(t, 1, feed.UnreadCount)

	// Pruning persisted: a fresh load sees the same state.
	feed, err = center.Feed("u1")
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
}

func TestFeed_FreshUserGetsEmptyFeed(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)

	feed, err := center.Feed("nobody")
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.Equal(t, 0, feed.UnreadCount)
}

type recordingPusher struct {
	payloads []interface{}
}

func (p *recordingPusher) PushToUser(userID string, payload interface{}) {
	p.payloads = append(p.payloads, payload)
}

func TestNotify_PushesToLiveConnections(t *testing.T) {
	center := newTestCenter(t, 100, 24*time.Hour)
	pusher := &recordingPusher{}
	center.SetPusher(pusher)

	_, err := center.Notify("u1", Notification{Title: "ping"})
	require.NoError(t, err)
	require.Len(t, pusher.payloads, 1)

	payload, ok := pusher.payloads[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "notification", payload["event"])
	assert.Equal(t, 1, payload["unread_count"])
}
