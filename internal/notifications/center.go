package notifications

import (
	"sync"
	"time"

	"dastawez_backend/internal/logger"

	"github.com/google/uuid"
)

// Pusher delivers a notification to a user's live connections, if any.
type Pusher interface {
	PushToUser(userID string, payload interface{})
}

// Center manages per-user notification feeds. All mutations go through
// a single lock so concurrent requests for the same user serialize.
type Center struct {
	mu        sync.Mutex
	store     Store
	maxItems  int
	retention time.Duration
	pusher    Pusher

	now func() time.Time
}

func NewCenter(store Store, maxItems int, retention time.Duration) *Center {
	return &Center{
		store:     store,
		maxItems:  maxItems,
		retention: retention,
		now:       time.Now,
	}
}

// SetPusher attaches live delivery. Optional; without it notifications
// are only picked up on the next feed load.
func (c *Center) SetPusher(p Pusher) {
	c.mu.Lock()
	c.pusher = p
	c.mu.Unlock()
}

// Notify prepends a new unread notification to the user's feed.
// When the feed exceeds its cap the oldest entries are dropped.
func (c *Center) Notify(userID string, n Notification) (*Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	feed, err := c.store.Load(userID)
	if err != nil {
		return nil, err
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = c.now()
	}
	n.Read = false

	feed.Items = append([]Notification{n}, feed.Items...)
	if c.maxItems > 0 && len(feed.Items) > c.maxItems {
		feed.Items = evictOldest(feed.Items, c.maxItems)
	}
	feed.UnreadCount = countUnread(feed.Items)

	if err := c.store.Save(userID, feed); err != nil {
		return nil, err
	}

	if c.pusher != nil {
		c.pusher.PushToUser(userID, map[string]interface{}{
			"event":        "notification",
			"notification": n,
			"unread_count": feed.UnreadCount,
		})
	}
	return &n, nil
}

// Feed returns the user's notifications, pruning read entries older
// than the retention window. Unread entries are never pruned.
func (c *Center) Feed(userID string) (*Feed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	feed, err := c.store.Load(userID)
	if err != nil {
		return nil, err
	}

	pruned := c.prune(feed)
	if pruned {
		if err := c.store.Save(userID, feed); err != nil {
			logger.Error("failed to persist pruned feed", "user_id", userID, "error", err)
		}
	}
	return feed, nil
}

// MarkRead marks one notification as read. Unknown IDs are a no-op.
func (c *Center) MarkRead(userID, notificationID string) (*Feed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	feed, err := c.store.Load(userID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range feed.Items {
		if feed.Items[i].ID == notificationID && !feed.Items[i].Read {
			feed.Items[i].Read = true
			changed = true
			break
		}
	}
	if changed {
		if feed.UnreadCount > 0 {
			feed.UnreadCount--
		}
		if err := c.store.Save(userID, feed); err != nil {
			return nil, err
		}
	}
	return feed, nil
}

// MarkAllRead marks every notification as read and zeroes the counter.
func (c *Center) MarkAllRead(userID string) (*Feed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	feed, err := c.store.Load(userID)
	if err != nil {
		return nil, err
	}

	for i := range feed.Items {
		feed.Items[i].Read = true
	}
	feed.UnreadCount = 0

	if err := c.store.Save(userID, feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// Clear removes read notifications only. Unread entries stay so the
// user cannot lose something they have not seen.
func (c *Center) Clear(userID string) (*Feed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	feed, err := c.store.Load(userID)
	if err != nil {
		return nil, err
	}

	kept := feed.Items[:0]
	for _, n := range feed.Items {
		if !n.Read {
			kept = append(kept, n)
		}
	}
	feed.Items = kept
	feed.UnreadCount = countUnread(feed.Items)

	if err := c.store.Save(userID, feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// prune drops read entries past retention and reports whether the feed
// changed.
func (c *Center) prune(feed *Feed) bool {
	if c.retention <= 0 {
		return false
	}
	cutoff := c.now().Add(-c.retention)
	kept := feed.Items[:0]
	changed := false
	for _, n := range feed.Items {
		if n.Read && n.CreatedAt.Before(cutoff) {
			changed = true
			continue
		}
		kept = append(kept, n)
	}
	if changed {
		feed.Items = kept
		feed.UnreadCount = countUnread(feed.Items)
	}
	return changed
}

// evictOldest trims the feed to max entries, dropping read entries
// from the tail before touching unread ones.
func evictOldest(items []Notification, max int) []Notification {
	excess := len(items) - max
	for i := len(items) - 1; i >= 0 && excess > 0; i-- {
		if items[i].Read {
			items = append(items[:i], items[i+1:]...)
			excess--
		}
	}
	if excess > 0 {
		items = items[:max]
	}
	return items
}

func countUnread(items []Notification) int {
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count
}
