package notifications

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists one feed per user.
type Store interface {
	Load(userID string) (*Feed, error)
	Save(userID string, feed *Feed) error
	Remove(userID string) error
}

// FileStore keeps each feed as a JSON file under a cache directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create notification cache dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	// User IDs are UUIDs; strip separators anyway so the ID can never
	// escape the cache directory.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(userID)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileStore) Load(userID string) (*Feed, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return &Feed{Items: []Notification{}}, nil
		}
		return nil, fmt.Errorf("read notification feed: %w", err)
	}
	var feed Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		// Corrupt cache file, start over rather than failing the request.
		return &Feed{Items: []Notification{}}, nil
	}
	if feed.Items == nil {
		feed.Items = []Notification{}
	}
	return &feed, nil
}

func (s *FileStore) Save(userID string, feed *Feed) error {
	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("encode notification feed: %w", err)
	}
	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write notification feed: %w", err)
	}
	if err := os.Rename(tmp, s.path(userID)); err != nil {
		return fmt.Errorf("write notification feed: %w", err)
	}
	return nil
}

func (s *FileStore) Remove(userID string) error {
	err := os.Remove(s.path(userID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
