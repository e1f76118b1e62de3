package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists rendered payloads on disk so repeated CLI invocations
// reuse expensive representations across processes. Each payload lives in
// its own file together with its expiry, sharded into subdirectories by key
// hash to keep directories small.
type FileCache struct {
	root string
}

// NewFileCache creates a file cache rooted at the given directory, creating
// it if needed.
func NewFileCache(root string) (Cache, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", root, err)
	}
	return &FileCache{root: root}, nil
}

// filePayload is the on-disk shape of one cached representation.
type filePayload struct {
	Body      []byte    `json:"body"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Get retrieves a payload. Expired and unreadable entries are removed and
// reported as misses, so a corrupted cache heals itself on read.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var p filePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !p.ExpiresAt.IsZero() && time.Now().After(p.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return p.Body, true, nil
}

// Set stores a payload. The entry is written to a temporary file and
// renamed into place so concurrent readers never see a partial payload.
// TTLForever stores the payload without expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	p := filePayload{Body: data}
	if ttl != TTLForever {
		p.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".payload-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes a payload. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to <root>/<hh>/<hash>.payload, where hh is the first hash
// byte. The shard keeps any one directory from accumulating every payload.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.root, sum[:2], sum[2:]+".payload")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
