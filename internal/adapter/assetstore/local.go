// Package assetstore implements key-addressed storage for uploaded files on
// the local filesystem. Keys are generated here and never come from clients.
package assetstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// tempPrefix marks in-flight writes. Such files are never addressable by a key.
const tempPrefix = ".upload-"

// Object describes a stored asset.
type Object struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// Config configures a LocalStore.
type Config struct {
	// Root is the directory assets are written to.
	Root string
	// BaseURL is the public prefix assets are served under, e.g. "/uploads"
	// or "https://cdn.example.com/uploads".
	BaseURL string
	// MaxImageSide downscales JPEG/PNG images whose longer side exceeds it.
	// 0 disables resizing.
	MaxImageSide int
}

// LocalStore stores assets as flat files in a single directory.
type LocalStore struct {
	root         string
	baseURL      string
	maxImageSide int
}

// NewLocalStore creates the root directory if needed and returns the store.
func NewLocalStore(cfg Config) (*LocalStore, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve asset root %q: %w", cfg.Root, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create asset root %q: %w", root, err)
	}

	return &LocalStore{
		root:         root,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		maxImageSide: cfg.MaxImageSide,
	}, nil
}

// Root returns the absolute directory assets live in.
func (s *LocalStore) Root() string { return s.root }

// Save persists data under a newly generated key and returns the key.
// suggestedName only contributes its extension. The write goes to a temp
// file that is renamed into place, so a failed save leaves nothing
// reachable by any key.
func (s *LocalStore) Save(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrStorageWrite)
	}

	ext := extensionFor(data, suggestedName)
	data = shrinkImage(data, ext, s.maxImageSide)

	key := uuid.NewString() + ext

	tmp, err := os.CreateTemp(s.root, tempPrefix+"*")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %w", domain.ErrStorageWrite, err)
	}
	tmpName := tmp.Name()

	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrStorageWrite, key, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: chmod %s: %w", domain.ErrStorageWrite, key, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.root, key)); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: rename %s: %w", domain.ErrStorageWrite, key, err)
	}

	return key, nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Delete removes the asset. Deleting a key that does not exist succeeds.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete asset %s: %w", key, err)
	}

	return nil
}

// Exists reports whether an asset is stored under key.
func (s *LocalStore) Exists(_ context.Context, key string) (bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat asset %s: %w", key, err)
	}

	return info.Mode().IsRegular(), nil
}

// List returns every stored asset. In-flight temp files are skipped.
func (s *LocalStore) List(ctx context.Context) ([]Object, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	objects := make([]Object, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if errors.Is(err, fs.ErrNotExist) {
			continue // deleted concurrently
		}
		if err != nil {
			return nil, fmt.Errorf("stat asset %s: %w", e.Name(), err)
		}
		objects = append(objects, Object{Key: e.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}

	return objects, nil
}

// Ping checks that the root is still a writable directory.
func (s *LocalStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("stat asset root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s is not a directory", s.root)
	}

	f, err := os.CreateTemp(s.root, tempPrefix+"ping-*")
	if err != nil {
		return fmt.Errorf("asset root not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// URLFor returns the public URL of key. It does no I/O.
func (s *LocalStore) URLFor(key string) string {
	u, err := url.JoinPath(s.baseURL, key)
	if err != nil {
		return s.baseURL + "/" + url.PathEscape(key)
	}
	return u
}

// pathFor maps a key to its file path, rejecting anything that could
// escape the root or address a temp file.
func (s *LocalStore) pathFor(key string) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("asset key %q: %w", key, domain.ErrValidation)
	}
	return filepath.Join(s.root, key), nil
}

// ValidKey reports whether key has the shape of a generated storage key.
func ValidKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) {
		return false
	}
	return !strings.Contains(key, "..") && filepath.Base(key) == key
}
