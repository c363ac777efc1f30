// Package flatfile stores fieldsets, blueprints, and terms as YAML documents
// under a content root:
//
//	<root>/fieldsets/<handle>.yaml
//	<root>/blueprints/<namespace>/<handle>.yaml
//	<root>/taxonomies/<taxonomy>/<slug>.yaml
//	<root>/entries/<collection>/<slug>.yaml   (read only, for entry counts)
//
// Handles come from file names. Blueprints in a namespace are ordered by file
// name. Writes go through renameio (temporary file, fsync, rename) so readers
// never see a partial document.
package flatfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

const (
	ext = ".yaml"

	dirFieldsets  = "fieldsets"
	dirBlueprints = "blueprints"
	dirTerms      = "taxonomies"
	dirEntries    = "entries"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Store)(nil)

// Store owns a content root directory. Repositories built on the same Store
// share its lock. Safe for concurrent use.
type Store struct {
	root string
	mu   sync.RWMutex
}

// New creates a Store rooted at root. The directory is created on first write.
func New(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Root returns the content root directory.
func (s *Store) Root() string { return s.root }

// Name implements [ports.HealthChecker].
func (s *Store) Name() string { return "storage" }

// HealthCheck implements [ports.HealthChecker]. The content root must exist
// and be a directory.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("content root %s: %w", s.root, translateFSError(err))
	}
	if !info.IsDir() {
		return fmt.Errorf("content root %s is not a directory: %w", s.root, domain.ErrUnavailable)
	}
	return nil
}

// path joins segments below the root, rejecting any that would escape it.
func (s *Store) path(segments ...string) (string, error) {
	for _, seg := range segments {
		if err := checkSegment(seg); err != nil {
			return "", err
		}
	}
	return filepath.Join(append([]string{s.root}, segments...)...), nil
}

func checkSegment(seg string) error {
	if seg == "" || seg == "." || seg == ".." || strings.ContainsAny(seg, `/\`) || strings.Contains(seg, "::") {
		return &domain.ValidationError{Fields: map[string]string{"handle": fmt.Sprintf("invalid path segment %q", seg)}}
	}
	return nil
}

// namespaceSegments splits "taxonomies/tags" into validated path segments.
func namespaceSegments(namespace string) ([]string, error) {
	namespace = strings.Trim(namespace, "/")
	if namespace == "" {
		return nil, nil
	}
	segs := strings.Split(namespace, "/")
	for _, seg := range segs {
		if err := checkSegment(seg); err != nil {
			return nil, err
		}
	}
	return segs, nil
}

func (s *Store) read(path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, translateFSError(err)
	}
	return data, nil
}

// write replaces path atomically. The document is synced before it is
// renamed into place, and the temporary file lives next to it.
func (s *Store) write(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return translateFSError(err)
	}

	if err := renameio.WriteFile(path, data, 0o644, renameio.WithTempDir(dir)); err != nil {
		return translateFSError(err)
	}
	return nil
}

// remove deletes path. A missing file is not an error.
func (s *Store) remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return translateFSError(err)
	}
	return nil
}

// list returns the handles of the YAML documents directly inside dir, sorted
// by file name. A missing directory yields no handles.
func (s *Store) list(dir string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dirEntries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, translateFSError(err)
	}

	handles := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ext {
			continue
		}
		handles = append(handles, strings.TrimSuffix(name, ext))
	}
	sort.Strings(handles)
	return handles, nil
}
