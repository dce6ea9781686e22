// Package presets manages design presets: named design systems the
// wizard offers during the design step. Built-in presets ship embedded
// in the binary; a configured directory can override or extend them,
// and changes to that directory are picked up without a restart.
package presets

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/productforge/forge/internal/product"
)

//go:embed data/*.json
var builtinFS embed.FS

// Preset is a named design system with display metadata.
type Preset struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Design      product.DesignSystem `json:"design"`
}

// Store holds the current preset set. Reads return snapshots, so a
// reload never mutates a list a caller is iterating.
type Store struct {
	mu      sync.RWMutex
	dir     string
	logger  *slog.Logger
	presets map[string]Preset
}

// NewStore loads the built-in presets plus any presets found in dir
// (empty dir means built-ins only). A directory preset with the same
// ID as a built-in replaces it.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{dir: dir, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads built-in and directory presets into a fresh snapshot.
func (s *Store) Reload() error {
	presets := make(map[string]Preset)

	if err := loadFS(builtinFS, "data", presets); err != nil {
		return fmt.Errorf("failed to load built-in presets: %w", err)
	}

	if s.dir != "" {
		if _, err := os.Stat(s.dir); err == nil {
			if err := loadFS(os.DirFS(s.dir), ".", presets); err != nil {
				return fmt.Errorf("failed to load presets from %s: %w", s.dir, err)
			}
		}
	}

	s.mu.Lock()
	s.presets = presets
	s.mu.Unlock()
	s.logger.Info("presets loaded", "count", len(presets), "dir", s.dir)
	return nil
}

// List returns all presets sorted by ID.
func (s *Store) List() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the preset with the given ID.
func (s *Store) Get(id string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[id]
	return p, ok
}

// Resolve returns the design system for a preset ID. It satisfies the
// wizard's PresetResolver interface.
func (s *Store) Resolve(id string) (product.DesignSystem, bool) {
	p, ok := s.Get(id)
	return p.Design, ok
}

// loadFS reads every .json file under dir in fsys into dst, keyed by
// preset ID (falling back to the filename stem when the file omits one).
func loadFS(fsys fs.FS, dir string, dst map[string]Preset) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		var p Preset
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		if p.ID == "" {
			p.ID = strings.TrimSuffix(entry.Name(), ".json")
		}
		dst[p.ID] = p
	}
	return nil
}
