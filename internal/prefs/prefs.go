// Package prefs persists the agent's theme and favorites as a JSON document.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FavoriteSlots is the fixed number of favorite service buttons.
const FavoriteSlots = 3

// Preferences mirrors the original config document layout.
type Preferences struct {
	Theme     string    `json:"tema"`
	Palette   string    `json:"cor"`
	FontSize  int       `json:"tamanho_fonte"`
	Favorites []*string `json:"favoritos"`
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Preferences {
	return Preferences{
		Theme:     "claro",
		Palette:   "azul",
		FontSize:  10,
		Favorites: make([]*string, FavoriteSlots),
	}
}

// Store reads and rewrites the preferences file.
type Store struct {
	path string
	log  *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load returns the persisted preferences, or defaults when the file is
// missing or unreadable.
func (s *Store) Load() Preferences {
	p := Defaults()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("reading preferences", zap.String("path", s.path), zap.Error(err))
		}
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Error("decoding preferences, using defaults", zap.String("path", s.path), zap.Error(err))
		return Defaults()
	}
	// Favorites must have exactly FavoriteSlots entries.
	for len(p.Favorites) < FavoriteSlots {
		p.Favorites = append(p.Favorites, nil)
	}
	p.Favorites = p.Favorites[:FavoriteSlots]
	return p
}

// Save rewrites the preferences document.
func (s *Store) Save(p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensuring prefs dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// Remove deletes the preferences file, used by the session wipe.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing preferences: %w", err)
	}
	return nil
}
