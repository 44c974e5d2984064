// Package roster manages the known-athletes registry: a pre-seeded set of
// competitor identities that may exist before any appearance is indexed.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Entry is one known athlete in the registry
type Entry struct {
	FullName    string `json:"full_name"`
	FirstName   string `json:"first_name"`
	DBAthleteID *uint  `json:"db_athlete_id"`
}

// Meta carries registry provenance (source, fetched-at, etc.)
type Meta map[string]any

type registryFile struct {
	Meta     Meta    `json:"meta"`
	Athletes []Entry `json:"athletes"`
}

// Registry loads and saves the known-athletes JSON file. Loads are cached
// for the life of the process; Save invalidates the cache.
type Registry struct {
	path string

	mu     sync.Mutex
	loaded bool
	cached registryFile
}

// NewRegistry creates a registry backed by the given file path
func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

// Load returns the known athletes. A missing file is an empty roster, not an
// error.
func (r *Registry) Load() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return r.cached.Athletes, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.loaded = true
			r.cached = registryFile{}
			return nil, nil
		}
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var parsed registryFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing roster file %s: %w", r.path, err)
	}

	r.loaded = true
	r.cached = parsed
	return r.cached.Athletes, nil
}

// Save writes the athletes back to the registry file, preserving existing
// meta, and resets the cache so the next Load picks up the changes.
func (r *Registry) Save(athletes []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta := r.cached.Meta
	if meta == nil {
		if data, err := os.ReadFile(r.path); err == nil {
			var existing registryFile
			if err := json.Unmarshal(data, &existing); err == nil {
				meta = existing.Meta
			}
		}
	}
	if meta == nil {
		meta = Meta{}
	}

	out := registryFile{Meta: meta, Athletes: athletes}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("writing roster file: %w", err)
	}

	r.loaded = false
	return nil
}
