// ABOUTME: Manages the recent build requests list for the TUI wizard
// ABOUTME: Stores requests in the XDG config directory so the wizard can prefill them

package recent

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

// MaxRecentRequests is the maximum number of recent requests to keep
const MaxRecentRequests = 5

// Requests manages the list of recently submitted build requests
type Requests struct {
	configDir string
	requests  []models.BuildSetRequest
}

type recentData struct {
	Requests []models.BuildSetRequest `json:"requests"`
}

// New creates a new Requests manager with the given config directory
func New(configDir string) *Requests {
	return &Requests{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hrg")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hrg")
}

func (r *Requests) configFile() string {
	return filepath.Join(r.configDir, "recent.json")
}

// Load reads the recent requests from disk.
// Entries that no longer validate are dropped.
func (r *Requests) Load() ([]models.BuildSetRequest, error) {
	data, err := os.ReadFile(r.configFile())
	if errors.Is(err, os.ErrNotExist) {
		r.requests = []models.BuildSetRequest{}
		return r.requests, nil
	}
	if err != nil {
		return nil, err
	}

	var stored recentData
	if err := json.Unmarshal(data, &stored); err != nil {
		// Invalid JSON, start fresh
		r.requests = []models.BuildSetRequest{}
		return r.requests, nil
	}

	r.requests = make([]models.BuildSetRequest, 0, len(stored.Requests))
	for _, req := range stored.Requests {
		if req.Validate() == nil {
			r.requests = append(r.requests, req)
		}
	}
	return r.requests, nil
}

// Save writes the recent requests to disk
func (r *Requests) Save(requests []models.BuildSetRequest) error {
	if r.configDir == "" {
		return errors.New("no config directory")
	}
	if err := os.MkdirAll(r.configDir, 0o755); err != nil {
		return err
	}

	if len(requests) > MaxRecentRequests {
		requests = requests[:MaxRecentRequests]
	}
	r.requests = requests

	data, err := json.MarshalIndent(recentData{Requests: requests}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.configFile(), data, 0o644)
}

// Add puts a request at the front of the list, removing an identical earlier entry
func (r *Requests) Add(req models.BuildSetRequest) error {
	if r.requests == nil {
		if _, err := r.Load(); err != nil {
			r.requests = []models.BuildSetRequest{}
		}
	}

	updated := make([]models.BuildSetRequest, 0, len(r.requests)+1)
	updated = append(updated, req)
	for _, existing := range r.requests {
		if existing.Key() != req.Key() {
			updated = append(updated, existing)
		}
	}
	return r.Save(updated)
}

// Latest returns the most recent request, if any
func (r *Requests) Latest() (models.BuildSetRequest, bool) {
	list := r.List()
	if len(list) == 0 {
		return models.BuildSetRequest{}, false
	}
	return list[0], true
}

// List returns the current list of recent requests
func (r *Requests) List() []models.BuildSetRequest {
	if r.requests == nil {
		r.Load()
	}
	return r.requests
}
