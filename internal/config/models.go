package config

import "time"

// Registry represents the entire user configuration file.
// This stores user-defined metadata for capture feeds and application preferences.
type Registry struct {
	Version     int              `yaml:"version"`
	Feeds       map[string]*Feed `yaml:"feeds,omitempty"` // Keyed by user-chosen feed name
	Preferences *Preferences     `yaml:"preferences,omitempty"`
}

// Feed represents a remembered capture feed: a bench device or relay
// that publishes raw firmware log text over WebSocket.
type Feed struct {
	URL      string    `yaml:"url"`                 // ws:// endpoint of the feed
	Nickname string    `yaml:"nickname,omitempty"`  // User-friendly name for listings
	LastSeen time.Time `yaml:"last_seen,omitempty"` // Last discovery/connection time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	AutoDiscover    bool   `yaml:"auto_discover"`         // Enable automatic mDNS discovery on startup
	DiscoverTimeout int    `yaml:"discover_timeout"`      // mDNS discovery timeout in seconds
	TablesPath      string `yaml:"tables_path,omitempty"` // YAML decode-table overrides to apply by default
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Feeds:   make(map[string]*Feed),
		Preferences: &Preferences{
			AutoDiscover:    true,
			DiscoverTimeout: 10,
		},
	}
}

// GetFeed retrieves feed metadata by name.
// Returns nil if the feed doesn't exist in the registry.
func (r *Registry) GetFeed(name string) *Feed {
	return r.Feeds[name]
}

// EnsureFeed ensures a feed entry exists in the registry.
// If the feed doesn't exist, creates a new entry with default values.
// Returns the feed entry (existing or newly created).
func (r *Registry) EnsureFeed(name string) *Feed {
	if r.Feeds == nil {
		r.Feeds = make(map[string]*Feed)
	}

	if feed, exists := r.Feeds[name]; exists {
		return feed
	}

	feed := &Feed{}
	r.Feeds[name] = feed
	return feed
}

// UpdateFeedLastSeen updates the last seen timestamp and URL for a feed.
func (r *Registry) UpdateFeedLastSeen(name, url string) {
	feed := r.EnsureFeed(name)
	feed.LastSeen = time.Now()
	feed.URL = url
}

// SetFeedNickname sets a user-friendly nickname for a feed.
func (r *Registry) SetFeedNickname(name, nickname string) {
	feed := r.EnsureFeed(name)
	feed.Nickname = nickname
}
