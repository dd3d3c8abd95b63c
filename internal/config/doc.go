// Package config provides user configuration management for the fwlog tooling.
//
// This package manages a YAML-based configuration file that stores remembered
// capture feeds (name, WebSocket URL, last-seen time) and application
// preferences such as the default decode-table override path. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/fwlog/config.yaml or $HOME/.config/fwlog/config.yaml
//   - macOS: $HOME/.config/fwlog/config.yaml
//   - Windows: %LOCALAPPDATA%\fwlog\config.yaml
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Remember a capture feed
//	registry.UpdateFeedLastSeen("bench-3", "ws://10.0.0.17:8873/feed")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
