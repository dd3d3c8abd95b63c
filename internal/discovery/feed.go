package discovery

import (
	"fmt"
	"time"
)

// Feed represents a firmware log feed advertised on the local network.
// Each feed is a WebSocket endpoint that streams raw capture text.
type Feed struct {
	// Name is the mDNS service instance name of the feed
	Name string

	// Hostname is the advertised host of the publisher
	Hostname string

	// IP is the resolved IP address (IPv4 preferred)
	IP string

	// Port is the TCP port the feed listens on
	Port int

	// Metadata holds TXT record key/value pairs from the advertisement
	Metadata map[string]string

	// DiscoveredAt records when the feed was found
	DiscoveredAt time.Time
}

// String returns a human-readable representation of the feed.
func (f *Feed) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Name, f.IP, f.Port)
}

// URL returns the WebSocket URL for subscribing to the feed.
func (f *Feed) URL() string {
	return fmt.Sprintf("ws://%s:%d/feed", f.IP, f.Port)
}

// GetMetadata returns the value for a metadata key, or empty string if absent.
func (f *Feed) GetMetadata(key string) string {
	if f.Metadata == nil {
		return ""
	}
	return f.Metadata[key]
}
