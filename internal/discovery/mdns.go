package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type fwlog publishers advertise
	ServiceType = "_fwlog._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for feed discovery
	DefaultScanTimeout = 10 * time.Second

	// DefaultPort is the default port for fwlog feed publishers
	DefaultPort = 9321
)

// Scanner handles mDNS feed discovery
type Scanner struct {
	// Timeout is the maximum time to wait for feed discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// ScanForFeeds discovers all fwlog feeds on the local network
// Returns a list of discovered feeds or an error
func (s *Scanner) ScanForFeeds() ([]*Feed, error) {
	return s.ScanForFeedsWithContext(context.Background())
}

// ScanForFeedsWithContext discovers feeds with a custom context
func (s *Scanner) ScanForFeedsWithContext(ctx context.Context) ([]*Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	feeds := make([]*Feed, 0)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	// Collect service entries in a goroutine
	go func() {
		for entry := range entries {
			feed := s.parseServiceEntry(entry)
			if feed != nil {
				feeds = append(feeds, feed)
			}
		}
	}()

	err = resolver.Browse(ctx, ServiceType, ServiceDomain, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	// Wait for context to complete (timeout or cancellation)
	<-ctx.Done()

	return feeds, nil
}

// WaitForFeed waits for a specific feed by instance name
// Returns the feed or an error if not found within timeout
func (s *Scanner) WaitForFeed(name string) (*Feed, error) {
	return s.WaitForFeedWithContext(context.Background(), name)
}

// WaitForFeedWithContext waits for a specific feed with a custom context
func (s *Scanner) WaitForFeedWithContext(ctx context.Context, name string) (*Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	feedChan := make(chan *Feed, 1)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			feed := s.parseServiceEntry(entry)
			if feed != nil && feed.Name == name {
				feedChan <- feed
				cancel() // Found the feed, cancel context
				return
			}
		}
	}()

	err = resolver.Browse(ctx, ServiceType, ServiceDomain, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case feed := <-feedChan:
		return feed, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("feed %q not found within timeout", name)
	}
}

// parseServiceEntry converts a zeroconf service entry to a Feed
// Returns nil if the entry cannot be resolved to an address
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry) *Feed {
	if entry.Instance == "" {
		return nil
	}

	// Get IP address (prefer IPv4)
	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}

	// Fallback to IPv6 if no IPv4
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}

	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	// Parse TXT records into metadata
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		// TXT records are in "key=value" format
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			// Key without value
			metadata[parts[0]] = ""
		}
	}

	return &Feed{
		Name:         entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// Register advertises a feed on the local network via mDNS.
// The returned shutdown function must be called to withdraw the
// advertisement when the publisher stops.
func Register(instance string, port int, metadata map[string]string) (func(), error) {
	txt := make([]string, 0, len(metadata))
	for k, v := range metadata {
		if v == "" {
			txt = append(txt, k)
			continue
		}
		txt = append(txt, k+"="+v)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return server.Shutdown, nil
}

// ScanForFeeds is a convenience function to scan for feeds with a custom timeout
func ScanForFeeds(timeout time.Duration) ([]*Feed, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.ScanForFeeds()
}

// QuickScan performs a fast scan with a 3-second timeout
func QuickScan() ([]*Feed, error) {
	scanner := NewScanner()
	scanner.Timeout = 3 * time.Second
	return scanner.ScanForFeeds()
}

// FindFeed searches for a specific feed by instance name with default timeout
func FindFeed(name string) (*Feed, error) {
	scanner := NewScanner()
	return scanner.WaitForFeed(name)
}
