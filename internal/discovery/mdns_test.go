package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantName string
		wantIP   string
		wantPort int
	}{
		{
			name: "valid feed with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "bench-3"},
				HostName:      "bench-3.local.",
				Port:          9321,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
				Text:          []string{"fw=2.14", "board=evk"},
			},
			wantNil:  false,
			wantName: "bench-3",
			wantIP:   "192.168.4.16",
			wantPort: 9321,
		},
		{
			name: "feed with custom port",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "lab-sniffer"},
				HostName:      "lab-sniffer.local",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.100")},
			},
			wantNil:  false,
			wantName: "lab-sniffer",
			wantIP:   "192.168.1.100",
			wantPort: 8080,
		},
		{
			name: "feed with no port specified (should use default)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "desk"},
				HostName:      "desk.local",
				Port:          0,
				AddrIPv4:      []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantNil:  false,
			wantName: "desk",
			wantIP:   "172.16.0.1",
			wantPort: DefaultPort,
		},
		{
			name: "empty instance name",
			entry: &zeroconf.ServiceEntry{
				HostName: "anon.local",
				Port:     9321,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "ghost"},
				HostName:      "ghost.local",
				Port:          9321,
				AddrIPv4:      []net.IP{},
				AddrIPv6:      []net.IP{},
			},
			wantNil: true,
		},
		{
			name: "IPv6 only feed",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "v6-only"},
				HostName:      "v6-only.local",
				Port:          9321,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantNil:  false,
			wantName: "v6-only",
			wantIP:   "fe80::1",
			wantPort: 9321,
		},
		{
			name: "feed with both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "dual-stack"},
				HostName:      "dual-stack.local",
				Port:          9321,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6:      []net.IP{net.ParseIP("fe80::2")},
			},
			wantNil:  false,
			wantName: "dual-stack",
			wantIP:   "192.168.1.50",
			wantPort: 9321,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := scanner.parseServiceEntry(tt.entry)

			if tt.wantNil {
				if feed != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", feed)
				}
				return
			}

			if feed == nil {
				t.Fatal("parseServiceEntry() = nil, want non-nil feed")
			}

			if feed.Name != tt.wantName {
				t.Errorf("feed.Name = %v, want %v", feed.Name, tt.wantName)
			}

			if feed.IP != tt.wantIP {
				t.Errorf("feed.IP = %v, want %v", feed.IP, tt.wantIP)
			}

			if feed.Port != tt.wantPort {
				t.Errorf("feed.Port = %v, want %v", feed.Port, tt.wantPort)
			}

			if feed.Hostname != tt.entry.HostName {
				t.Errorf("feed.Hostname = %v, want %v", feed.Hostname, tt.entry.HostName)
			}

			// Check that DiscoveredAt is recent (within last second)
			if time.Since(feed.DiscoveredAt) > time.Second {
				t.Errorf("feed.DiscoveredAt is not recent: %v", feed.DiscoveredAt)
			}
		})
	}
}

func TestScanner_parseServiceEntry_Metadata(t *testing.T) {
	scanner := NewScanner()

	entry := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "bench-3"},
		HostName:      "bench-3.local",
		Port:          9321,
		AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
		Text:          []string{"fw=2.14", "board=evk", "flag", "version=1.0"},
	}

	feed := scanner.parseServiceEntry(entry)
	if feed == nil {
		t.Fatal("parseServiceEntry() = nil, want feed")
	}

	// Check metadata parsing
	expectedMetadata := map[string]string{
		"fw":      "2.14",
		"board":   "evk",
		"flag":    "", // Key without value
		"version": "1.0",
	}

	if len(feed.Metadata) != len(expectedMetadata) {
		t.Errorf("feed.Metadata has %d entries, want %d", len(feed.Metadata), len(expectedMetadata))
	}

	for key, expectedValue := range expectedMetadata {
		if actualValue, ok := feed.Metadata[key]; !ok {
			t.Errorf("feed.Metadata missing key %q", key)
		} else if actualValue != expectedValue {
			t.Errorf("feed.Metadata[%q] = %q, want %q", key, actualValue, expectedValue)
		}
	}
}

func TestFeedURL(t *testing.T) {
	feed := &Feed{
		Name: "bench-3",
		IP:   "192.168.4.16",
		Port: 9321,
	}

	want := "ws://192.168.4.16:9321/feed"
	if got := feed.URL(); got != want {
		t.Errorf("feed.URL() = %q, want %q", got, want)
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()

	if scanner == nil {
		t.Fatal("NewScanner() = nil, want scanner")
	}

	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

// Note: Integration tests with live mDNS discovery require network access
// and should be run manually with:
// go test -tags=integration ./internal/discovery/
