// Package discovery provides mDNS-based discovery of fwlog capture feeds.
//
// This package implements multicast DNS (mDNS) service discovery to
// automatically locate fwlog feed publishers on the local network. A
// publisher (for example "fwlog serve") advertises itself using the
// "_fwlog._tcp" service type, and consumers browse for that type to
// find feeds to subscribe to.
//
// # Discovery Process
//
// The discovery process works as follows:
//  1. Broadcasts mDNS queries on the local network
//  2. Listens for "_fwlog._tcp" service advertisements
//  3. Collects feed information (instance name, host, IP, port, TXT metadata)
//  4. Returns a list of discovered feeds after the timeout period
//
// # Usage Example
//
//	// Discover feeds with 10-second timeout
//	feeds, err := discovery.ScanForFeeds(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, feed := range feeds {
//	    fmt.Printf("Found: %s at %s\n", feed.Name, feed.URL())
//	}
//
// # Publishing
//
// Publishers advertise themselves with Register, which returns a
// shutdown function that withdraws the advertisement:
//
//	shutdown, err := discovery.Register("bench-3", 9321, map[string]string{"fw": "2.14"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown()
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Publishers and consumers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
//
// # Thread Safety
//
// This package is safe for concurrent use. Multiple discovery sessions can run
// simultaneously without interference.
package discovery
