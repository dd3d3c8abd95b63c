package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/fwlog/internal/config"
	"github.com/muurk/fwlog/internal/decoder"
	"github.com/muurk/fwlog/internal/discovery"
	"github.com/muurk/fwlog/internal/feed"
	"github.com/muurk/fwlog/internal/tables"
)

// readChunkSize is how much capture text is fed to the decoder per read
const readChunkSize = 32 * 1024

// Shared command flags
var (
	tablesPath string
	outputPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "YAML file with decode-table overrides (default from config)")
}

// loadTables resolves the decode tables: the --tables flag wins, then the
// tables_path preference from the config file, then the built-in defaults.
func loadTables() (*tables.Tables, error) {
	path := tablesPath
	if path == "" {
		if registry, err := config.GetGlobalRegistry(); err == nil {
			path = registry.Preferences.TablesPath
		}
	}

	tbl, err := tables.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load decode tables: %w", err)
	}
	return tbl, nil
}

// openOutput returns the writer decoded text goes to
func openOutput() (io.WriteCloser, error) {
	if outputPath == "" || outputPath == "-" {
		return os.Stdout, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// decodeCmd decodes a capture from a file, stdin, or a live feed
var decodeCmd = &cobra.Command{
	Use:   "decode [source]",
	Short: "Decode a firmware log capture",
	Long: `Decode a firmware log capture into readable protocol events.

The source may be a capture file, "-" for stdin (the default), a
ws:// feed URL, or the name of a feed saved in the config file.
Decoding is streaming: output appears as soon as each record is
complete, so live feeds and pipes work without buffering the whole
capture.`,
	Example: `  # Decode a capture file
  fwlog decode capture.txt

  # Decode from a serial console pipe
  picocom --logfile /dev/stdout /dev/ttyUSB0 | fwlog decode

  # Decode a live feed by URL
  fwlog decode ws://192.168.4.16:9321/feed

  # Decode a saved feed by name
  fwlog decode bench-3

  # Apply customer-specific decode tables
  fwlog decode capture.txt --tables lab-tables.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write decoded text to a file instead of stdout")
}

func runDecode(cmd *cobra.Command, args []string) error {
	tbl, err := loadTables()
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer func() { _ = out.Close() }()
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	sink := decoder.CallbackSink(func(text string) {
		_, _ = io.WriteString(out, text)
	})
	session := decoder.New(tbl, sink)

	switch {
	case source == "-":
		if err := streamInto(session, os.Stdin); err != nil {
			return err
		}
	case strings.HasPrefix(source, "ws://") || strings.HasPrefix(source, "wss://"):
		if err := decodeFeed(cmd.Context(), session, source, ""); err != nil {
			return err
		}
	default:
		if url, name, ok := lookupSavedFeed(source); ok {
			if err := decodeFeed(cmd.Context(), session, url, name); err != nil {
				return err
			}
			break
		}
		if err := decodeFile(session, source); err != nil {
			return err
		}
	}

	if err := session.Close(); err != nil {
		return err
	}

	// Decoded lines start with "\n", so the last one needs a terminator
	_, _ = io.WriteString(out, "\n")
	return nil
}

// decodeFile streams a capture file into the session
func decodeFile(session *decoder.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Sniff the head of the file so a wrong argument fails loudly
	// instead of producing pages of resync errors
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return decoder.NewSourceError(path, err)
	}
	if n > 0 && !decoder.LooksLikeCapture(head[:n]) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not look like a hex capture, output may be garbage\n", path)
	}
	if n > 0 {
		if err := session.Feed(head[:n]); err != nil {
			return err
		}
	}

	return streamInto(session, f)
}

// decodeFeed subscribes to a feed URL and decodes chunks as they arrive.
// If name is non-empty the feed's last_seen is updated in the config file.
func decodeFeed(ctx context.Context, session *decoder.Session, url, name string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := feed.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if name != "" {
		if registry, regErr := config.GetGlobalRegistry(); regErr == nil {
			registry.UpdateFeedLastSeen(name, url)
			_ = registry.Save()
		}
	}

	// Close the subscription when interrupted so Next unblocks
	go func() {
		<-ctx.Done()
		_ = client.Close()
	}()

	for {
		chunk, err := client.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := session.Feed([]byte(chunk)); err != nil {
			return err
		}
	}
}

// streamInto pumps a reader into the session in fixed-size chunks
func streamInto(session *decoder.Session, r io.Reader) error {
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if feedErr := session.Feed(buf[:n]); feedErr != nil {
				return feedErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return decoder.NewSourceError("", err)
		}
	}
}

// lookupSavedFeed resolves a feed name from the config file to its URL
func lookupSavedFeed(name string) (url, feedName string, ok bool) {
	registry, err := config.GetGlobalRegistry()
	if err != nil {
		return "", "", false
	}
	f := registry.GetFeed(name)
	if f == nil || f.URL == "" {
		return "", "", false
	}
	return f.URL, name, true
}

// followCmd decodes a capture file that is still being written
var followCmd = &cobra.Command{
	Use:   "follow <file>",
	Short: "Decode a capture file as it grows",
	Long: `Decode a capture file and keep watching it for new data, like tail -f.

New bytes are decoded as they appear. If the file is truncated (for
example by a logger rotating it), decoding restarts from the beginning.
Press Ctrl-C to stop.`,
	Example: `  # Follow a capture being written by a serial logger
  fwlog follow /var/log/radio-capture.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

var followInterval int

func init() {
	followCmd.Flags().IntVar(&followInterval, "interval", 500, "Poll interval in milliseconds")
	followCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write decoded text to a file instead of stdout")
}

func runFollow(cmd *cobra.Command, args []string) error {
	tbl, err := loadTables()
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer func() { _ = out.Close() }()
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer func() { _ = f.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := decoder.CallbackSink(func(text string) {
		_, _ = io.WriteString(out, text)
	})
	session := decoder.New(tbl, sink)

	buf := make([]byte, readChunkSize)
	var offset int64
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			offset += int64(n)
			if err := session.Feed(buf[:n]); err != nil {
				return err
			}
		}
		if readErr != nil && readErr != io.EOF {
			return decoder.NewSourceError(path, readErr)
		}

		if readErr == io.EOF {
			// Detect truncation so a rotated file restarts cleanly
			info, statErr := os.Stat(path)
			if statErr == nil && info.Size() < offset {
				if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
					return decoder.NewSourceError(path, seekErr)
				}
				offset = 0
				_ = session.Close()
				session = decoder.New(tbl, sink)
			}

			select {
			case <-ctx.Done():
				_ = session.Close()
				_, _ = io.WriteString(out, "\n")
				return nil
			case <-time.After(time.Duration(followInterval) * time.Millisecond):
			}
		}
	}
}

// serveCmd republishes a capture source as a WebSocket feed
var serveCmd = &cobra.Command{
	Use:   "serve [source]",
	Short: "Publish a capture source as a live feed",
	Long: `Read capture text from a file or stdin and republish it as a WebSocket
feed at /feed, announced over mDNS as a "_fwlog._tcp" service.

This lets one machine attached to the hardware share its capture with
any number of consumers running 'fwlog decode'. When the source is a
file the server keeps running after the file ends so late subscribers
can still connect; press Ctrl-C to stop.`,
	Example: `  # Share a serial console capture on the local network
  picocom --logfile /dev/stdout /dev/ttyUSB0 | fwlog serve --name bench-3

  # Replay a capture file at 1 KiB/s for decoder testing
  fwlog serve capture.txt --throttle 1000 --chunk-size 1024`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

var (
	serveHost     string
	servePort     int
	serveName     string
	serveChunk    int
	serveThrottle int
	serveDecoded  bool
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", discovery.DefaultPort, "Listen port (0 = pick a free port)")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name (default: hostname)")
	serveCmd.Flags().IntVar(&serveChunk, "chunk-size", 4096, "Bytes per published chunk")
	serveCmd.Flags().IntVar(&serveThrottle, "throttle", 0, "Delay between chunks in milliseconds (for replay)")
	serveCmd.Flags().BoolVar(&serveDecoded, "decoded", false, "Publish decoded fragments instead of raw capture text")
}

func runServe(cmd *cobra.Command, args []string) error {
	instance := serveName
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("failed to determine hostname for mDNS name: %w", err)
		}
		instance = hostname
	}

	var src io.Reader = os.Stdin
	sourceName := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open capture: %w", err)
		}
		defer func() { _ = f.Close() }()
		src = f
		sourceName = args[0]
	}

	srv := feed.NewServer(&feed.Config{
		Host:     serveHost,
		Port:     servePort,
		Instance: instance,
		Metadata: map[string]string{"source": sourceName},
	})
	if err := srv.Start(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Serving %s as feed %q on port %d (Ctrl-C to stop)\n",
		sourceName, instance, srv.Port())

	// With --decoded, subscribers receive decoded fragments instead of
	// the raw hex stream
	publish := srv.Publish
	var session *decoder.Session
	if serveDecoded {
		tbl, err := loadTables()
		if err != nil {
			return err
		}
		session = decoder.New(tbl, decoder.CallbackSink(srv.Publish))
		publish = func(text string) {
			_ = session.Feed([]byte(text))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- publishSource(ctx, publish, src)
	}()

	select {
	case <-ctx.Done():
	case err := <-done:
		if err != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
			return err
		}
		if session != nil {
			_ = session.Close()
		}
		// Source exhausted: stay up for late subscribers
		fmt.Fprintln(os.Stderr, "Capture source ended, feed stays up until interrupted")
		<-ctx.Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// publishSource reads the capture source and publishes it chunk by chunk
func publishSource(ctx context.Context, publish func(string), src io.Reader) error {
	buf := make([]byte, serveChunk)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			publish(string(buf[:n]))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return decoder.NewSourceError("", err)
		}

		if serveThrottle > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Duration(serveThrottle) * time.Millisecond):
			}
		} else if ctx.Err() != nil {
			return nil
		}
	}
}

// feedsCmd discovers and lists feeds
var feedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "Discover and list capture feeds",
	Long: `Scan the local network for fwlog feeds via mDNS and list them together
with feeds saved in the config file.

Discovered feeds are remembered in the config file so 'fwlog decode <name>'
works later even without running a scan first.`,
	Example: `  # Scan with the configured timeout
  fwlog feeds

  # Quick 3-second scan
  fwlog feeds --timeout 3

  # List saved feeds without scanning
  fwlog feeds --known`,
	RunE: runFeeds,
}

var (
	feedsTimeout int
	feedsKnown   bool
)

func init() {
	feedsCmd.Flags().IntVar(&feedsTimeout, "timeout", 0, "Scan timeout in seconds (default from config)")
	feedsCmd.Flags().BoolVar(&feedsKnown, "known", false, "List saved feeds only, skip the mDNS scan")
}

func runFeeds(cmd *cobra.Command, args []string) error {
	registry, err := config.GetGlobalRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !feedsKnown {
		timeout := feedsTimeout
		if timeout <= 0 {
			timeout = registry.Preferences.DiscoverTimeout
		}

		fmt.Printf("Scanning for feeds (timeout: %ds)...\n\n", timeout)

		found, err := discovery.ScanForFeeds(time.Duration(timeout) * time.Second)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(found) == 0 {
			fmt.Println("No feeds found.")
			fmt.Println("\nTroubleshooting:")
			fmt.Println("  - Ensure a publisher is running ('fwlog serve' on the capture machine)")
			fmt.Println("  - Check that both machines are on the same network segment")
			fmt.Println("  - Verify mDNS (UDP 5353) is not blocked by a firewall")
			fmt.Println("  - Try increasing --timeout for slower networks")
		} else {
			fmt.Printf("Found %d feed(s):\n\n", len(found))
			for i, f := range found {
				fmt.Printf("%d. %s\n", i+1, f.Name)
				fmt.Printf("   URL:  %s\n", f.URL())
				if len(f.Metadata) > 0 {
					fmt.Printf("   Meta: %v\n", f.Metadata)
				}
				fmt.Println()
				registry.UpdateFeedLastSeen(f.Name, f.URL())
			}
			if err := registry.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
			}
		}
	}

	if len(registry.Feeds) > 0 {
		fmt.Println("Saved feeds:")
		names := make([]string, 0, len(registry.Feeds))
		for name := range registry.Feeds {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			f := registry.Feeds[name]
			line := fmt.Sprintf("  %-20s %s", name, f.URL)
			if f.Nickname != "" {
				line += fmt.Sprintf("  (%s)", f.Nickname)
			}
			if !f.LastSeen.IsZero() {
				line += fmt.Sprintf("  last seen %s", f.LastSeen.Format("2006-01-02 15:04"))
			}
			fmt.Println(line)
		}
		fmt.Println("\nUse 'fwlog decode <name>' to decode a saved feed")
	}

	return nil
}
