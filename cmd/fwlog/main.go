// Fwlog decodes firmware debug logs from combined Bluetooth and IEEE
// 802.15.4 radio chips.
//
// Firmware transmits its debug stream as ASCII hex byte pairs, optionally
// interleaved with host-side timestamps. Fwlog turns that stream back into
// readable protocol events, either from a capture file or live from a
// WebSocket feed discovered over mDNS.
//
// Usage:
//
//	fwlog [command] [flags]
//
// See 'fwlog --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fwlog/internal/logging"
	"github.com/muurk/fwlog/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fwlog",
	Short: "Firmware debug log decoder",
	Long: `A decoder for combined Bluetooth / IEEE 802.15.4 firmware debug logs.

The firmware emits its debug stream as ASCII hex byte pairs. Fwlog decodes
captures from files or stdin, follows growing capture files, subscribes to
live feeds over WebSocket, and republishes captures as feeds that other
machines can discover via mDNS.

Set FWLOG_LOG_LEVEL=debug for diagnostic output on stderr.`,
	Version: version.Version,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(feedsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fwlog %s\n", version.Full())
	},
}
