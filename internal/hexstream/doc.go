// Package hexstream turns raw firmware capture text into a stream of
// byte tokens.
//
// Captures are ASCII text: each logged byte is rendered as two hex
// digits followed by a separator ("3f "), and the capture layer
// periodically injects a fixed-width wall-clock timestamp block between
// tokens. The Reader consumes the text three characters at a time; any
// window that does not parse as a hex token is treated as the start of
// a timestamp block, which is captured out of band and handed to the
// decoder for prefixing the next output line.
//
// The Reader is push-fed (Feed) so that it can run against a live,
// still-growing capture. Incomplete trailing windows are held until
// more input arrives or CloseInput marks end of stream.
package hexstream
