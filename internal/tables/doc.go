// Package tables holds the static decode tables for the radio firmware
// debug log protocol.
//
// The log stream is self-describing: every record starts with a header
// byte whose low seven bits select an entry in the outer type table,
// and that entry alone determines how many body bytes follow and how
// they are rendered. A second, inner table drives the nested
// 802.15.4/Zigbee/Thread "digit log" sub-protocol carried inside
// certain outer records.
//
// All tables are resolved to tagged rule values at load time and are
// immutable afterwards; the decoder treats them as read-only input.
// Firmware builds with extra log channels can extend the defaults from
// a YAML overrides file (see LoadFile).
package tables
