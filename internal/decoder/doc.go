// Package decoder turns firmware log captures into human-readable text.
//
// A capture is a stream of two-token records: a header byte whose low
// seven bits select the record category, followed by one body byte.
// There is no framing, so the decoder infers record boundaries from the
// category tables alone, skips the repeated-0xFF idle sentinels the
// firmware emits between bursts, and resynchronizes by stepping back a
// single token whenever a lookup misses. The 802.15.4 side of the
// firmware tunnels a second protocol through pure-data records; those
// bytes accumulate into a 32-bit word that is decoded when the nested
// sequence ends.
//
// Session is the stateful entry point and supports incremental feeding,
// so a live capture can be decoded while it is still being written.
// Decode and DecodeString are one-shot conveniences for closed inputs.
package decoder
