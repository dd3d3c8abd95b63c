package tables

import (
	"fmt"
	"strings"
)

// RuleKind tags the shape of an outer record's body.
type RuleKind int

const (
	// KindPureData marks one-byte payload continuation records. They
	// echo as bare hex pairs, or feed the nested accumulator while a
	// digit-log record is open.
	KindPureData RuleKind = iota
	// KindOpcodePair marks records whose bodies pair up across two
	// consecutive records into a 16-bit opcode.
	KindOpcodePair
	// KindEnumLookup marks records whose body byte resolves through a
	// named value table.
	KindEnumLookup
	// KindNestedLog marks records that open a nested digit-log payload
	// at a given level.
	KindNestedLog
	// KindVerbatim marks records that echo their body with a fixed,
	// category-specific prefix and no table lookup.
	KindVerbatim
	// KindSuppressed marks records that are consumed to keep the
	// stream aligned but emit no text.
	KindSuppressed
)

// BodyFormat selects how a verbatim record renders its body byte.
type BodyFormat int

const (
	// BodyNone emits the label only (e.g. queue-full markers).
	BodyNone BodyFormat = iota
	// BodyHex emits the body as 0x-prefixed hex.
	BodyHex
	// BodyDecimal emits the body as a decimal channel number appended
	// to the label (debug message channels).
	BodyDecimal
)

// OuterRule describes one outer record category. The direction prefixes
// are attached only for categories where the header's top bit is
// meaningful; for everything else both are empty and Label is used.
type OuterRule struct {
	Name     string
	Kind     RuleKind
	TxPrefix string
	RxPrefix string
	Label    string
	Body     BodyFormat
	Enum     string // value table name for KindEnumLookup
	Level    byte   // digit-log level id for KindNestedLog
}

// Directional reports whether the rule reads the header direction bit.
func (r OuterRule) Directional() bool {
	return r.TxPrefix != "" || r.RxPrefix != ""
}

// InnerKind tags how a nested digit-log 32-bit word is decoded.
type InnerKind int

const (
	// InnerHex renders the word as 0x-prefixed hex.
	InnerHex InnerKind = iota
	// InnerDecimal renders the word as a decimal count.
	InnerDecimal
	// InnerEnum resolves the whole word through a named value table,
	// falling back to hex on a miss.
	InnerEnum
	// InnerFlags renders the word as a pipe-joined list of matching
	// single-bit flag names.
	InnerFlags
	// InnerFrameTx decodes frame-type/sequence/command bit fields of a
	// transmitted frame word.
	InnerFrameTx
	// InnerFrameRx decodes frame-type/sequence/rx-status bit fields.
	InnerFrameRx
	// InnerFramePendingTx decodes frame-type/sequence/command/handle
	// bit fields of a pending-queue transmission.
	InnerFramePendingTx
	// InnerPendingRemove decodes index/frame-control/sequence fields of
	// a pending-frame-table removal.
	InnerPendingRemove
	// InnerPibInfo decodes PIB attribute id and sub-id fields.
	InnerPibInfo
	// InnerTick renders a microsecond tick count as H:MM:SS.mmm.
	InnerTick
	// InnerStartStop renders 1 as "start", everything else as "stop".
	InnerStartStop
	// InnerCoexMode decodes the WiFi coexistence frequency/calibration
	// bit pair.
	InnerCoexMode
)

// InnerRule describes how one inner log type's payload word decodes.
type InnerRule struct {
	Kind InnerKind
	Enum string // value or flag table name, when the kind uses one
}

// Flag is one bit of an ordered flag set.
type Flag struct {
	Mask uint32
	Name string
}

// Level names one nested digit-log level. LPName is the substitute
// shown for inner types in the low-power range (>= 0xc0). General
// levels carry their own inner name table and print every payload word
// raw.
type Level struct {
	Name    string
	LPName  string
	General bool
}

// Tables bundles every lookup the decoder consults. Loaded once,
// treated as read-only afterwards.
type Tables struct {
	Outer        map[string]OuterRule
	Enums        map[string]map[byte]string
	Opcodes      map[uint16]string
	Levels       map[byte]Level
	InnerNames   map[byte]string
	GeneralNames map[byte]string
	InnerRules   map[byte]InnerRule
	InnerEnums   map[string]map[uint32]string
	InnerFlags   map[string][]Flag
}

// KeyFor renders the masked 7-bit type code of a header byte as the
// normalized table key.
func KeyFor(header byte) string {
	return fmt.Sprintf("%02x", header&0x7f)
}

// NormalizeKey canonicalizes a user-supplied type key: lower case,
// no 0x prefix, fixed two hex digits.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "0x")
	if len(key) == 1 {
		key = "0" + key
	}
	return key
}

// OuterFor looks up the rule for a header byte. ok is false for type
// codes absent from the table.
func (t *Tables) OuterFor(header byte) (OuterRule, bool) {
	r, ok := t.Outer[KeyFor(header)]
	return r, ok
}

// EnumValue resolves a body byte through a named outer value table.
func (t *Tables) EnumValue(table string, value byte) (string, bool) {
	m, ok := t.Enums[table]
	if !ok {
		return "", false
	}
	s, ok := m[value]
	return s, ok
}

// Opcode resolves a 16-bit command opcode.
func (t *Tables) Opcode(op uint16) (string, bool) {
	s, ok := t.Opcodes[op]
	return s, ok
}

// InnerName returns the display name for an inner log type at the given
// level. General-level types use their own, separate name table.
func (t *Tables) InnerName(level, innerType byte) (string, bool) {
	if lv, ok := t.Levels[level]; ok && lv.General {
		s, ok := t.GeneralNames[innerType]
		return s, ok
	}
	s, ok := t.InnerNames[innerType]
	return s, ok
}

// InnerRuleFor returns the word decode rule for an inner log type,
// defaulting to a raw hex rendering.
func (t *Tables) InnerRuleFor(innerType byte) InnerRule {
	if r, ok := t.InnerRules[innerType]; ok {
		return r
	}
	return InnerRule{Kind: InnerHex}
}

// InnerEnumValue resolves a word through a named inner value table.
func (t *Tables) InnerEnumValue(table string, value uint32) (string, bool) {
	m, ok := t.InnerEnums[table]
	if !ok {
		return "", false
	}
	s, ok := m[value]
	return s, ok
}

// FlagSet returns the ordered flag set for a named flag table.
func (t *Tables) FlagSet(table string) []Flag {
	return t.InnerFlags[table]
}

// LevelPrefix renders the bracketed level tag in front of a decoded
// digit-log line. Inner types in the low-power range use the level's
// low-power name.
func (t *Tables) LevelPrefix(level, innerType byte) string {
	lv, ok := t.Levels[level]
	if !ok {
		return fmt.Sprintf("[level 0x%02x]", level)
	}
	name := lv.Name
	if innerType >= lowPowerTypeBase && lv.LPName != "" {
		name = lv.LPName
	}
	return "[" + name + "]"
}

// IsGeneralLevel reports whether a level decodes with the general name
// table and raw word rendering.
func (t *Tables) IsGeneralLevel(level byte) bool {
	lv, ok := t.Levels[level]
	return ok && lv.General
}

// IsNestedLevel reports whether a level id belongs to the digit-log
// level set.
func (t *Tables) IsNestedLevel(level byte) bool {
	_, ok := t.Levels[level]
	return ok
}

const (
	lowPowerTypeBase  = 0xc0
	nestedWordBytes   = 4
	tickRatePerSecond = 1_000_000
)

// NestedWordBytes is the maximum number of pure-data bytes accumulated
// into one digit-log payload word.
const NestedWordBytes = nestedWordBytes

// TickRate is the digit-log tick frequency used by InnerTick rules.
const TickRate = tickRatePerSecond
