package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/fwlog/internal/tables"
)

// nestedState is the open digit-log accumulator. The level record
// carries the inner type in its body; the payload word arrives as
// subsequent pure-data bytes, oldest byte most significant.
type nestedState struct {
	active    bool
	level     byte
	innerType byte
	word      uint32
	timestamp string
}

func (n *nestedState) open(level, innerType byte, timestamp string) {
	*n = nestedState{
		active:    true,
		level:     level,
		innerType: innerType,
		timestamp: timestamp,
	}
}

// accumulate shifts one payload byte in. Only the low four bytes are
// kept; the firmware never sends more for a single digit log.
func (n *nestedState) accumulate(b byte) {
	n.word = n.word<<8 | uint32(b)
}

// flushNested decodes and emits the open digit log, if any. Called
// whenever a record arrives that cannot extend the payload, and at end
// of input.
func (s *Session) flushNested() {
	if !s.nested.active {
		return
	}
	n := s.nested
	s.nested = nestedState{}

	prefix := s.tables.LevelPrefix(n.level, n.innerType)
	name, known := s.tables.InnerName(n.level, n.innerType)
	if !known {
		name = "dbg" + strconv.Itoa(int(n.innerType))
	}

	var text string
	if !known || s.tables.IsGeneralLevel(n.level) {
		// General-level payloads and unmapped types print raw.
		text = hexWord(n.word)
	} else {
		text = s.renderWord(s.tables.InnerRuleFor(n.innerType), n.word)
	}

	s.sink.Fragment("\n" + n.timestamp + prefix + name + ":" + text + " ")
}

// renderWord decodes a 32-bit digit-log payload per the inner rule.
func (s *Session) renderWord(rule tables.InnerRule, w uint32) string {
	switch rule.Kind {
	case tables.InnerDecimal:
		return strconv.FormatUint(uint64(w), 10)

	case tables.InnerEnum:
		return s.innerEnum(rule.Enum, w)

	case tables.InnerFlags:
		var names []string
		for _, f := range s.tables.FlagSet(rule.Enum) {
			if w&f.Mask != 0 {
				names = append(names, f.Name)
			}
		}
		if len(names) == 0 {
			return hexWord(w)
		}
		return strings.Join(names, "|")

	case tables.InnerFrameTx:
		parts := s.frameParts(w)
		return strings.Join(parts, "|")

	case tables.InnerFrameRx:
		parts := []string{
			s.innerEnum("frame_type", w>>24),
			fmt.Sprintf("seq_num:%#x", (w>>16)&0xff),
			"rx_status:" + s.innerEnum("mac_error", (w>>8)&0xff),
		}
		return strings.Join(parts, "|")

	case tables.InnerFramePendingTx:
		parts := s.frameParts(w)
		parts = append(parts, fmt.Sprintf("msdu_handle:%#x", w&0xff))
		return strings.Join(parts, "|")

	case tables.InnerPendingRemove:
		return fmt.Sprintf("index:%#x|frame_ctrl:%#x|seq_num:%#x",
			w>>16, (w>>8)&0xff, w&0xff)

	case tables.InnerPibInfo:
		return fmt.Sprintf("%s|sub_id1:%#x|sub_id2:%#x",
			s.innerEnum("pib_id", w>>24), (w>>16)&0xff, w&0xffff)

	case tables.InnerTick:
		return formatTick(w)

	case tables.InnerStartStop:
		if w == 1 {
			return "start"
		}
		return "stop"

	case tables.InnerCoexMode:
		freq := "in_the_diff_frequency"
		if w&0x10 != 0 {
			freq = "in_the_same_frequency"
		}
		cal := "wifi_not_calibration"
		if w&0x01 != 0 {
			cal = "wifi_calibration"
		}
		return freq + " || " + cal

	default:
		return hexWord(w)
	}
}

// frameParts decodes the shared tx-frame head fields:
// [31:24] frame type, [23:16] sequence number, and for MAC command
// frames [15:8] the command id.
func (s *Session) frameParts(w uint32) []string {
	frameType := w >> 24
	parts := []string{
		s.innerEnum("frame_type", frameType),
		fmt.Sprintf("seq_num:%#x", (w>>16)&0xff),
	}
	if frameType == 0x03 {
		parts = append(parts, s.innerEnum("cmd_id", (w>>8)&0xff))
	}
	return parts
}

func (s *Session) innerEnum(table string, value uint32) string {
	if name, ok := s.tables.InnerEnumValue(table, value); ok {
		return name
	}
	return hexWord(value)
}

// formatTick renders a tick count as H:MM:SS.mmm.
func formatTick(w uint32) string {
	t := uint64(w)
	const perSecond = tables.TickRate
	return fmt.Sprintf("%d:%02d:%02d.%03d",
		t/(perSecond*3600),
		t/(perSecond*60)%60,
		t/perSecond%60,
		t%perSecond/1000)
}

func hexWord(w uint32) string {
	return fmt.Sprintf("%#x", w)
}
