package decoder

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/muurk/fwlog/internal/tables"
)

// dispatch routes one complete record through its category rule.
func (s *Session) dispatch(head, body byte) {
	rule, ok := s.tables.OuterFor(head)
	if !ok {
		s.flushNested()
		s.reader.Rewind()
		s.log.Debug("resynchronized on unknown record category",
			zap.String("log_type", tables.KeyFor(head)),
			zap.Uint8("log_body", body))
		s.emitLine(fmt.Sprintf("parse_log_error, log_type:0x%s log_body:0x%02x", tables.KeyFor(head), body))
		return
	}

	if rule.Kind == tables.KindPureData {
		if s.nested.active {
			s.nested.accumulate(body)
		} else {
			s.sink.Fragment(fmt.Sprintf("%02x ", body))
		}
		return
	}

	// Every other category ends a nested sequence before it is
	// handled itself.
	s.flushNested()

	switch rule.Kind {
	case tables.KindSuppressed:

	case tables.KindOpcodePair:
		if !s.opPending {
			s.opHigh = body
			s.opPending = true
			return
		}
		s.opPending = false
		op := uint16(s.opHigh)<<8 | uint16(body)
		name, ok := s.tables.Opcode(op)
		if !ok {
			name = fmt.Sprintf("0x%04x", op)
		}
		s.emitLine(fmt.Sprintf("cmd_op:0x%04x %s", op, name))

	case tables.KindEnumLookup:
		name, ok := s.tables.EnumValue(rule.Enum, body)
		if !ok {
			s.reader.Rewind()
			s.log.Debug("resynchronized on unmapped enum value",
				zap.String("log_type", rule.Name),
				zap.Uint8("log_body", body))
			s.emitLine("error_log_body, log_type:" + rule.Name)
			return
		}
		s.emitLine(s.prefixFor(rule, head) + name)

	case tables.KindVerbatim:
		var text string
		switch rule.Body {
		case tables.BodyNone:
			text = rule.Label
		case tables.BodyHex:
			text = fmt.Sprintf("%s0x%02x", rule.Label, body)
		case tables.BodyDecimal:
			text = rule.Label + strconv.Itoa(int(body))
		}
		if rule.Directional() {
			text = s.directionPrefix(rule, head) + text
		}
		s.emitLine(text)

	case tables.KindNestedLog:
		s.nested.open(rule.Level, body, s.reader.TakeTimestamp())
	}
}

// prefixFor renders the text preceding a resolved enum value: the
// direction prefix for directional categories, the fixed label for the
// rest.
func (s *Session) prefixFor(rule tables.OuterRule, head byte) string {
	if rule.Directional() {
		return s.directionPrefix(rule, head)
	}
	return rule.Label
}

// directionPrefix reads the header's top bit: 0 transmit, 1 receive.
func (s *Session) directionPrefix(rule tables.OuterRule, head byte) string {
	if head>>7 == 0 {
		return rule.TxPrefix
	}
	return rule.RxPrefix
}

// emitLine starts a new output line for one record: newline, the
// pending timestamp marker if one was captured, then the record text.
// A trailing space lets inline pure-data echoes extend the line.
func (s *Session) emitLine(text string) {
	s.sink.Fragment("\n" + s.reader.TakeTimestamp() + text + " ")
}
