package tables

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileSchema is the on-disk override document. Every section is
// optional; entries merge over the built-in defaults, keyed the same
// way the defaults are.
type fileSchema struct {
	Outer   map[string]outerSchema       `yaml:"outer"`
	Enums   map[string]map[string]string `yaml:"enums"`
	Opcodes map[string]string            `yaml:"opcodes"`
	Inner   map[string]innerSchema       `yaml:"inner"`
}

type outerSchema struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	TxPrefix string `yaml:"tx_prefix"`
	RxPrefix string `yaml:"rx_prefix"`
	Label    string `yaml:"label"`
	Body     string `yaml:"body"`
	Enum     string `yaml:"enum"`
	Level    string `yaml:"level"`
}

type innerSchema struct {
	Name string `yaml:"name"`
	Enum string `yaml:"enum"`
}

// LoadFile returns the default tables with overrides from a YAML
// document merged in. A missing path is not an error when it is empty;
// an explicit path must exist.
func LoadFile(path string) (*Tables, error) {
	t := Load()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table overrides: %w", err)
	}
	var doc fileSchema
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing table overrides %s: %w", path, err)
	}
	if err := merge(t, &doc); err != nil {
		return nil, fmt.Errorf("applying table overrides %s: %w", path, err)
	}
	return t, nil
}

func merge(t *Tables, doc *fileSchema) error {
	for key, o := range doc.Outer {
		rule, err := o.toRule()
		if err != nil {
			return fmt.Errorf("outer %q: %w", key, err)
		}
		t.Outer[NormalizeKey(key)] = rule
	}
	for name, values := range doc.Enums {
		m := t.Enums[name]
		if m == nil {
			m = make(map[byte]string, len(values))
			t.Enums[name] = m
		}
		for key, label := range values {
			v, err := parseByte(key)
			if err != nil {
				return fmt.Errorf("enum %q value %q: %w", name, key, err)
			}
			m[v] = label
		}
	}
	for key, name := range doc.Opcodes {
		op, err := parseUint(key, 16)
		if err != nil {
			return fmt.Errorf("opcode %q: %w", key, err)
		}
		t.Opcodes[uint16(op)] = name
	}
	for key, in := range doc.Inner {
		v, err := parseByte(key)
		if err != nil {
			return fmt.Errorf("inner %q: %w", key, err)
		}
		if in.Name != "" {
			t.InnerNames[v] = in.Name
		}
		if in.Enum != "" {
			t.InnerRules[v] = InnerRule{Kind: InnerEnum, Enum: in.Enum}
		}
	}
	return nil
}

func (o outerSchema) toRule() (OuterRule, error) {
	rule := OuterRule{
		Name:     o.Name,
		TxPrefix: o.TxPrefix,
		RxPrefix: o.RxPrefix,
		Label:    o.Label,
		Enum:     o.Enum,
	}
	switch o.Kind {
	case "pure_data":
		rule.Kind = KindPureData
	case "opcode_pair":
		rule.Kind = KindOpcodePair
	case "enum":
		rule.Kind = KindEnumLookup
		if o.Enum == "" {
			return rule, fmt.Errorf("kind enum needs an enum table name")
		}
	case "nested":
		rule.Kind = KindNestedLog
		lvl, err := parseByte(o.Level)
		if err != nil {
			return rule, fmt.Errorf("level: %w", err)
		}
		rule.Level = lvl
	case "verbatim", "":
		rule.Kind = KindVerbatim
	case "suppressed":
		rule.Kind = KindSuppressed
	default:
		return rule, fmt.Errorf("unknown kind %q", o.Kind)
	}
	switch o.Body {
	case "", "none":
		rule.Body = BodyNone
	case "hex":
		rule.Body = BodyHex
	case "decimal":
		rule.Body = BodyDecimal
	default:
		return rule, fmt.Errorf("unknown body format %q", o.Body)
	}
	return rule, nil
}

func parseByte(s string) (byte, error) {
	v, err := parseUint(s, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

func parseUint(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, bits)
}
