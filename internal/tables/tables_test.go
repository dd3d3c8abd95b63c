package tables

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name   string
		header byte
		want   string
	}{
		{name: "low type code", header: 0x03, want: "03"},
		{name: "direction bit masked", header: 0x83, want: "03"},
		{name: "verify sentinel", header: 0xff, want: "7f"},
		{name: "digit log level", header: 0xd2, want: "52"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFor(tt.header); got != tt.want {
				t.Errorf("KeyFor(0x%02x) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0x3", want: "03"},
		{in: "0X0A", want: "0a"},
		{in: " 52 ", want: "52"},
		{in: "7f", want: "7f"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOuterLookup(t *testing.T) {
	tbl := Load()

	tests := []struct {
		name   string
		header byte
		verify func(t *testing.T, r OuterRule)
	}{
		{
			name:   "lmp pdu is directional",
			header: 0x03,
			verify: func(t *testing.T, r OuterRule) {
				if !r.Directional() {
					t.Error("lmp_pdu should be directional")
				}
				if r.Kind != KindEnumLookup || r.Enum != "lmp_opcode" {
					t.Errorf("lmp_pdu rule = %+v", r)
				}
			},
		},
		{
			name:   "hci command pairs opcodes",
			header: 0x01,
			verify: func(t *testing.T, r OuterRule) {
				if r.Kind != KindOpcodePair {
					t.Errorf("kind = %v, want KindOpcodePair", r.Kind)
				}
			},
		},
		{
			name:   "verify record is suppressed",
			header: 0xff,
			verify: func(t *testing.T, r OuterRule) {
				if r.Kind != KindSuppressed {
					t.Errorf("kind = %v, want KindSuppressed", r.Kind)
				}
			},
		},
		{
			name:   "digit log level carries level id",
			header: 0x54,
			verify: func(t *testing.T, r OuterRule) {
				if r.Kind != KindNestedLog || r.Level != 0x54 {
					t.Errorf("rule = %+v, want nested level 0x54", r)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := tbl.OuterFor(tt.header)
			if !ok {
				t.Fatalf("OuterFor(0x%02x) missing", tt.header)
			}
			tt.verify(t, r)
		})
	}

	if _, ok := tbl.OuterFor(0x77); ok {
		t.Error("OuterFor(0x77) should miss")
	}
}

func TestLevelPrefix(t *testing.T) {
	tbl := Load()

	tests := []struct {
		name      string
		level     byte
		innerType byte
		want      string
	}{
		{name: "info level", level: 0x53, innerType: 0x1e, want: "[15p4 info]"},
		{name: "info level low power type", level: 0x53, innerType: 0xc1, want: "[lp info]"},
		{name: "lp level", level: 0x52, innerType: 0x05, want: "[15p4 lp]"},
		{name: "lp level low power type", level: 0x52, innerType: 0xc6, want: "[low power]"},
		{name: "unknown level", level: 0x5f, innerType: 0x00, want: "[level 0x5f]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tbl.LevelPrefix(tt.level, tt.innerType); got != tt.want {
				t.Errorf("LevelPrefix(0x%02x, 0x%02x) = %q, want %q", tt.level, tt.innerType, got, tt.want)
			}
		})
	}
}

func TestInnerName(t *testing.T) {
	tbl := Load()

	if got, ok := tbl.InnerName(0x53, 0x1e); !ok || got != "tick" {
		t.Errorf("InnerName(info, 0x1e) = %q, %v", got, ok)
	}
	// The general level has its own, initially empty name table, so
	// every general type falls back to the dbg rendering.
	if _, ok := tbl.InnerName(0x50, 0x1e); ok {
		t.Error("general level should miss the shared name table")
	}
}

func TestInnerRuleDefaults(t *testing.T) {
	tbl := Load()

	if r := tbl.InnerRuleFor(0x1e); r.Kind != InnerTick {
		t.Errorf("rule for 0x1e = %+v, want InnerTick", r)
	}
	if r := tbl.InnerRuleFor(0x4f); r.Kind != InnerEnum || r.Enum != "mac_error" {
		t.Errorf("rule for 0x4f = %+v, want mac_error enum", r)
	}
	if r := tbl.InnerRuleFor(0x99); r.Kind != InnerHex {
		t.Errorf("rule for unmapped type = %+v, want InnerHex", r)
	}
}

func TestFlagTables(t *testing.T) {
	tbl := Load()

	flags := tbl.FlagSet("rf_interrupt")
	if len(flags) == 0 {
		t.Fatal("rf_interrupt flag set missing")
	}
	for _, f := range flags {
		if f.Mask == 0 || f.Mask&(f.Mask-1) != 0 {
			t.Errorf("flag %q mask 0x%x is not a single bit", f.Name, f.Mask)
		}
	}
}

func TestLoadFileOverrides(t *testing.T) {
	doc := `
outer:
  "13":
    name: pan_trace
    kind: enum
    enum: pan_trace
  "0x03":
    name: lmp_pdu
    kind: verbatim
    label: "lmp "
    body: hex
enums:
  pan_trace:
    "0x00": idle
    "0x01": joined
opcodes:
  "0xfc01": vendor_dbg
inner:
  "0x61": { name: radio_cal }
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	r, ok := tbl.OuterFor(0x13)
	if !ok || r.Kind != KindEnumLookup || r.Enum != "pan_trace" {
		t.Errorf("added outer rule = %+v, %v", r, ok)
	}
	if got, ok := tbl.EnumValue("pan_trace", 0x01); !ok || got != "joined" {
		t.Errorf("added enum value = %q, %v", got, ok)
	}

	// An override replaces the built-in rule wholesale.
	r, ok = tbl.OuterFor(0x03)
	if !ok || r.Kind != KindVerbatim || r.Label != "lmp " {
		t.Errorf("overridden rule = %+v, %v", r, ok)
	}

	if got, ok := tbl.Opcode(0xfc01); !ok || got != "vendor_dbg" {
		t.Errorf("added opcode = %q, %v", got, ok)
	}
	if got, ok := tbl.InnerName(0x53, 0x61); !ok || got != "radio_cal" {
		t.Errorf("added inner name = %q, %v", got, ok)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown kind",
			doc:  "outer:\n  \"13\": { kind: mystery }\n",
		},
		{
			name: "enum kind without table",
			doc:  "outer:\n  \"13\": { kind: enum }\n",
		},
		{
			name: "bad enum value key",
			doc:  "enums:\n  x:\n    \"zz\": nope\n",
		},
		{
			name: "bad opcode key",
			doc:  "opcodes:\n  \"0x123456\": nope\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tables.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile() should fail")
			}
		})
	}
}
