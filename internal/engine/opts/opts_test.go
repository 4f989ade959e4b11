package opts

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseSelect(t *testing.T) {
	tests := []struct {
		raw     string
		want    SelectSpec
		wantErr bool
	}{
		{"", SelectSpec{Strategy: "auto"}, false},
		{"auto", SelectSpec{Strategy: "auto"}, false},
		{"first", SelectSpec{Strategy: "first"}, false},
		{"PROMPT", SelectSpec{Strategy: "prompt"}, false},
		{"3", SelectSpec{Strategy: "index", Index: 3}, false},
		{"0", SelectSpec{}, true},
		{"-1", SelectSpec{}, true},
		{"sometimes", SelectSpec{}, true},
	}
	for _, tt := range tests {
		got, err := ParseSelect(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseSelect(%q): expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSelect(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSelect(%q)=%+v want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs([]string{"true=false, yes=no", "on=off"})
	if err != nil {
		t.Fatalf("ParsePairs: %v", err)
	}
	want := map[string]string{"true": "false", "yes": "no", "on": "off"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	for _, bad := range []string{"nopairs", "=x", "x=", " = "} {
		if _, err := ParsePairs([]string{bad}); err == nil {
			t.Fatalf("ParsePairs(%q): expected error", bad)
		}
	}

	if got, err := ParsePairs(nil); err != nil || got != nil {
		t.Fatalf("ParsePairs(nil) = %v, %v", got, err)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults()
	o.Pairs = map[string]string{" true ": " false "}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate: %v", err)
	}
	if o.Pairs["true"] != "false" {
		t.Fatalf("pairs not trimmed: %v", o.Pairs)
	}

	bad := Defaults()
	bad.Pairs = map[string]string{"same": "same"}
	if err := NormalizeAndValidate(&bad); err == nil {
		t.Fatal("expected error for self-opposite pair")
	}

	empty := Defaults()
	empty.Pairs = map[string]string{"": "x"}
	if err := NormalizeAndValidate(&empty); err == nil {
		t.Fatal("expected error for empty word")
	}

	neg := Defaults()
	neg.MaxLineLength = -1
	if err := NormalizeAndValidate(&neg); err == nil {
		t.Fatal("expected error for negative max_line_length")
	}
}

func TestCheckLine(t *testing.T) {
	o := Defaults()
	o.MaxLineLength = 8
	if err := CheckLine("12345678", 3, o); err != nil {
		t.Fatalf("CheckLine at limit: %v", err)
	}
	if err := CheckLine("123456789", 3, o); err == nil {
		t.Fatal("expected error past limit")
	}
	if err := CheckLine("ok", 0, o); err == nil {
		t.Fatal("expected error for column 0")
	}
	o.MaxLineLength = 0
	if err := CheckLine(string(make([]byte, 1<<16)), 1, o); err != nil {
		t.Fatalf("unlimited length rejected: %v", err)
	}
}

func TestApplyWebQueryToOptions(t *testing.T) {
	def := Defaults()
	q := url.Values{
		"case_mask":       []string{"0"},
		"max_line_length": []string{"120"},
		"pairs_replace":   []string{"1"},
		"pair":            []string{"foo=bar,up=down"},
	}
	got, err := ApplyWebQueryToOptions(def, q)
	if err != nil {
		t.Fatalf("ApplyWebQueryToOptions: %v", err)
	}
	if got.CaseMask {
		t.Fatal("case_mask=0 not applied")
	}
	if got.MaxLineLength != 120 {
		t.Fatalf("MaxLineLength = %d", got.MaxLineLength)
	}
	want := map[string]string{"foo": "bar", "up": "down"}
	if !reflect.DeepEqual(got.Pairs, want) {
		t.Fatalf("pairs = %v want %v", got.Pairs, want)
	}
	// The defaults must not have been mutated.
	if len(def.Pairs) == 2 {
		t.Fatal("defaults were mutated by query application")
	}

	if _, err := ApplyWebQueryToOptions(def, url.Values{"case_mask": []string{"maybe"}}); err == nil {
		t.Fatal("expected error for bad case_mask")
	}
	if _, err := ApplyWebQueryToOptions(def, url.Values{"pair": []string{"broken"}}); err == nil {
		t.Fatal("expected error for bad pair")
	}
}

func TestNormalizeOutput(t *testing.T) {
	for raw, want := range map[string]string{"": "table", "Table": "table", "TSV": "tsv", "json": "json"} {
		got, err := NormalizeOutput(raw)
		if err != nil || got != want {
			t.Fatalf("NormalizeOutput(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := NormalizeOutput("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"1", "true", "YES", "on"} {
		v, err := ParseBool(raw, "flag")
		if err != nil || !v {
			t.Fatalf("ParseBool(%q) = %v, %v", raw, v, err)
		}
	}
	for _, raw := range []string{"0", "false", "No", "off"} {
		v, err := ParseBool(raw, "flag")
		if err != nil || v {
			t.Fatalf("ParseBool(%q) = %v, %v", raw, v, err)
		}
	}
	if _, err := ParseBool("2", "flag"); err == nil {
		t.Fatal("expected error")
	}
}
