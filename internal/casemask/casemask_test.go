package casemask

import (
	"reflect"
	"testing"
)

func TestHasUpper(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"enable", false},
		{"123 -_!", false},
		{"Enable", true},
		{"enablE", true},
		{"ENABLE", true},
		{"año", false},
		{"Año", true},
	}
	for _, tt := range tests {
		if got := HasUpper(tt.in); got != tt.want {
			t.Fatalf("HasUpper(%q)=%v want %v", tt.in, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want []bool
	}{
		{"", []bool{}},
		{"Enable", []bool{true, false, false, false, false, false}},
		{"tRuE", []bool{false, true, false, true}},
		{"a1B", []bool{false, false, true}},
	}
	for _, tt := range tests {
		if got := Mask(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Mask(%q)=%v want %v", tt.in, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mask []bool
		want string
	}{
		{"empty everything", "", nil, ""},
		{"title case", "disable", []bool{true, false, false, false, false, false, false}, "Disable"},
		{"mask shorter than word", "false", []bool{true, true, true, true}, "FALSe"},
		{"mask longer than word", "no", []bool{true, false, true, true}, "No"},
		{"false entries never lowercase", "MiXed", []bool{false, false, false, false, false}, "MiXed"},
		{"non-letters pass through", "a-b", []bool{true, true, true}, "A-B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.in, tt.mask); got != tt.want {
				t.Fatalf("Apply(%q, %v)=%q want %q", tt.in, tt.mask, got, tt.want)
			}
		})
	}
}

func TestApplyMaskRoundTrip(t *testing.T) {
	for _, s := range []string{"x", "Enable", "ENABLE", "tRuE", "Año-Mix_42", "already lower"} {
		if got := Apply(s, Mask(s)); got != s {
			t.Fatalf("Apply(%q, Mask(%q))=%q, round trip broken", s, s, got)
		}
	}
}
