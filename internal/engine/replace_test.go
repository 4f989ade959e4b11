package engine

import "testing"

func TestReplace(t *testing.T) {
	tests := []struct {
		name string
		line string
		m    Match
		want string
	}{
		{
			name: "middle of line",
			line: "set true value",
			m:    Match{Word: "true", Opposite: "false", Index: 5},
			want: "set false value",
		},
		{
			name: "whole line no mask",
			line: "ENABLE",
			m:    Match{Word: "ENABLE", Opposite: "disable", Index: 1},
			want: "disable",
		},
		{
			name: "mask restores title case",
			line: "Enable",
			m:    Match{Word: "enable", Opposite: "disable", Index: 1, UseMask: true},
			want: "Disable",
		},
		{
			name: "mask restores full caps onto longer word",
			line: "set TRUE value",
			m:    Match{Word: "true", Opposite: "false", Index: 5, UseMask: true},
			want: "set FALSe value",
		},
		{
			name: "mask from longer word onto shorter",
			line: "FALSE",
			m:    Match{Word: "false", Opposite: "true", Index: 1, UseMask: true},
			want: "TRUE",
		},
		{
			name: "line start",
			line: "yes please",
			m:    Match{Word: "yes", Opposite: "no", Index: 1},
			want: "no please",
		},
		{
			name: "line end",
			line: "please yes",
			m:    Match{Word: "yes", Opposite: "no", Index: 8},
			want: "please no",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replace(tt.line, tt.m); got != tt.want {
				t.Fatalf("Replace(%q, %+v)=%q want %q", tt.line, tt.m, got, tt.want)
			}
		})
	}
}

func TestReplaceDoesNotMutateInput(t *testing.T) {
	line := "set true value"
	_ = Replace(line, Match{Word: "true", Opposite: "false", Index: 5})
	if line != "set true value" {
		t.Fatalf("input line changed: %q", line)
	}
}
