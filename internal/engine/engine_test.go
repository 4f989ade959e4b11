package engine

import (
	"errors"
	"testing"
)

func pickNone(line string, matches []Match) (int, bool, error) { return 0, false, nil }

func pickIndex(n int) SelectorFunc {
	return func(line string, matches []Match) (int, bool, error) { return n, true, nil }
}

func TestRunSingleMatchAutoSelected(t *testing.T) {
	opts := Options{Pairs: map[string]string{"true": "false"}}
	// The selector must not be consulted for a single match; a cancelling
	// selector proves it.
	out, err := Run("set true value", 6, opts, SelectorFunc(pickNone))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusReplaced {
		t.Fatalf("status = %v", out.Status)
	}
	if out.NewLine != "set false value" {
		t.Fatalf("NewLine = %q", out.NewLine)
	}
	if out.Summary != "true -> false" {
		t.Fatalf("Summary = %q", out.Summary)
	}
	if out.Match == nil || out.Match.Index != 5 {
		t.Fatalf("Match = %+v", out.Match)
	}
}

func TestRunNoMatch(t *testing.T) {
	opts := Options{Pairs: map[string]string{"true": "false"}}
	out, err := Run("nothing here", 3, opts, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusNoMatch {
		t.Fatalf("status = %v", out.Status)
	}
	if out.NewLine != "" || out.Match != nil {
		t.Fatalf("no-match outcome carries replacement data: %+v", out)
	}
}

func TestRunMultipleMatchesUsesSelector(t *testing.T) {
	opts := Options{Pairs: map[string]string{"ab": "cd", "aba": "xyz"}}
	out, err := Run("aba", 2, opts, pickIndex(2))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusReplaced {
		t.Fatalf("status = %v", out.Status)
	}
	// Ranked order is ab, aba; choice 2 picks aba.
	if out.Match.Word != "aba" || out.NewLine != "xyz" {
		t.Fatalf("picked %+v, NewLine %q", out.Match, out.NewLine)
	}
}

func TestRunCancelled(t *testing.T) {
	opts := Options{Pairs: map[string]string{"ab": "cd", "aba": "xyz"}}
	out, err := Run("aba", 2, opts, SelectorFunc(pickNone))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusCancelled {
		t.Fatalf("status = %v", out.Status)
	}
	if len(out.Matches) != 2 {
		t.Fatalf("cancelled outcome should keep the match list, got %+v", out.Matches)
	}
}

func TestRunSelectorErrors(t *testing.T) {
	opts := Options{Pairs: map[string]string{"ab": "cd", "aba": "xyz"}}
	boom := errors.New("prompt failed")
	_, err := Run("aba", 2, opts, SelectorFunc(func(string, []Match) (int, bool, error) {
		return 0, false, boom
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}

	if _, err := Run("aba", 2, opts, pickIndex(7)); err == nil {
		t.Fatal("expected out-of-range selection error")
	}

	if _, err := Run("aba", 2, opts, nil); err == nil {
		t.Fatal("expected error when several matches but no selector")
	}
}

func TestRunLengthChangingLowerStaysTotal(t *testing.T) {
	// Lines where ToLower changes byte length must still replace cleanly:
	// the growing U+023A case used to push the offset past the line and
	// panic in Replace, the shrinking U+0130 case used to split the leading
	// rune. Both now match verbatim on the original line.
	opts := Options{Pairs: map[string]string{"yes": "no"}, CaseMask: true}

	out, err := Run("Ⱥyes", 4, opts, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusReplaced || out.NewLine != "Ⱥno" {
		t.Fatalf("status = %v, NewLine = %q", out.Status, out.NewLine)
	}

	out, err = Run("İyes", 2, opts, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusNoMatch {
		t.Fatalf("offset from the shrunken lowered line must not match: %+v", out)
	}
}

func TestRunCaseMaskEndToEnd(t *testing.T) {
	opts := Options{Pairs: map[string]string{"enable": "disable"}, CaseMask: true}
	out, err := Run("Enable", 1, opts, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.NewLine != "Disable" {
		t.Fatalf("NewLine = %q want %q", out.NewLine, "Disable")
	}
	if !out.Match.UseMask {
		t.Fatal("expected UseMask on match")
	}
}
