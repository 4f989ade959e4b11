package engine

import "testing"

func TestFindWordInLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		word string
		want int
	}{
		{"cursor inside word", "set true value", 6, "true", 5},
		{"cursor on first char", "set true value", 5, "true", 5},
		{"cursor on last char", "set true value", 8, "true", 5},
		{"cursor one past word", "set true value", 9, "true", 0},
		{"cursor before word", "set true value", 3, "true", 0},
		{"word at line start", "true", 1, "true", 1},
		{"single char word", "a", 1, "a", 1},
		{"occurrence starts after cursor", "xx true", 2, "true", 0},
		{"embedded in larger token", "untrue", 4, "true", 3},
		{"empty word", "abc", 1, "", 0},
		{"empty line", "", 1, "true", 0},
		{"col past line end", "true", 9, "true", 0},
		{"window clamped at line start", "yes", 2, "yesyes", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findWordInLine(tt.line, tt.col, tt.word); got != tt.want {
				t.Fatalf("findWordInLine(%q, %d, %q)=%d want %d", tt.line, tt.col, tt.word, got, tt.want)
			}
		})
	}
}

// The returned offset i must satisfy i <= col and i >= col-len(word)+1, and
// the substring at i must equal the word.
func TestFindWordInLineWindowArithmetic(t *testing.T) {
	line := "yesyes"
	word := "yes"
	for col := 1; col <= len(line); col++ {
		i := findWordInLine(line, col, word)
		if i == 0 {
			continue
		}
		if i > col {
			t.Fatalf("col=%d: offset %d starts after cursor", col, i)
		}
		if i < col-len(word)+1 {
			t.Fatalf("col=%d: offset %d outside window", col, i)
		}
		if line[i-1:i-1+len(word)] != word {
			t.Fatalf("col=%d: substring at %d is %q", col, i, line[i-1:i-1+len(word)])
		}
	}
}

func TestFindWordInLineAdjacentOccurrences(t *testing.T) {
	// "yesyes": the second occurrence starts at offset 4. With the cursor on
	// column 4 the window is [2,4], which skips the first occurrence and
	// accepts the second.
	if got := findWordInLine("yesyes", 4, "yes"); got != 4 {
		t.Fatalf("col 4: got %d want 4", got)
	}
	// Column 3 still reaches back to the first occurrence.
	if got := findWordInLine("yesyes", 3, "yes"); got != 1 {
		t.Fatalf("col 3: got %d want 1", got)
	}
	// Column 6 sits on the last char of the second occurrence.
	if got := findWordInLine("yesyes", 6, "yes"); got != 4 {
		t.Fatalf("col 6: got %d want 4", got)
	}
}
