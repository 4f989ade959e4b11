package picker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hmatsuda/wordflip/internal/engine"
	"github.com/hmatsuda/wordflip/internal/textutil"
)

// newScreen returns an initialized screen. Swapped for a simulation screen
// in tests.
var newScreen = func() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Terminal returns the interactive selector. It owns the terminal for the
// duration of the prompt and restores it before returning, so it must not be
// used while stdout is being piped.
func Terminal() engine.Selector {
	return engine.SelectorFunc(func(line string, matches []engine.Match) (int, bool, error) {
		s, err := newScreen()
		if err != nil {
			return 0, false, fmt.Errorf("open terminal: %w", err)
		}
		defer s.Fini()
		return pickLoop(s, line, matches)
	})
}

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
)

// pickLoop drives the modal list until the user accepts or cancels.
// The returned choice is 1-based; ok is false on cancel.
func pickLoop(s tcell.Screen, line string, matches []engine.Match) (int, bool, error) {
	cursor := 0
	for {
		render(s, line, matches, cursor)
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, false, nil
			case tcell.KeyEnter:
				return cursor + 1, true, nil
			case tcell.KeyUp:
				cursor = moveCursor(cursor, -1, len(matches))
			case tcell.KeyDown:
				cursor = moveCursor(cursor, 1, len(matches))
			case tcell.KeyRune:
				switch r := ev.Rune(); {
				case r == 'q':
					return 0, false, nil
				case r == 'k':
					cursor = moveCursor(cursor, -1, len(matches))
				case r == 'j':
					cursor = moveCursor(cursor, 1, len(matches))
				case r >= '1' && r <= '9':
					n := int(r - '0')
					if n <= len(matches) {
						return n, true, nil
					}
				}
			}
		case nil:
			// Screen was finalized under us.
			return 0, false, nil
		}
	}
}

func moveCursor(cursor, delta, n int) int {
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func render(s tcell.Screen, line string, matches []engine.Match, cursor int) {
	s.Clear()
	width, height := s.Size()
	drawText(s, 0, 0, styleTitle, textutil.TruncateByWidth(textutil.Scrub(line), width, "…"))
	for i, m := range matches {
		row := i + 2
		if row >= height {
			break
		}
		style := styleDefault
		marker := "  "
		if i == cursor {
			style = styleSelected
			marker = "> "
		}
		label := fmt.Sprintf("%s%d. %s -> %s (col %d)", marker, i+1, m.Word, m.Opposite, m.Index)
		label = textutil.TruncateByWidth(label, width, "…")
		if i == cursor {
			// Pad so the reverse-video highlight spans the full row.
			label = textutil.PadRight(label, width)
		}
		drawText(s, 0, row, style, label)
	}
	hint := "enter/1-9: replace  j/k: move  esc/q: cancel"
	if len(matches)+3 < height {
		drawText(s, 0, len(matches)+3, styleDefault.Dim(true), textutil.TruncateByWidth(hint, width, ""))
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
