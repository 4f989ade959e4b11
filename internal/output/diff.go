package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffPreview renders a character diff between the original and replaced
// line. With color enabled it uses the standard red/green SGR rendering;
// otherwise deletions and insertions are bracketed as [-old-] and {+new+}.
func DiffPreview(oldLine, newLine string, color bool) string {
	if oldLine == newLine {
		return oldLine
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldLine, newLine, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if color {
		return dmp.DiffPrettyText(diffs)
	}
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
