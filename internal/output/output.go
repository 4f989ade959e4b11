// Package output renders match lists and replacement previews for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hmatsuda/wordflip/internal/engine"
	"github.com/hmatsuda/wordflip/internal/textutil"
)

// WriteMatches writes the candidate list in the requested format. format must
// already be canonical (table, tsv or json).
func WriteMatches(w io.Writer, format string, matches []engine.Match) error {
	switch format {
	case "tsv":
		return writeTSV(w, matches)
	case "json":
		return writeJSON(w, matches)
	case "table", "":
		return writeTable(w, matches)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeTable(w io.Writer, matches []engine.Match) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tWORD\tOPPOSITE\tCOL\tMASK")
	for i, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			i+1,
			textutil.Scrub(m.Word),
			textutil.Scrub(m.Opposite),
			m.Index,
			maskMark(m.UseMask),
		)
	}
	return tw.Flush()
}

func writeTSV(w io.Writer, matches []engine.Match) error {
	for i, m := range matches {
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			i+1, escapeTSV(m.Word), escapeTSV(m.Opposite), m.Index, maskMark(m.UseMask))
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, matches []engine.Match) error {
	if matches == nil {
		matches = []engine.Match{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

func maskMark(useMask bool) string {
	if useMask {
		return "yes"
	}
	return "no"
}

var tsvEscaper = strings.NewReplacer("\t", "\\t", "\n", "\\n", "\\", "\\\\")

func escapeTSV(s string) string {
	return tsvEscaper.Replace(s)
}
