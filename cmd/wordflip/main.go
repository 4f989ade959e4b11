package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hmatsuda/wordflip/internal/config"
	"github.com/hmatsuda/wordflip/internal/engine"
	engineopts "github.com/hmatsuda/wordflip/internal/engine/opts"
	"github.com/hmatsuda/wordflip/internal/output"
	"github.com/hmatsuda/wordflip/internal/picker"
	"github.com/hmatsuda/wordflip/internal/termcolor"
)

// Exit codes are part of the editor-integration contract: hosts distinguish
// "nothing under the cursor" and "user backed out" from real failures.
const (
	exitOK        = 0
	exitError     = 1
	exitNoMatch   = 2
	exitCancelled = 3
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	os.Exit(flipCmd(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// multiFlag collects repeated -pair values.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func flipCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wordflip", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var pairs multiFlag
	var (
		line         = fs.String("line", "", "line text (default: first line of stdin)")
		col          = fs.Int("col", 1, "1-based cursor column as a byte offset")
		configPath   = fs.String("config", "", "config file (default: search .wordflip.*)")
		pairsReplace = fs.Bool("pairs-replace", false, "drop built-in and config pairs, keep only -pair")
		caseMask     = fs.Bool("case-mask", true, "restore original casing for all-lowercase pairs")
		maxLineLen   = fs.Int("max-line-length", engineopts.DefaultMaxLineLength, "reject longer lines (0=unlimited)")
		sel          = fs.String("select", "", "auto|first|prompt|N")
		list         = fs.Bool("list", false, "list candidate matches instead of replacing")
		outputFmt    = fs.String("output", "", "table|tsv|json (with -list)")
		diff         = fs.Bool("diff", false, "print a replacement preview to stderr")
		color        = fs.String("color", "", "auto|always|never")
		quiet        = fs.Bool("quiet", false, "suppress stderr notices")
	)
	fs.Var(&pairs, "pair", "extra word=opposite pair (repeatable, comma-separated ok)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	lineText := *line
	if !set["line"] {
		text, err := readLine(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "wordflip: read stdin: %v\n", err)
			return exitError
		}
		lineText = text
	}

	engineSettings, uiSettings, err := resolveSettings(*configPath, func(fc *config.EngineConfig, uc *config.UIConfig) error {
		if len(pairs) > 0 {
			pm, err := engineopts.ParsePairs(pairs)
			if err != nil {
				return err
			}
			fc.Pairs = &pm
		}
		if set["pairs-replace"] {
			fc.PairsReplace = pairsReplace
		}
		if set["case-mask"] {
			fc.CaseMask = caseMask
		}
		if set["max-line-length"] {
			fc.MaxLineLength = maxLineLen
		}
		if set["select"] {
			uc.Select = sel
		}
		if set["output"] {
			uc.Output = outputFmt
		}
		if set["diff"] {
			uc.Diff = diff
		}
		if set["color"] {
			uc.Color = color
		}
		if *quiet {
			off := false
			uc.NotifyFound = &off
			uc.NotifyNotFound = &off
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "wordflip: %v\n", err)
		return exitError
	}

	options := engineSettings.ToOptions()
	if err := engineopts.NormalizeAndValidate(&options); err != nil {
		fmt.Fprintf(stderr, "wordflip: %v\n", err)
		return exitError
	}
	if err := engineopts.CheckLine(lineText, *col, options); err != nil {
		fmt.Fprintf(stderr, "wordflip: %v\n", err)
		return exitError
	}

	mode, err := termcolor.ParseMode(uiSettings.Color)
	if err != nil {
		fmt.Fprintf(stderr, "wordflip: %v\n", err)
		return exitError
	}
	colorOn := termcolor.Enabled(mode, fileOf(stderr), os.Getenv)

	if *list {
		matches := engine.FindMatches(lineText, *col, options.Pairs, options.CaseMask)
		if err := output.WriteMatches(stdout, uiSettings.Output, matches); err != nil {
			fmt.Fprintf(stderr, "wordflip: %v\n", err)
			return exitError
		}
		return exitOK
	}

	selector, err := picker.ForSpec(uiSettings.Select, isTTY(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "wordflip: %v\n", err)
		return exitError
	}

	outcome, err := engine.Run(lineText, *col, options, selector)
	if err != nil {
		fmt.Fprintln(stderr, termcolor.Error.Apply(colorOn, "wordflip: "+err.Error()))
		return exitError
	}

	switch outcome.Status {
	case engine.StatusReplaced:
		fmt.Fprintln(stdout, outcome.NewLine)
		if uiSettings.Diff {
			fmt.Fprintln(stderr, output.DiffPreview(lineText, outcome.NewLine, colorOn))
		}
		if uiSettings.NotifyFound {
			notice := termcolor.Found.Apply(colorOn, "replaced:") + " " +
				termcolor.Emphasis.Apply(colorOn, outcome.Summary)
			fmt.Fprintln(stderr, notice)
		}
		return exitOK
	case engine.StatusCancelled:
		if uiSettings.NotifyNotFound {
			fmt.Fprintln(stderr, "cancelled")
		}
		return exitCancelled
	default:
		if uiSettings.NotifyNotFound {
			fmt.Fprintln(stderr, termcolor.NotFound.Apply(colorOn, "no opposite found under cursor"))
		}
		return exitNoMatch
	}
}

// resolveSettings layers defaults, the config file, environment variables and
// explicit flags, later layers winning.
func resolveSettings(configFlag string, applyFlags func(*config.EngineConfig, *config.UIConfig) error) (config.EngineSettings, config.UISettings, error) {
	engineBase := config.DefaultEngineSettings()
	uiBase := config.DefaultUISettings()

	var engineLayers []config.EngineConfig
	var uiLayers []config.UIConfig

	explicit := configFlag
	if explicit == "" {
		explicit = os.Getenv("WORDFLIP_CONFIG")
	}
	path, _, err := config.Find(".", explicit, os.Getenv("XDG_CONFIG_HOME"), homeDir())
	if err != nil {
		return engineBase, uiBase, err
	}
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return engineBase, uiBase, err
		}
		engineLayers = append(engineLayers, fileCfg.Engine)
		uiLayers = append(uiLayers, fileCfg.UI)
	}

	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return engineBase, uiBase, err
	}
	engineLayers = append(engineLayers, envCfg.Engine)
	uiLayers = append(uiLayers, envCfg.UI)

	var flagEngine config.EngineConfig
	var flagUI config.UIConfig
	if err := applyFlags(&flagEngine, &flagUI); err != nil {
		return engineBase, uiBase, err
	}
	engineLayers = append(engineLayers, flagEngine)
	uiLayers = append(uiLayers, flagUI)

	engineSettings := config.MergeEngine(engineBase, engineLayers...)
	uiSettings, err := config.NormalizeUI(config.MergeUI(uiBase, uiLayers...))
	if err != nil {
		return engineSettings, uiSettings, err
	}
	return engineSettings, uiSettings, nil
}

// readLine reads the first line from stdin, tolerating a missing trailing
// newline and CRLF input.
func readLine(r io.Reader) (string, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	return line, nil
}

func fileOf(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

func isTTY(w io.Writer) bool {
	f := fileOf(w)
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func homeDir() string {
	h, _ := os.UserHomeDir()
	return h
}
