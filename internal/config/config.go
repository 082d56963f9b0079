package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a2y-d5l/linefind/internal/failure"
)

// Version is injected at build-time with
// -ldflags="-X github.com/a2y-d5l/linefind/internal/config.Version=$(git describe --tags --always --dirty)"
var Version = "dev"

// ErrHelp is returned after usage or version text has been printed.
var ErrHelp = errors.New("help requested")

// Config captures one invocation. It is not modified after ParseArgs returns.
type Config struct {
	Query           string
	Filepath        string
	CaseInsensitive bool
	// Output modes
	LineNumbers bool
	Count       bool
	NullTerm    bool
	JSONLines   bool
	OutputJSON  bool
	OutputYAML  bool

	Strict  bool
	Verbose bool
}

type option uint8

const (
	optCaseInsensitive option = iota + 1
	optLineNumber
	optCount
	optNull
	optJSONLines
	optOutputJSON
	optOutputYAML
	optStrict
	optVerbose
	optVersion
	optHelp
)

var options = map[string]option{
	"-i":                 optCaseInsensitive,
	"--case-insensitive": optCaseInsensitive,
	"-n":                 optLineNumber,
	"--line-number":      optLineNumber,
	"-c":                 optCount,
	"--count":            optCount,
	"-0":                 optNull,
	"--null":             optNull,
	"--jsonl":            optJSONLines,
	"--output-json":      optOutputJSON,
	"--output-yaml":      optOutputYAML,
	"--strict":           optStrict,
	"--verbose":          optVerbose,
	"--version":          optVersion,
	"-h":                 optHelp,
	"--help":             optHelp,
}

const usage = `usage: linefind [flags...] <query> <filepath>

Prints every line of <filepath> that contains <query>.

flags:
  -i, --case-insensitive  ignore case when matching
  -n, --line-number       prefix each line with its 1-based line number
  -c, --count             print only the number of matching lines
  -0, --null              NUL-terminate each record (for xargs -0)
      --jsonl             output newline-delimited JSON records
      --output-json       emit one final JSON array of records
      --output-yaml       emit one final YAML sequence of records
      --strict            reject unrecognized flags
      --verbose           log diagnostics to stderr
      --version           print linefind version and exit
  -h, --help              print this help and exit
`

// ParseArgs builds a Config from the full argument list, program name
// included. Tokens starting with "-" are flags, everything else is
// positional; the positional at index 1 is the query and the one at index 2
// the file path. Pass stdout so that --help is POSIX-friendly.
func ParseArgs(args []string, stdout io.Writer) (*Config, error) {
	flags, positional := partition(args)

	set := make(map[option]bool, len(flags))
	var unknown []string
	for _, f := range flags {
		if o, ok := options[f]; ok {
			set[o] = true
			continue
		}
		unknown = append(unknown, f)
	}

	if set[optHelp] {
		_, _ = io.WriteString(stdout, usage)
		return nil, ErrHelp
	}
	if set[optVersion] {
		_, _ = fmt.Fprintf(stdout, "linefind %s\n", Version)
		return nil, ErrHelp
	}

	if len(args) < 3 || len(positional) < 3 {
		return nil, failure.New(failure.InsufficientArguments, "want <query> <filepath>", nil)
	}

	if set[optStrict] && len(unknown) > 0 {
		return nil, failure.New(failure.UnknownFlag, unknown[0], nil)
	}

	if err := checkExclusive(set); err != nil {
		return nil, err
	}

	return &Config{
		Query:           positional[1],
		Filepath:        positional[2],
		CaseInsensitive: set[optCaseInsensitive],
		LineNumbers:     set[optLineNumber],
		Count:           set[optCount],
		NullTerm:        set[optNull],
		JSONLines:       set[optJSONLines],
		OutputJSON:      set[optOutputJSON],
		OutputYAML:      set[optOutputYAML],
		Strict:          set[optStrict],
		Verbose:         set[optVerbose],
	}, nil
}

// --- helpers -----------------------------------------------------------------

// partition splits args into flag-like and positional tokens, keeping the
// relative order inside each bucket.
func partition(args []string) (flags, positional []string) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		} else {
			positional = append(positional, a)
		}
	}
	return flags, positional
}

var (
	recordModes     = []option{optNull, optJSONLines, optOutputJSON, optOutputYAML}
	structuredModes = []option{optJSONLines, optOutputJSON, optOutputYAML}
)

func checkExclusive(set map[option]bool) error {
	if picked := present(set, recordModes); len(picked) > 1 {
		return failure.New(failure.ConflictingFlags, strings.Join(picked, " "), nil)
	}
	if set[optCount] {
		if picked := present(set, structuredModes); len(picked) > 0 {
			return failure.New(failure.ConflictingFlags, "--count "+picked[0], nil)
		}
	}
	return nil
}

func present(set map[option]bool, opts []option) []string {
	var names []string
	for _, o := range opts {
		if set[o] {
			names = append(names, name(o))
		}
	}
	return names
}

// name returns the longest spelling of o.
func name(o option) string {
	var best string
	for tok, v := range options {
		if v == o && len(tok) > len(best) {
			best = tok
		}
	}
	return best
}
