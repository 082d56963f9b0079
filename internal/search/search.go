// Package search finds the lines of a text file that contain a query.
package search

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/a2y-d5l/linefind/internal/config"
	"github.com/a2y-d5l/linefind/internal/ctxlog"
	"github.com/a2y-d5l/linefind/internal/report"
)

// Match is a line that satisfied the query. Text is the line exactly as it
// appears in the file; Line is its 1-based position.
type Match struct {
	Line int
	Text string
}

// Run reads cfg.Filepath, scans it for cfg.Query, and writes the matches to
// out. Finding nothing is not an error.
func Run(ctx context.Context, out io.Writer, cfg *config.Config) error {
	log := ctxlog.FromContext(ctx)

	contents, err := ReadText(cfg.Filepath)
	if err != nil {
		return err
	}
	log.Debug("read file", "path", cfg.Filepath, "bytes", len(contents))

	matches := Search(cfg.Query, contents, cfg.CaseInsensitive)
	log.Debug("scan complete",
		"query", cfg.Query,
		"case_insensitive", cfg.CaseInsensitive,
		"matches", len(matches))

	records := make([]report.Record, len(matches))
	for i, m := range matches {
		records[i] = report.Record(m)
	}
	return report.Write(out, outputOptions(cfg), records)
}

// Search returns the lines of contents containing query, in file order.
// With caseInsensitive set both sides are lowercased before comparing.
func Search(query, contents string, caseInsensitive bool) []Match {
	contains := strings.Contains
	if caseInsensitive {
		query = strings.ToLower(query)
		contains = func(line, q string) bool {
			return strings.Contains(strings.ToLower(line), q)
		}
	}

	var matches []Match
	for i, line := range Lines(contents) {
		if contains(line, query) {
			matches = append(matches, Match{Line: i + 1, Text: line})
		}
	}
	return matches
}

// Lines splits contents on '\n', dropping a trailing '\r' from each line. A
// final line without a terminator is kept; a final terminator does not
// produce an extra empty line.
func Lines(contents string) []string {
	scanner := bufio.NewScanner(strings.NewReader(contents))
	// A line can never be longer than the whole input.
	scanner.Buffer(make([]byte, 0, 4096), len(contents)+1)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// --- helpers -----------------------------------------------------------------

func outputOptions(cfg *config.Config) report.Options {
	opts := report.Options{
		LineNumbers: cfg.LineNumbers,
		Count:       cfg.Count,
	}
	switch {
	case cfg.JSONLines:
		opts.Format = report.JSONLines
	case cfg.OutputJSON:
		opts.Format = report.JSON
	case cfg.OutputYAML:
		opts.Format = report.YAML
	case cfg.NullTerm:
		opts.Format = report.Null
	}
	return opts
}
