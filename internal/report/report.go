// Package report renders matched lines in the output mode a user picked.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Format selects how records are written.
type Format uint8

const (
	Plain     Format = iota // one line per record, '\n' terminated
	Null                    // one line per record, NUL terminated
	JSONLines               // one JSON object per line
	JSON                    // single indented JSON array
	YAML                    // single YAML sequence
)

// Options controls Write.
type Options struct {
	Format Format
	// LineNumbers prefixes Plain and Null records with "N:".
	LineNumbers bool
	// Count replaces the records with their number.
	Count bool
}

// Record is one matching line.
type Record struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Write renders records to out in file order.
func Write(out io.Writer, opts Options, records []Record) error {
	if opts.Count {
		return put(out, opts, strconv.Itoa(len(records)))
	}

	switch opts.Format {
	case JSONLines:
		enc := json.NewEncoder(out)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode record %d: %w", r.Line, err)
			}
		}
		return nil
	case JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(nonNil(records))
	case YAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(records)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	for _, r := range records {
		text := r.Text
		if opts.LineNumbers {
			text = strconv.Itoa(r.Line) + ":" + text
		}
		if err := put(out, opts, text); err != nil {
			return err
		}
	}
	return nil
}

// --- helpers -----------------------------------------------------------------

// put writes one record terminated the way opts asks.
func put(out io.Writer, opts Options, record string) error {
	term := "\n"
	if opts.Format == Null {
		term = "\x00"
	}
	if _, err := io.WriteString(out, record+term); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// nonNil makes empty results encode as [] rather than null.
func nonNil(records []Record) []Record {
	if records == nil {
		return []Record{}
	}
	return records
}
