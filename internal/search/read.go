package search

import (
	"os"
	"unicode/utf8"

	"github.com/a2y-d5l/linefind/internal/failure"
)

// ReadText loads the whole file at path. Missing, unreadable, and non-UTF-8
// files all fail with a failure.FileRead error.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", failure.New(failure.FileRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", failure.New(failure.FileRead, path, failure.ErrInvalidText)
	}
	return string(data), nil
}
