// Package corpus reads whitespace-delimited words out of dictionary and
// training files.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength bounds a single line of input. Training text can have very
// long lines (whole paragraphs), so this is well above bufio's default.
const maxLineLength = 4 * 1024 * 1024

// ForEachWord calls fn for every whitespace-separated token in r, in order.
// Tokens are passed through untouched; callers decide what a letter is.
func ForEachWord(r io.Reader, fn func(word string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			fn(word)
		}
	}
	return scanner.Err()
}

// ForEachFileWord walks every file in paths in order. All files are opened
// before any word is emitted, so a missing file never results in a
// partially consumed corpus.
func ForEachFileWord(paths []string, fn func(word string)) error {
	files := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("opening corpus: %w", err)
		}
		files = append(files, f)
	}
	for i, f := range files {
		if err := ForEachWord(f, fn); err != nil {
			return fmt.Errorf("reading %s: %w", paths[i], err)
		}
	}
	return nil
}

// ReadWords returns every token in the file at path.
func ReadWords(path string) ([]string, error) {
	words := []string{}
	err := ForEachFileWord([]string{path}, func(w string) {
		words = append(words, w)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}
