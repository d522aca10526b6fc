// Package vocab reads word lists, one entry per line.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns the entries in r. Surrounding whitespace is trimmed, and blank lines
// and lines starting with '#' are skipped.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	return words, nil
}

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
