// Package passfile reads password lists, one password per line.
package passfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// maxLineSize bounds a single password line.
const maxLineSize = 1 << 20

// Read opens path and parses it with Parse.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open password file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse returns one entry per line with trailing whitespace removed.
// Empty lines are kept as empty passwords.
func Parse(r io.Reader) ([]string, error) {
	var out []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		out = append(out, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read password file: %w", err)
	}
	return out, nil
}
