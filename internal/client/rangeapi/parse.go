package rangeapi

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atinyakov/pwncheck/internal/models"
)

var errNegativeCount = errors.New("negative count")

// ParseRange decodes a range response body into candidates, in the order
// received. Lines may end in CRLF. Blank lines are skipped; any other line
// that does not split into SUFFIX:COUNT fails the whole body.
func ParseRange(body []byte) ([]models.Candidate, error) {
	var out []models.Candidate

	scanner := bufio.NewScanner(bytes.NewReader(body))
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		suffix, countStr, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Line: n, Text: line}
		}
		count, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}
		if count < 0 {
			return nil, &ParseError{Line: n, Text: line, Err: errNegativeCount}
		}
		out = append(out, models.Candidate{Suffix: suffix, Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read range body: %w", err)
	}
	return out, nil
}
