package fs

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"bleu/internal/domain"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 * 1024 * 1024

// ReadLines returns the lines of a UTF-8 text file without their line terminators.
// Both LF and CRLF endings are accepted. A final line without a terminator is kept.
// A line that is not valid UTF-8 fails the whole read with domain.ErrInvalidEncoding.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		if !utf8.Valid(scanner.Bytes()) {
			return nil, fmt.Errorf("%s:%d: %w", path, n, domain.ErrInvalidEncoding)
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
