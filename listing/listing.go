// Package listing reads assembly source lines and writes assembled output.
package listing

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines reads all lines of the input, trimmed of surrounding whitespace.
// Empty lines are kept, so that line numbers match the input.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	if err = scanner.Err(); err != nil {
		err = errors.Wrap(err, "read")
		lines = nil
	}

	return
}

// Write writes the lines to the output, one per line.
// Nothing is written until all lines are formatted.
func Write(output io.Writer, lines []string) (err error) {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	_, err = buf.WriteTo(output)
	if err != nil {
		err = errors.Wrap(err, "write")
	}

	return
}
