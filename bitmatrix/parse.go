package bitmatrix

import "fmt"

// Parse reads non-empty, newline-separated lines of c0/c1 characters into a
// BitMatrix. Every non-empty line must have the same length; blank lines are
// skipped. The leftmost character of a line maps to the MSB of that row's
// first word, matching Format so that Parse(Format(m)) == m.
func Parse(s string, c0, c1 byte) (*BitMatrix, error) {
	lines := splitLines(s)
	width := -1
	for _, line := range lines {
		if width == -1 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("%w: want %d, got %d", ErrInconsistentLineLength, width, len(line))
		}
	}
	if width == -1 {
		width = 0
	}
	height := len(lines)
	bm := New(width, height)
	w := bm.BitWriter(0, 0)
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case c1:
				w.Accept(true)
			case c0:
				w.Accept(false)
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnexpectedCharacter, line[i])
			}
		}
	}
	w.Flush()
	return bm, nil
}

// splitLines splits s on '\n', trims a trailing '\r' from each line (so
// CRLF input parses the same as LF input), and drops blank lines.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			if len(line) > 0 {
				lines = append(lines, line)
			}
			start = i + 1
		}
	}
	return lines
}
