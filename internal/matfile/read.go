package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmelton/spmat/internal/sparse"
)

// Header patterns are anchored: the whole (trimmed) line must be the
// declaration, so "arrows=10" is rejected. Entry matching stays unanchored,
// which is part of the lenient-skip contract.
var (
	rowsPattern  = regexp.MustCompile(`^rows=(\d+)$`)
	colsPattern  = regexp.MustCompile(`^cols=(\d+)$`)
	entryPattern = regexp.MustCompile(`\((\d+),\s*(\d+),\s*(-?\d+)\)`)
)

// line pairs a trimmed non-blank line with its 1-based position in the
// source, for error reporting.
type line struct {
	no   int
	text string
}

// Read parses one matrix from r. Header lines are mandatory; element lines
// that do not match the triple pattern are skipped without error, as are
// triples whose coordinates fall outside the declared shape.
func Read(r io.Reader) (*sparse.Matrix, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading matrix: %w", err)
	}
	if len(lines) < 3 {
		return nil, malformed(0, "expected at least 3 non-blank lines, got %d", len(lines))
	}

	rows, err := header(lines[0], rowsPattern, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := header(lines[1], colsPattern, "cols")
	if err != nil {
		return nil, err
	}

	m, err := sparse.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, ln := range lines[2:] {
		groups := entryPattern.FindStringSubmatch(ln.text)
		if groups == nil {
			continue // lenient skip: junk element lines are not an error
		}
		row, err1 := strconv.Atoi(groups[1])
		col, err2 := strconv.Atoi(groups[2])
		val, err3 := strconv.ParseInt(groups[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue // out-of-range integers get the same lenient treatment
		}
		// Set rejects coordinates outside the declared shape; such triples
		// are dropped like any other unusable line.
		_ = m.Set(row, col, val)
	}
	return m, nil
}

// ReadFile opens path and parses it with Read. File-system failures are
// wrapped so callers can still inspect the OS cause.
func ReadFile(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening matrix file: %w", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// header parses one dimension line against its pattern.
func header(ln line, pattern *regexp.Regexp, name string) (int, error) {
	groups := pattern.FindStringSubmatch(ln.text)
	if groups == nil {
		return 0, malformed(ln.no, "expected %s=<n> header, got %q", name, ln.text)
	}
	n, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, malformed(ln.no, "%s header out of range: %q", name, groups[1])
	}
	return n, nil
}

// nonBlankLines collects trimmed non-blank lines with their positions.
func nonBlankLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		out = append(out, line{no: no, text: text})
	}
	return out, sc.Err()
}
