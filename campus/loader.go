package campus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// edgeLine matches `"<src>" -> "<dst>" [seconds=<w>];`. Quotes around the
// endpoints are optional; surrounding whitespace is ignored.
var edgeLine = regexp.MustCompile(`^\s*"?([^"]*?)"?\s*->\s*"?([^"]*?)"?\s*\[\s*seconds\s*=\s*([^\]\s]+)\s*\]\s*;?\s*$`)

// LoadGraphData replaces the graph with the contents of the DOT file at path.
func (b *Backend) LoadGraphData(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("campus: open graph file: %w", err)
	}
	defer f.Close()

	if err := b.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Load replaces the graph with the edge statements read from r.
//
// Every existing node is removed first, so a failed load leaves the graph
// holding whatever was parsed before the failing line.
//
// Errors:
//   - ErrMalformedLine: a line is neither structural nor an edge statement,
//     or its weight is not a number.
//   - any read or Store error, wrapped.
func (b *Backend) Load(r io.Reader) error {
	for _, label := range b.store.Nodes() {
		b.store.RemoveNode(label)
	}

	sc := bufio.NewScanner(r)
	lineNo, edges := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if skipLine(line) {
			continue
		}

		src, dst, w, err := parseEdgeLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := b.store.InsertNode(src); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := b.store.InsertNode(dst); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := b.store.InsertEdge(src, dst, w); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		edges++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("campus: read graph: %w", err)
	}

	b.logger.Info("graph loaded",
		"locations", len(b.store.Nodes()),
		"edges", edges,
	)

	return nil
}

// skipLine reports blank lines and DOT structure that carries no edge.
func skipLine(line string) bool {
	switch {
	case line == "", line == "{", line == "}":
		return true
	case strings.HasPrefix(line, "digraph"), strings.HasPrefix(line, "//"):
		return true
	}

	return false
}

func parseEdgeLine(line string) (string, string, float64, error) {
	m := edgeLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	src, dst := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if src == "" || dst == "" {
		return "", "", 0, fmt.Errorf("%w: empty location in %q", ErrMalformedLine, line)
	}
	w, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: weight %q", ErrMalformedLine, m[3])
	}

	return src, dst, w, nil
}
