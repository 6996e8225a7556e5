package vectors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kpfaulkner/gfxmaths/util"
)

var (
	ErrMissingComparison = errors.New("missing '=' or '~' before expected value")
	ErrMissingExpected   = errors.New("missing expected value")
	ErrMissingOperation  = errors.New("missing operation")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrArity             = errors.New("wrong number of arguments")
	ErrApproximatePoint  = errors.New("point operations only support exact comparison")
)

type Comparison int

const (
	Exact Comparison = iota
	Approximate
)

func (c Comparison) String() string {
	return util.IfThenElse(c == Approximate, "~", "=")
}

// Vector is a single reference case: an operation, its arguments as written
// and the value it must produce.
type Vector struct {
	Line     int
	Op       string
	Args     []string
	Compare  Comparison
	Expected string
}

func (v Vector) String() string {
	return fmt.Sprintf("%s %s %s %s", v.Op, strings.Join(v.Args, " "), v.Compare, v.Expected)
}

// Parse reads one vector per line. Blank lines and lines starting with # are
// skipped. Errors carry the line number they occurred on.
func Parse(r io.Reader) ([]Vector, error) {
	var vs []Vector
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		v.Line = lineNo
		vs = append(vs, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vectors: %w", err)
	}
	return vs, nil
}

func parseLine(line string) (Vector, error) {
	fields := strings.Fields(line)

	marker := -1
	for i, f := range fields {
		if f == "=" || f == "~" {
			marker = i
			break
		}
	}
	if marker == -1 {
		return Vector{}, ErrMissingComparison
	}
	if marker == 0 {
		return Vector{}, ErrMissingOperation
	}
	if marker == len(fields)-1 {
		return Vector{}, ErrMissingExpected
	}

	v := Vector{
		Op:       strings.ToLower(fields[0]),
		Args:     fields[1:marker],
		Expected: strings.Join(fields[marker+1:], " "),
	}
	if fields[marker] == "~" {
		v.Compare = Approximate
	}
	return v, nil
}
