package jsonptr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsonptr-format/go-jsonptr/debug"
)

// ParseError describes a syntactic failure of pointer text. It wraps
// ErrParse and points at the offending byte offset.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	sample := strconv.Quote(e.Input[max(0, e.Offset-5):min(e.Offset+5, len(e.Input))])
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("%v: %s at offset %d: `...%s...`", ErrParse, e.Msg, e.Offset, sample)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Parse parses RFC 6901 pointer text. A leading '#' (the URI fragment
// form) is discarded; "" and "#" both give the empty pointer.
func Parse(s string) (*Pointer, error) {
	sc := &scanner{in: s}
	if strings.HasPrefix(s, "#") {
		sc.off = 1
	}
	var steps []Step
	for sc.off < len(sc.in) {
		if sc.in[sc.off] != '/' {
			return nil, sc.errf("expected '/'")
		}
		sc.off++
		step, err := sc.segment()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if debug.Parse() {
		debug.Logf("parsed %q into %d steps\n", s, len(steps))
	}
	return &Pointer{steps: steps}, nil
}

// MustParse is Parse for pointer text known to be well formed; it
// panics on error.
func MustParse(s string) *Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

type scanner struct {
	in  string
	off int
}

func (sc *scanner) errf(format string, args ...any) error {
	return &ParseError{Input: sc.in, Offset: sc.off, Msg: fmt.Sprintf(format, args...)}
}

// segmentEnds reports whether offset i sits on a segment boundary.
func (sc *scanner) segmentEnds(i int) bool {
	return i >= len(sc.in) || sc.in[i] == '/'
}

// segment classifies and decodes one segment, with sc.off just past
// the introducing '/'. Precedence: index, append marker, name.
func (sc *scanner) segment() (Step, error) {
	start := sc.off
	if sc.segmentEnds(start) {
		return Name(""), nil
	}
	switch c := sc.in[start]; {
	case c == '0':
		// only the lone digit; "007" and "0x" are names
		if sc.segmentEnds(start + 1) {
			sc.off = start + 1
			return Index(0), nil
		}
	case c >= '1' && c <= '9':
		end := start + 1
		for end < len(sc.in) && sc.in[end] >= '0' && sc.in[end] <= '9' {
			end++
		}
		if !sc.segmentEnds(end) {
			// the digit run committed this segment to an index
			sc.off = end
			return Step{}, sc.errf("unparsed characters after index")
		}
		idx, err := strconv.Atoi(sc.in[start:end])
		if err != nil {
			return Step{}, sc.errf("index out of range")
		}
		sc.off = end
		return Index(idx), nil
	case c == '-':
		if sc.segmentEnds(start + 1) {
			sc.off = start + 1
			return NewElement(), nil
		}
	}
	return sc.name()
}

// name decodes a segment character by character, resolving "~0" and
// "~1" escapes. A '~' followed by anything else is a parse error; a
// '~' ending the input stands for itself.
func (sc *scanner) name() (Step, error) {
	var b strings.Builder
	for sc.off < len(sc.in) && sc.in[sc.off] != '/' {
		c := sc.in[sc.off]
		if c != '~' {
			b.WriteByte(c)
			sc.off++
			continue
		}
		if sc.off+1 >= len(sc.in) {
			b.WriteByte('~')
			sc.off++
			continue
		}
		switch sc.in[sc.off+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return Step{}, sc.errf("invalid escape %q", sc.in[sc.off:sc.off+2])
		}
		sc.off += 2
	}
	return Name(b.String()), nil
}
