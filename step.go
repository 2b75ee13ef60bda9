package jsonptr

import (
	"strconv"
	"strings"
)

// StepType discriminates the variants of a reference token.
type StepType int

const (
	NameStep StepType = iota
	IndexStep
	NewElementStep
)

func (t StepType) String() string {
	s, ok := map[StepType]string{
		NameStep:       "Name",
		IndexStep:      "Index",
		NewElementStep: "NewElement",
	}[t]
	if ok {
		return s
	}
	return "<unknown step type>"
}

// Step is a single reference token of a pointer: an object key, an
// array index, or the "-" append marker.
type Step struct {
	Type  StepType
	Name  string // valid when Type == NameStep
	Index int    // valid when Type == IndexStep
}

// Name makes an object-key step. The key may be empty.
func Name(name string) Step {
	return Step{Type: NameStep, Name: name}
}

// Index makes an array-index step.
func Index(i int) Step {
	return Step{Type: IndexStep, Index: i}
}

// NewElement makes the append-marker step. It resolves only as the
// last step of a pointer, against an array.
func NewElement() Step {
	return Step{Type: NewElementStep}
}

var segmentEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// String encodes the step as one RFC 6901 segment, re-escaping "~"
// and "/" in names.
func (s Step) String() string {
	switch s.Type {
	case NameStep:
		return segmentEscaper.Replace(s.Name)
	case IndexStep:
		return strconv.Itoa(s.Index)
	case NewElementStep:
		return "-"
	default:
		panic("step type")
	}
}
