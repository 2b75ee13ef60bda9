package jsonptr

import (
	"fmt"
	"slices"
	"strings"
)

// Pointer locates a value inside a tree-shaped document, per RFC 6901.
// The zero value is the empty pointer, which refers to the document
// root. A Pointer changes only through its explicit mutators and is
// safe to share between any number of concurrent read traversals.
type Pointer struct {
	steps []Step
}

// FromSteps makes a pointer from an ordered step sequence. The slice
// is copied.
func FromSteps(steps []Step) *Pointer {
	return &Pointer{steps: slices.Clone(steps)}
}

// Steps returns a copy of the pointer's step sequence.
func (p *Pointer) Steps() []Step {
	return slices.Clone(p.steps)
}

// Len reports the number of steps.
func (p *Pointer) Len() int {
	return len(p.steps)
}

// Push appends a step and returns p for chaining.
func (p *Pointer) Push(s Step) *Pointer {
	p.steps = append(p.steps, s)
	return p
}

// Pop removes and returns the last step, reporting false on an empty
// pointer.
func (p *Pointer) Pop() (Step, bool) {
	if len(p.steps) == 0 {
		return Step{}, false
	}
	s := p.steps[len(p.steps)-1]
	p.steps = p.steps[:len(p.steps)-1]
	return s, true
}

// Insert places s at position i, shifting later steps. Positions
// outside [0, Len()] give ErrIndexOutOfBounds and leave p unchanged.
func (p *Pointer) Insert(i int, s Step) error {
	if i < 0 || i > len(p.steps) {
		return fmt.Errorf("%w: insert at %d of %d steps", ErrIndexOutOfBounds, i, len(p.steps))
	}
	p.steps = slices.Insert(p.steps, i, s)
	return nil
}

// Remove deletes and returns the step at position i. Positions outside
// [0, Len()) give ErrIndexOutOfBounds and leave p unchanged.
func (p *Pointer) Remove(i int) (Step, error) {
	if i < 0 || i >= len(p.steps) {
		return Step{}, fmt.Errorf("%w: remove at %d of %d steps", ErrIndexOutOfBounds, i, len(p.steps))
	}
	s := p.steps[i]
	p.steps = slices.Delete(p.steps, i, i+1)
	return s, nil
}

// String re-encodes the pointer in RFC 6901 text form. The empty
// pointer encodes as "".
func (p *Pointer) String() string {
	var b strings.Builder
	for _, s := range p.steps {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Traverse walks doc and reports the location this pointer refers to,
// or nil when it refers to nothing.
func (p *Pointer) Traverse(doc any) *Ref {
	return traverse(doc, p.steps)
}

// TraverseMut is like Traverse but yields a writable reference. The
// caller must hold exclusive access to *doc for the duration of the
// call and for as long as it writes through the result.
func (p *Pointer) TraverseMut(doc *any) *MutRef {
	return traverseMut(rootSlot{doc}, p.steps)
}

// Find directly exposes the existing value this pointer refers to,
// if any. Append positions report false.
func (p *Pointer) Find(doc any) (any, bool) {
	ref := p.Traverse(doc)
	if ref == nil || ref.Kind != ExistingRef {
		return nil, false
	}
	return ref.Value, true
}
