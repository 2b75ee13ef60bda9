package jsonptr

import "github.com/jsonptr-format/go-jsonptr/debug"

// RefKind discriminates traversal results.
type RefKind int

const (
	// ExistingRef marks a value the pointer located in the document.
	ExistingRef RefKind = iota
	// NewUnderRef marks a valid append position: the pointer ends in
	// the "-" marker under an existing array.
	NewUnderRef
)

func (k RefKind) String() string {
	s, ok := map[RefKind]string{
		ExistingRef: "Existing",
		NewUnderRef: "NewUnder",
	}[k]
	if ok {
		return s
	}
	return "<unknown ref kind>"
}

// Ref is what a read traversal ends up at.
type Ref struct {
	Kind RefKind

	// Value is the located value, when Kind is ExistingRef.
	Value any

	// Parent and Index describe the append slot when Kind is
	// NewUnderRef: Parent is the array and Index equals its length.
	Parent []any
	Index  int
}

func traverse(doc any, steps []Step) *Ref {
	if len(steps) == 0 {
		return &Ref{Kind: ExistingRef, Value: doc}
	}
	step, rest := steps[0], steps[1:]
	if debug.Traverse() {
		debug.Logf("traverse %s step %q with %d remaining\n", step.Type, step, len(rest))
	}
	switch step.Type {
	case NameStep:
		obj, ok := doc.(map[string]any)
		if !ok {
			return nil
		}
		child, ok := obj[step.Name]
		if !ok {
			return nil
		}
		return traverse(child, rest)
	case IndexStep:
		arr, ok := doc.([]any)
		if !ok {
			return nil
		}
		if step.Index < 0 || step.Index >= len(arr) {
			return nil
		}
		return traverse(arr[step.Index], rest)
	case NewElementStep:
		arr, ok := doc.([]any)
		if !ok {
			return nil
		}
		// a new element can only be referenced by the last step
		if len(rest) != 0 {
			return nil
		}
		return &Ref{Kind: NewUnderRef, Parent: arr, Index: len(arr)}
	default:
		return nil
	}
}

// MutRef is a writable traversal result. Writes go through the slot of
// the parent container that holds the located value, so they stay
// visible through the original root binding. The caller must hold
// exclusive access to the document while it uses a MutRef.
type MutRef struct {
	Kind RefKind

	// Index is the append position when Kind is NewUnderRef.
	Index int

	slot slot
}

// Value returns the current value at the located slot. For a
// NewUnderRef it is the parent array.
func (r *MutRef) Value() any {
	return r.slot.load()
}

// Set replaces the located value in place. Valid when Kind is
// ExistingRef.
func (r *MutRef) Set(v any) {
	r.slot.store(v)
}

// Append grows the parent array by v at the append position, writing
// the grown array back through its holding slot. Valid when Kind is
// NewUnderRef.
func (r *MutRef) Append(v any) {
	arr := r.slot.load().([]any)
	r.slot.store(append(arr, v))
}

// slot is a single write path into the document: the root binding, an
// object entry, or an array element. Holding exactly one slot per
// traversal result keeps writers unaliased.
type slot interface {
	load() any
	store(any)
}

type rootSlot struct{ p *any }

func (s rootSlot) load() any   { return *s.p }
func (s rootSlot) store(v any) { *s.p = v }

type objSlot struct {
	m map[string]any
	k string
}

func (s objSlot) load() any   { return s.m[s.k] }
func (s objSlot) store(v any) { s.m[s.k] = v }

type arrSlot struct {
	a []any
	i int
}

func (s arrSlot) load() any   { return s.a[s.i] }
func (s arrSlot) store(v any) { s.a[s.i] = v }

func traverseMut(cur slot, steps []Step) *MutRef {
	if len(steps) == 0 {
		return &MutRef{Kind: ExistingRef, slot: cur}
	}
	step, rest := steps[0], steps[1:]
	if debug.Traverse() {
		debug.Logf("traverse mut %s step %q with %d remaining\n", step.Type, step, len(rest))
	}
	switch step.Type {
	case NameStep:
		obj, ok := cur.load().(map[string]any)
		if !ok {
			return nil
		}
		if _, ok := obj[step.Name]; !ok {
			return nil
		}
		return traverseMut(objSlot{obj, step.Name}, rest)
	case IndexStep:
		arr, ok := cur.load().([]any)
		if !ok {
			return nil
		}
		if step.Index < 0 || step.Index >= len(arr) {
			return nil
		}
		return traverseMut(arrSlot{arr, step.Index}, rest)
	case NewElementStep:
		arr, ok := cur.load().([]any)
		if !ok {
			return nil
		}
		if len(rest) != 0 {
			return nil
		}
		return &MutRef{Kind: NewUnderRef, Index: len(arr), slot: cur}
	default:
		return nil
	}
}
