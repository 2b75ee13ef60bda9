package jsonptr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDoc() map[string]any {
	return map[string]any{
		"k1": "v1",
		"k2": []any{"42", true},
	}
}

func TestTraverseRoot(t *testing.T) {
	doc := map[string]any{}
	v, ok := MustParse("#").Find(doc)
	if !ok {
		t.Fatal("root of empty object not found")
	}
	if d := cmp.Diff(doc, v); d != "" {
		t.Errorf("root value (-want +got):\n%s", d)
	}
}

func TestTraverseScalarRoot(t *testing.T) {
	v, ok := MustParse("").Find(42)
	if !ok || v != 42 {
		t.Errorf("Find = %v, %v", v, ok)
	}
}

func TestFindsConcreteData(t *testing.T) {
	v, ok := MustParse("/k2/1").Find(testDoc())
	if !ok || v != true {
		t.Errorf("Find = %v, %v, wanted true", v, ok)
	}
}

func TestFindNewElement(t *testing.T) {
	doc := map[string]any{"k1": "v1", "k2": []any{true}}
	ref := MustParse("/k2/-").Traverse(doc)
	if ref == nil {
		t.Fatal("no result for append marker")
	}
	if ref.Kind != NewUnderRef {
		t.Fatalf("ref kind %s, wanted NewUnder", ref.Kind)
	}
	if ref.Index != 1 || len(ref.Parent) != 1 {
		t.Errorf("append slot index %d of array length %d", ref.Index, len(ref.Parent))
	}
	// Find discards append slots
	if _, ok := MustParse("/k2/-").Find(doc); ok {
		t.Error("Find reported an append slot as existing")
	}
}

func TestNewElementOnEmptyArray(t *testing.T) {
	ref := MustParse("/-").Traverse([]any{})
	if ref == nil || ref.Kind != NewUnderRef || ref.Index != 0 {
		t.Errorf("ref = %+v", ref)
	}
}

func TestTraverseAbsent(t *testing.T) {
	tests := []struct {
		Ptr string
		Doc any
	}{
		{Ptr: "/k3", Doc: testDoc()},          // missing key
		{Ptr: "/k2/2", Doc: testDoc()},        // index out of range
		{Ptr: "/k2/w", Doc: testDoc()},        // key against an array
		{Ptr: "/0", Doc: testDoc()},           // index against an object
		{Ptr: "/k1/0", Doc: testDoc()},        // descent into a scalar
		{Ptr: "/k1/-", Doc: testDoc()},        // append marker on a scalar
		{Ptr: "/-", Doc: testDoc()},           // append marker on an object
		{Ptr: "/k3/x", Doc: testDoc()},        // missing key mid-path
		{Ptr: "/0/-/x", Doc: []any{[]any{1}}}, // non-terminal append marker
	}
	for i, test := range tests {
		ptr := MustParse(test.Ptr)
		if ref := ptr.Traverse(test.Doc); ref != nil {
			t.Errorf("test %d: %q resolved to %+v, wanted nil", i, test.Ptr, ref)
		}
		doc := test.Doc
		if ref := ptr.TraverseMut(&doc); ref != nil {
			t.Errorf("test %d: %q resolved mutably, wanted nil", i, test.Ptr)
		}
	}
}

func TestConstructedNonTerminalNewElement(t *testing.T) {
	ptr := FromSteps([]Step{Index(0), NewElement(), Name("x")})
	if ref := ptr.Traverse([]any{[]any{1, 2}}); ref != nil {
		t.Errorf("resolved to %+v, wanted nil", ref)
	}
}

func TestTraverseMutSet(t *testing.T) {
	doc := any(map[string]any{"k1": "v1", "k2": []any{true}})
	ref := MustParse("/k2/0").TraverseMut(&doc)
	if ref == nil || ref.Kind != ExistingRef {
		t.Fatalf("ref = %+v", ref)
	}
	if ref.Value() != true {
		t.Errorf("ref value %v, wanted true", ref.Value())
	}
	ref.Set("replaced")
	// the update is visible through the original root binding
	v, ok := MustParse("/k2/0").Find(doc)
	if !ok || v != "replaced" {
		t.Errorf("after Set: %v, %v", v, ok)
	}
}

func TestTraverseMutSetInObject(t *testing.T) {
	doc := any(testDoc())
	ref := MustParse("/k1").TraverseMut(&doc)
	if ref == nil || ref.Kind != ExistingRef {
		t.Fatalf("ref = %+v", ref)
	}
	ref.Set(float64(7))
	v, ok := MustParse("/k1").Find(doc)
	if !ok || v != float64(7) {
		t.Errorf("after Set: %v, %v", v, ok)
	}
}

func TestTraverseMutRoot(t *testing.T) {
	doc := any(map[string]any{"a": float64(1)})
	ref := MustParse("").TraverseMut(&doc)
	if ref == nil || ref.Kind != ExistingRef {
		t.Fatalf("ref = %+v", ref)
	}
	ref.Set([]any{"fresh"})
	if _, ok := doc.([]any); !ok {
		t.Errorf("root binding still %T", doc)
	}
}

func TestTraverseMutAppend(t *testing.T) {
	doc := any(map[string]any{"k2": []any{true}})
	ref := MustParse("/k2/-").TraverseMut(&doc)
	if ref == nil || ref.Kind != NewUnderRef {
		t.Fatalf("ref = %+v", ref)
	}
	if ref.Index != 1 {
		t.Errorf("append index %d, wanted 1", ref.Index)
	}
	ref.Append("tail")
	v, ok := MustParse("/k2/1").Find(doc)
	if !ok || v != "tail" {
		t.Errorf("after Append: %v, %v", v, ok)
	}
}

func TestTraverseMutAppendAtRoot(t *testing.T) {
	doc := any([]any{})
	ref := MustParse("/-").TraverseMut(&doc)
	if ref == nil || ref.Kind != NewUnderRef || ref.Index != 0 {
		t.Fatalf("ref = %+v", ref)
	}
	ref.Append(float64(1))
	if len(doc.([]any)) != 1 {
		t.Errorf("root array not regrown: %v", doc)
	}
}

func TestTraverseDoesNotCopy(t *testing.T) {
	doc := testDoc()
	v, ok := MustParse("/k2").Find(doc)
	if !ok {
		t.Fatal("k2 not found")
	}
	arr := v.([]any)
	arr[0] = "rewritten"
	if doc["k2"].([]any)[0] != "rewritten" {
		t.Error("traversal returned a detached copy")
	}
}
