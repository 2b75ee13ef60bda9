// Package jsonptr implements RFC 6901 JSON Pointers over tree-shaped
// documents.
//
// # Usage
//
//	// Parse pointer text, optionally in URI fragment form.
//	p, err := jsonptr.Parse("/users/0/name")
//	if err != nil {
//	    return err
//	}
//
//	// Look up the value it refers to.
//	v, ok := p.Find(doc)
//
//	// Or distinguish existing values from append positions.
//	ref := jsonptr.MustParse("/users/-").Traverse(doc)
//
// Documents are plain any trees, as produced by encoding/json or
// goccy/go-yaml when decoding into any: map[string]any for objects,
// []any for arrays, anything else an opaque leaf.
//
// Traversal reports absence (missing key, out of range index, shape
// mismatch) as a nil result rather than an error; only malformed
// pointer text produces an error, from Parse.
package jsonptr
