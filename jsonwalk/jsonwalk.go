// Package jsonwalk implements a generic depth-first visitor over decoded
// JSON values (map[string]any / []any trees). It backs both body rewriting
// (processor mode: the visitor returns mutating directives) and hint
// extraction (analyzer mode: the visitor only reads and accumulates into
// caller state, returning Keep()).
package jsonwalk

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// MaxDepth bounds recursion. JSON cannot be cyclic, but pathological inputs
// should fail instead of exhausting the stack.
const MaxDepth = 128

// ErrTooDeep aborts a walk whose input nests beyond MaxDepth.
var ErrTooDeep = errors.New("jsonwalk: input nested too deeply")

// Context describes the field currently being visited.
type Context struct {
	// Path is the dotted path of the value, e.g. "Items[3].Id".
	Path string
	// Key is the field name within the parent object; empty for array
	// elements.
	Key string
	// ParentPath is the path of the enclosing container.
	ParentPath string
	// Depth is the number of containers above this field; fields of the
	// root object have depth 0.
	Depth int
	// InArray is true when the value is an array element.
	InArray bool
	// Index is the element's position when InArray.
	Index int
	// Parent is the enclosing object; nil for array elements.
	Parent map[string]any
}

// VisitFunc inspects one field and returns a directive. A returned error is
// recorded with the field's path and the walk continues; errors are joined
// into Walk's return value.
type VisitFunc func(ctx *Context, value any) (Directive, error)

type action int

const (
	actKeep action = iota
	actReplace
	actRename
	actRemove
)

// Directive tells the walker what to do with a visited field.
type Directive struct {
	act      action
	value    any
	newKey   string
	siblings map[string]any
}

// Keep leaves the field unchanged and recurses into container values.
func Keep() Directive { return Directive{act: actKeep} }

// Replace substitutes the value in place. The new value is not recursed
// into.
func Replace(v any) Directive { return Directive{act: actReplace, value: v} }

// Rename changes the field's key, keeping (and recursing into) its value.
// Invalid for array elements.
func Rename(key string) Directive { return Directive{act: actRename, newKey: key} }

// Remove deletes the field from its parent object, or drops the element
// from its parent array.
func Remove() Directive { return Directive{act: actRemove} }

// AddSiblings keeps the field and inserts the given fields into the parent
// object after the iteration over it completes. Invalid for array elements.
func AddSiblings(fields map[string]any) Directive {
	return Directive{act: actKeep, siblings: fields}
}

// Walk traverses root depth-first, invoking fn for every object field and
// array element. It returns the (possibly replaced) root: removing elements
// from a root-level array yields a new slice header.
func Walk(root any, fn VisitFunc) (any, error) {
	w := &walker{fn: fn}
	var fatal error
	switch v := root.(type) {
	case map[string]any:
		fatal = w.object(v, "", 0)
	case []any:
		var out []any
		out, fatal = w.array(v, "", 0)
		if fatal == nil {
			root = out
		}
	}
	if fatal != nil {
		return root, fatal
	}
	return root, errors.Join(w.errs...)
}

type walker struct {
	fn   VisitFunc
	errs []error
}

func (w *walker) object(obj map[string]any, path string, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}

	// Deterministic iteration: an object's own scalar fields first, then
	// its container fields, each group sorted by key. Shallow occurrences
	// therefore win over nested ones when an analyzer takes the first hit.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := isContainer(obj[keys[i]]), isContainer(obj[keys[j]])
		if ci != cj {
			return !ci
		}
		return keys[i] < keys[j]
	})

	type rename struct{ from, to string }
	var renames []rename
	var removals []string
	var siblings map[string]any

	for _, k := range keys {
		v := obj[k]
		ctx := &Context{
			Path:       joinPath(path, k),
			Key:        k,
			ParentPath: path,
			Depth:      depth,
			Parent:     obj,
		}
		d, err := w.fn(ctx, v)
		if err != nil {
			w.errs = append(w.errs, fmt.Errorf("%s: %w", ctx.Path, err))
		}

		switch d.act {
		case actRemove:
			removals = append(removals, k)
			continue
		case actReplace:
			obj[k] = d.value
			continue
		case actRename:
			renames = append(renames, rename{from: k, to: d.newKey})
		}
		if len(d.siblings) > 0 {
			if siblings == nil {
				siblings = make(map[string]any, len(d.siblings))
			}
			for sk, sv := range d.siblings {
				siblings[sk] = sv
			}
		}

		if err := w.child(obj, k, v, ctx.Path, depth); err != nil {
			return err
		}
	}

	for _, k := range removals {
		delete(obj, k)
	}
	for _, r := range renames {
		if r.to == r.from || r.to == "" {
			continue
		}
		obj[r.to] = obj[r.from]
		delete(obj, r.from)
	}
	for k, v := range siblings {
		obj[k] = v
	}
	return nil
}

// child recurses into container values, writing back array headers that may
// have changed due to element removal.
func (w *walker) child(parent map[string]any, key string, v any, path string, depth int) error {
	switch cv := v.(type) {
	case map[string]any:
		return w.object(cv, path, depth+1)
	case []any:
		out, err := w.array(cv, path, depth+1)
		if err != nil {
			return err
		}
		parent[key] = out
	}
	return nil
}

func (w *walker) array(arr []any, path string, depth int) ([]any, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	write := 0
	for i, v := range arr {
		ctx := &Context{
			Path:       path + "[" + strconv.Itoa(i) + "]",
			ParentPath: path,
			Depth:      depth,
			InArray:    true,
			Index:      i,
		}
		d, err := w.fn(ctx, v)
		if err != nil {
			w.errs = append(w.errs, fmt.Errorf("%s: %w", ctx.Path, err))
		}

		switch d.act {
		case actRemove:
			continue
		case actReplace:
			arr[write] = d.value
			write++
			continue
		case actRename:
			w.errs = append(w.errs, fmt.Errorf("%s: cannot rename an array element", ctx.Path))
		}
		if len(d.siblings) > 0 {
			w.errs = append(w.errs, fmt.Errorf("%s: cannot add siblings to an array element", ctx.Path))
		}

		switch cv := v.(type) {
		case map[string]any:
			if err := w.object(cv, ctx.Path, depth+1); err != nil {
				return nil, err
			}
		case []any:
			out, err := w.array(cv, ctx.Path, depth+1)
			if err != nil {
				return nil, err
			}
			v = out
		}
		arr[write] = v
		write++
	}
	return arr[:write], nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// Decode parses JSON bytes into the tree form Walk operates on.
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jsonwalk: decode: %w", err)
	}
	return v, nil
}

// Encode serializes a walked tree back to JSON bytes.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonwalk: encode: %w", err)
	}
	return data, nil
}
