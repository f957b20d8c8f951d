// Package introspect inspects function signatures at runtime.
package introspect

import (
	"reflect"
	"strings"
)

// AcceptsArg reports whether fn could receive a named argument. Go spells
// named arguments as exported fields on an options struct, so AcceptsArg
// returns true when any parameter of fn is a struct (or struct pointer)
// declaring an exported field whose name matches case-insensitively, or
// when any parameter is a string-keyed map, the catch-all form. A nil or
// non-function value yields false.
//
//	func render(w io.Writer, opts RenderOptions) error
//
//	introspect.AcceptsArg(render, "indent")  // true if RenderOptions has an Indent field
//	introspect.AcceptsArg(render, "banana")  // false
func AcceptsArg(fn any, name string) bool {
	if fn == nil || name == "" {
		return false
	}

	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return false
	}

	for i := range t.NumIn() {
		if paramAccepts(t.In(i), name) {
			return true
		}
	}
	return false
}

func paramAccepts(t reflect.Type, name string) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if f.IsExported() && strings.EqualFold(f.Name, name) {
				return true
			}
		}
	}
	return false
}
